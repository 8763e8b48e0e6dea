// internals/features/timesheets/dto/timesheet_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	tsModel "asetku_backend/internals/features/timesheets/model"
	"asetku_backend/internals/helpers/perdate"
)

type CreateTimesheetRequest struct {
	TimesheetUserID uuid.UUID `json:"timesheet_user_id" validate:"required"`

	// Jalali or Gregorian, same handling as asset purchase dates.
	// Empty → today.
	TimesheetWorkDate *string `json:"timesheet_work_date" validate:"omitempty"`

	TimesheetClockIn     time.Time  `json:"timesheet_clock_in" validate:"required"`
	TimesheetClockOut    *time.Time `json:"timesheet_clock_out" validate:"omitempty,gtfield=TimesheetClockIn"`
	TimesheetDescription *string    `json:"timesheet_description" validate:"omitempty,max=1000"`
}

func (r *CreateTimesheetRequest) ToModel() *tsModel.TimesheetModel {
	workDate := time.Now().Truncate(24 * time.Hour)
	if r.TimesheetWorkDate != nil {
		if d, ok := perdate.Parse(*r.TimesheetWorkDate); ok {
			workDate = d
		}
	}
	return &tsModel.TimesheetModel{
		TimesheetUserID:      r.TimesheetUserID,
		TimesheetWorkDate:    workDate,
		TimesheetClockIn:     r.TimesheetClockIn,
		TimesheetClockOut:    r.TimesheetClockOut,
		TimesheetDescription: r.TimesheetDescription,
	}
}

type UpdateTimesheetRequest struct {
	TimesheetClockIn     *time.Time `json:"timesheet_clock_in" validate:"omitempty"`
	TimesheetClockOut    *time.Time `json:"timesheet_clock_out" validate:"omitempty"`
	TimesheetDescription *string    `json:"timesheet_description" validate:"omitempty,max=1000"`
}

func (r *UpdateTimesheetRequest) ApplyToModel(m *tsModel.TimesheetModel) {
	if r.TimesheetClockIn != nil {
		m.TimesheetClockIn = *r.TimesheetClockIn
	}
	if r.TimesheetClockOut != nil {
		m.TimesheetClockOut = r.TimesheetClockOut
	}
	if r.TimesheetDescription != nil {
		m.TimesheetDescription = r.TimesheetDescription
	}
}
