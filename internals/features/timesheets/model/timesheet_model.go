// internals/features/timesheets/model/timesheet_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One row per employee per work day. Clock-out stays nil until the
// employee checks out.
type TimesheetModel struct {
	TimesheetID uuid.UUID `gorm:"type:uuid;primaryKey;column:timesheet_id" json:"timesheet_id"`

	TimesheetUserID   uuid.UUID  `gorm:"type:uuid;not null;column:timesheet_user_id;index" json:"timesheet_user_id"`
	TimesheetWorkDate time.Time  `gorm:"type:date;not null;column:timesheet_work_date;index" json:"timesheet_work_date"`
	TimesheetClockIn  time.Time  `gorm:"not null;column:timesheet_clock_in" json:"timesheet_clock_in"`
	TimesheetClockOut *time.Time `gorm:"column:timesheet_clock_out" json:"timesheet_clock_out,omitempty"`

	TimesheetDescription *string `gorm:"column:timesheet_description" json:"timesheet_description,omitempty"`

	TimesheetCreatedAt time.Time      `gorm:"column:timesheet_created_at;autoCreateTime" json:"timesheet_created_at"`
	TimesheetUpdatedAt *time.Time     `gorm:"column:timesheet_updated_at;autoUpdateTime" json:"timesheet_updated_at,omitempty"`
	TimesheetDeletedAt gorm.DeletedAt `gorm:"column:timesheet_deleted_at;index" json:"timesheet_deleted_at,omitempty"`
}

func (TimesheetModel) TableName() string { return "timesheets" }

func (m *TimesheetModel) BeforeCreate(tx *gorm.DB) error {
	if m.TimesheetID == uuid.Nil {
		m.TimesheetID = uuid.New()
	}
	return nil
}
