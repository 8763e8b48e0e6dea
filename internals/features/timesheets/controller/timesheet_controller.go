// internals/features/timesheets/controller/timesheet_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	tsDTO "asetku_backend/internals/features/timesheets/dto"
	tsModel "asetku_backend/internals/features/timesheets/model"
	uModel "asetku_backend/internals/features/users/model"
	helper "asetku_backend/internals/helpers"
	authmw "asetku_backend/internals/middlewares/auth"
)

type TimesheetController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimesheetController(db *gorm.DB) *TimesheetController {
	return &TimesheetController{DB: db, Validate: validator.New()}
}

// POST /api/a/timesheets
func (h *TimesheetController) Create(c *fiber.Ctx) error {
	var req tsDTO.CreateTimesheetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	if err := h.DB.Model(&uModel.UserModel{}).
		Where("user_id = ?", req.TimesheetUserID).Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create timesheet")
	}
	if n == 0 {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"User does not exist", fiber.Map{"timesheet_user_id": "not_found"})
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create timesheet")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Timesheet created", m)
}

// POST /api/a/timesheets/:id/clock-out
func (h *TimesheetController) ClockOut(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if m.TimesheetClockOut != nil {
		return helper.Error(c, fiber.StatusConflict, "Timesheet is already clocked out")
	}

	now := time.Now()
	if err := h.DB.Model(&tsModel.TimesheetModel{}).
		Where("timesheet_id = ?", m.TimesheetID).
		Update("timesheet_clock_out", now).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to clock out")
	}
	m.TimesheetClockOut = &now
	return helper.Success(c, "Clocked out", m)
}

// PATCH /api/a/timesheets/:id
func (h *TimesheetController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var req tsDTO.UpdateTimesheetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update timesheet")
	}
	return helper.Success(c, "Timesheet updated", m)
}

// DELETE /api/a/timesheets/:id (soft delete)
func (h *TimesheetController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	if err := h.DB.Delete(&tsModel.TimesheetModel{}, "timesheet_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete timesheet")
	}
	return helper.Success(c, "Timesheet deleted", fiber.Map{"timesheet_id": id})
}

// GET /api/a/timesheets (?user_id=, ?mine=true)
func (h *TimesheetController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&tsModel.TimesheetModel{})
	if c.Query("mine") == "true" {
		me, err := authmw.UserID(c)
		if err != nil {
			return err
		}
		q = q.Where("timesheet_user_id = ?", me)
	} else if u := c.Query("user_id"); u != "" {
		q = q.Where("timesheet_user_id = ?", u)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list timesheets")
	}
	var rows []tsModel.TimesheetModel
	if err := q.
		Order("timesheet_work_date DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list timesheets")
	}
	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (h *TimesheetController) findByID(id uuid.UUID) (*tsModel.TimesheetModel, error) {
	var m tsModel.TimesheetModel
	if err := h.DB.First(&m, "timesheet_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Timesheet not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load timesheet")
	}
	return &m, nil
}
