// internals/features/organizations/controller/department_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dDTO "asetku_backend/internals/features/organizations/dto"
	dModel "asetku_backend/internals/features/organizations/model"
	helper "asetku_backend/internals/helpers"
)

type DepartmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db, Validate: validator.New()}
}

// POST /api/a/departments
func (h *DepartmentController) Create(c *fiber.Ctx) error {
	var req dDTO.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create department")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Department created", m)
}

// PATCH /api/a/departments/:id
func (h *DepartmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var req dDTO.UpdateDepartmentRequest
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
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update department")
	}
	return helper.Success(c, "Department updated", m)
}

// DELETE /api/a/departments/:id (soft delete)
func (h *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(&dModel.DepartmentModel{}, "department_id = ?", m.DepartmentID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete department")
	}
	return helper.Success(c, "Department deleted", fiber.Map{"department_id": m.DepartmentID})
}

// GET /api/a/departments/:id
func (h *DepartmentController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", m)
}

// GET /api/a/departments
func (h *DepartmentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&dModel.DepartmentModel{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("department_name LIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list departments")
	}
	var rows []dModel.DepartmentModel
	if err := q.
		Order("department_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list departments")
	}
	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (h *DepartmentController) findByID(id uuid.UUID) (*dModel.DepartmentModel, error) {
	var m dModel.DepartmentModel
	if err := h.DB.First(&m, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Department not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load department")
	}
	return &m, nil
}
