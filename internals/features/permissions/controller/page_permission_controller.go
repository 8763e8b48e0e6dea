// internals/features/permissions/controller/page_permission_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	permDTO "asetku_backend/internals/features/permissions/dto"
	permModel "asetku_backend/internals/features/permissions/model"
	permService "asetku_backend/internals/features/permissions/service"
	helper "asetku_backend/internals/helpers"
)

type PagePermissionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPagePermissionController(db *gorm.DB) *PagePermissionController {
	return &PagePermissionController{DB: db, Validate: validator.New()}
}

// PUT /api/a/page-permissions (idempotent upsert on page key + role)
func (h *PagePermissionController) Upsert(c *fiber.Ctx) error {
	var req permDTO.UpsertPagePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := permService.Upsert(c.Context(), h.DB,
		req.PagePermissionPageKey, req.PagePermissionRole, req.PagePermissionAllowed)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save page permission")
	}
	return helper.Success(c, "Page permission saved", m)
}

// DELETE /api/a/page-permissions/:id (soft delete)
func (h *PagePermissionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	if err := h.DB.Delete(&permModel.PagePermissionModel{}, "page_permission_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete page permission")
	}
	return helper.Success(c, "Page permission deleted", fiber.Map{"page_permission_id": id})
}

// GET /api/a/page-permissions (?page_key=, ?role=)
func (h *PagePermissionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&permModel.PagePermissionModel{})
	if k := c.Query("page_key"); k != "" {
		q = q.Where("page_permission_page_key = ?", k)
	}
	if r := c.Query("role"); r != "" {
		q = q.Where("page_permission_role = ?", r)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list page permissions")
	}
	var rows []permModel.PagePermissionModel
	if err := q.
		Order("page_permission_page_key ASC, page_permission_role ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list page permissions")
	}
	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}
