// internals/features/assets/types/controller/asset_type_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	tDTO "asetku_backend/internals/features/assets/types/dto"
	tModel "asetku_backend/internals/features/assets/types/model"
	helper "asetku_backend/internals/helpers"
)

type AssetTypeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssetTypeController(db *gorm.DB) *AssetTypeController {
	return &AssetTypeController{DB: db, Validate: validator.New()}
}

// POST /api/a/asset-types
func (h *AssetTypeController) Create(c *fiber.Ctx) error {
	var req tDTO.CreateAssetTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create asset type")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Asset type created", tDTO.NewAssetTypeResponse(m))
}

// PATCH /api/a/asset-types/:id
func (h *AssetTypeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req tDTO.UpdateAssetTypeRequest
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
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update asset type")
	}
	return helper.Success(c, "Asset type updated", tDTO.NewAssetTypeResponse(m))
}

// DELETE /api/a/asset-types/:id (soft delete)
func (h *AssetTypeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(&tModel.AssetTypeModel{}, "asset_type_id = ?", m.AssetTypeID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete asset type")
	}
	return helper.Success(c, "Asset type deleted", fiber.Map{"asset_type_id": m.AssetTypeID})
}

// GET /api/a/asset-types/:id
func (h *AssetTypeController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", tDTO.NewAssetTypeResponse(m))
}

// GET /api/a/asset-types
func (h *AssetTypeController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&tModel.AssetTypeModel{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("asset_type_name LIKE ?", "%"+s+"%")
	}
	if cat := strings.TrimSpace(c.Query("category_id")); cat != "" {
		q = q.Where("asset_type_category_id = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list asset types")
	}

	var rows []tModel.AssetTypeModel
	if err := q.
		Order("asset_type_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list asset types")
	}

	out := make([]*tDTO.AssetTypeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, tDTO.NewAssetTypeResponse(&rows[i]))
	}
	return helper.SuccessList(c, "OK", out, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (h *AssetTypeController) findByID(id uuid.UUID) (*tModel.AssetTypeModel, error) {
	var m tModel.AssetTypeModel
	if err := h.DB.First(&m, "asset_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Asset type not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load asset type")
	}
	return &m, nil
}
