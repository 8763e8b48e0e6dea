// internals/features/assets/categories/controller/asset_category_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cDTO "asetku_backend/internals/features/assets/categories/dto"
	cModel "asetku_backend/internals/features/assets/categories/model"
	helper "asetku_backend/internals/helpers"
)

type AssetCategoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssetCategoryController(db *gorm.DB) *AssetCategoryController {
	return &AssetCategoryController{DB: db, Validate: validator.New()}
}

// POST /api/a/asset-categories
func (h *AssetCategoryController) Create(c *fiber.Ctx) error {
	var req cDTO.CreateAssetCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create asset category")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Asset category created", cDTO.NewAssetCategoryResponse(m))
}

// PATCH /api/a/asset-categories/:id
func (h *AssetCategoryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req cDTO.UpdateAssetCategoryRequest
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
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update asset category")
	}

	return helper.Success(c, "Asset category updated", cDTO.NewAssetCategoryResponse(m))
}

// DELETE /api/a/asset-categories/:id (soft delete)
func (h *AssetCategoryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	if err := h.DB.Delete(&cModel.AssetCategoryModel{}, "asset_category_id = ?", m.AssetCategoryID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete asset category")
	}
	return helper.Success(c, "Asset category deleted", fiber.Map{"asset_category_id": m.AssetCategoryID})
}

// GET /api/a/asset-categories/:id
func (h *AssetCategoryController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", cDTO.NewAssetCategoryResponse(m))
}

// GET /api/a/asset-categories
func (h *AssetCategoryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&cModel.AssetCategoryModel{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("asset_category_name LIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list asset categories")
	}

	var rows []cModel.AssetCategoryModel
	if err := q.
		Order("asset_category_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list asset categories")
	}

	out := make([]*cDTO.AssetCategoryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, cDTO.NewAssetCategoryResponse(&rows[i]))
	}
	return helper.SuccessList(c, "OK", out, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (h *AssetCategoryController) findByID(id uuid.UUID) (*cModel.AssetCategoryModel, error) {
	var m cModel.AssetCategoryModel
	if err := h.DB.First(&m, "asset_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Asset category not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load asset category")
	}
	return &m, nil
}
