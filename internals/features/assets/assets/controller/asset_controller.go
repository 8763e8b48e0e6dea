// internals/features/assets/assets/controller/asset_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	asgDTO "asetku_backend/internals/features/assets/assignments/dto"
	asgModel "asetku_backend/internals/features/assets/assignments/model"
	aDTO "asetku_backend/internals/features/assets/assets/dto"
	aModel "asetku_backend/internals/features/assets/assets/model"
	"asetku_backend/internals/features/assets/assets/service"
	helper "asetku_backend/internals/helpers"
	authmw "asetku_backend/internals/middlewares/auth"
)

type AssetController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssetController(db *gorm.DB) *AssetController {
	return &AssetController{DB: db, Validate: validator.New()}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/assets
func (h *AssetController) Create(c *fiber.Ctx) error {
	var req aDTO.CreateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	createdBy, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	m := req.ToModel(createdBy)
	if err := service.CreateAsset(c.UserContext(), h.DB, m); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCategory):
			return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
				"Asset category does not exist", fiber.Map{"asset_category_id": "not_found"})
		case errors.Is(err, service.ErrDuplicateBarcode):
			return helper.ErrorWithDetails(c, fiber.StatusConflict,
				"Barcode already in use", fiber.Map{"asset_barcode": "duplicate"})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create asset")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Asset created", aDTO.NewAssetResponse(m))
}

// PATCH /api/a/assets/:id
// General edit. Availability is not editable here; see
// UpdateAvailability for the terminal states.
func (h *AssetController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid asset id")
	}

	var req aDTO.UpdateAssetRequest
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
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update asset")
	}

	return helper.Success(c, "Asset updated", aDTO.NewAssetResponse(m))
}

// PATCH /api/a/assets/:id/availability
// Admin escape hatch for the terminal states (retired/lost/consumed).
func (h *AssetController) UpdateAvailability(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid asset id")
	}

	var req aDTO.UpdateAssetAvailabilityRequest
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

	if err := h.DB.Model(&aModel.AssetModel{}).
		Where("asset_id = ?", m.AssetID).
		Update("asset_availability", req.AssetAvailability).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update availability")
	}
	m.AssetAvailability = req.AssetAvailability

	return helper.Success(c, "Asset availability updated", aDTO.NewAssetResponse(m))
}

// DELETE /api/a/assets/:id (soft delete)
func (h *AssetController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid asset id")
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	// An asset that is currently out stays on the books.
	var open int64
	if err := h.DB.Model(&asgModel.AssetAssignmentModel{}).
		Where("assignment_asset_id = ? AND assignment_returned_at IS NULL", m.AssetID).
		Count(&open).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete asset")
	}
	if open > 0 {
		return helper.Error(c, fiber.StatusConflict, "Asset has an open assignment; return it first")
	}

	if err := h.DB.Delete(&aModel.AssetModel{}, "asset_id = ?", m.AssetID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete asset")
	}
	return helper.Success(c, "Asset deleted", fiber.Map{"asset_id": m.AssetID})
}

// GET /api/a/assets/:id (?with_history=true preloads the ledger)
func (h *AssetController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid asset id")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	if !strings.EqualFold(c.Query("with_history"), "true") {
		return helper.Success(c, "OK", aDTO.NewAssetResponse(m))
	}

	var rows []asgModel.AssetAssignmentModel
	if err := h.DB.
		Where("assignment_asset_id = ?", m.AssetID).
		Order("assignment_assigned_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load assignment history")
	}

	history := make([]*asgDTO.AssetAssignmentResponse, 0, len(rows))
	for i := range rows {
		history = append(history, asgDTO.NewAssetAssignmentResponse(&rows[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"asset":       aDTO.NewAssetResponse(m),
		"assignments": history,
	})
}

// GET /api/a/assets
func (h *AssetController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&aModel.AssetModel{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		q = q.Where("asset_name LIKE ? OR asset_barcode LIKE ? OR asset_serial_number LIKE ?", like, like, like)
	}
	if av := strings.TrimSpace(c.Query("availability")); av != "" {
		q = q.Where("asset_availability = ?", strings.ToLower(av))
	}
	if cat := strings.TrimSpace(c.Query("category_id")); cat != "" {
		q = q.Where("asset_category_id = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list assets")
	}

	var rows []aModel.AssetModel
	if err := q.
		Order("asset_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list assets")
	}

	out := make([]*aDTO.AssetResponse, 0, len(rows))
	for i := range rows {
		out = append(out, aDTO.NewAssetResponse(&rows[i]))
	}

	return helper.SuccessList(c, "OK", out, helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ===================== INTERNAL ===================== */

func (h *AssetController) findByID(id uuid.UUID) (*aModel.AssetModel, error) {
	var m aModel.AssetModel
	if err := h.DB.First(&m, "asset_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Asset not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load asset")
	}
	return &m, nil
}
