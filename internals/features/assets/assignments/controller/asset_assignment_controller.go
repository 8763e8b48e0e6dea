// internals/features/assets/assignments/controller/asset_assignment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	asgDTO "asetku_backend/internals/features/assets/assignments/dto"
	asgModel "asetku_backend/internals/features/assets/assignments/model"
	"asetku_backend/internals/features/assets/assignments/service"
	locationModel "asetku_backend/internals/features/locations/model"
	departmentModel "asetku_backend/internals/features/organizations/model"
	userModel "asetku_backend/internals/features/users/model"
	helper "asetku_backend/internals/helpers"
	authmw "asetku_backend/internals/middlewares/auth"
)

type AssetAssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssetAssignmentController(db *gorm.DB) *AssetAssignmentController {
	return &AssetAssignmentController{DB: db, Validate: validator.New()}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/asset-assignments
func (h *AssetAssignmentController) Create(c *fiber.Ctx) error {
	var req asgDTO.CreateAssetAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	assignedBy, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	asg, err := service.AssignAsset(c.UserContext(), h.DB, req.ToInput(assignedBy))
	if err != nil {
		var refErr *service.InvalidReferenceError
		switch {
		case errors.Is(err, service.ErrAssetNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Asset not found")
		case errors.As(err, &refErr):
			return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
				"Referenced record does not exist", fiber.Map{refErr.Field: "not_found"})
		case errors.Is(err, service.ErrAssignConflict):
			return helper.Error(c, fiber.StatusConflict, "Asset is being assigned by someone else; try again")
		case errors.Is(err, service.ErrOrchestrationTimeout):
			return helper.Error(c, fiber.StatusServiceUnavailable, "Assignment timed out; please try again")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign asset")
	}

	resp := asgDTO.NewAssetAssignmentResponse(asg)
	h.resolveDisplay(resp)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Asset assigned", resp)
}

// POST /api/a/asset-assignments/:id/return
func (h *AssetAssignmentController) Return(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid assignment id")
	}

	asg, err := service.ReturnAssignment(c.UserContext(), h.DB, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Assignment not found")
		case errors.Is(err, service.ErrAlreadyReturned):
			return helper.Error(c, fiber.StatusConflict, "Assignment is already returned")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to return assignment")
	}

	return helper.Success(c, "Assignment returned", asgDTO.NewAssetAssignmentResponse(asg))
}

// DELETE /api/a/asset-assignments/:id (soft delete + availability recompute)
func (h *AssetAssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid assignment id")
	}

	if err := service.DeleteAssignment(c.UserContext(), h.DB, id); err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assignment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete assignment")
	}

	return helper.Success(c, "Assignment deleted", fiber.Map{"assignment_id": id})
}

// GET /api/a/asset-assignments/:id
func (h *AssetAssignmentController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid assignment id")
	}

	var m asgModel.AssetAssignmentModel
	if err := h.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assignment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load assignment")
	}

	resp := asgDTO.NewAssetAssignmentResponse(&m)
	h.resolveDisplay(resp)
	return helper.Success(c, "OK", resp)
}

// GET /api/a/asset-assignments (?asset_id=, ?open=true)
func (h *AssetAssignmentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&asgModel.AssetAssignmentModel{})
	if assetID := c.Query("asset_id"); assetID != "" {
		q = q.Where("assignment_asset_id = ?", assetID)
	}
	if c.Query("open") == "true" {
		q = q.Where("assignment_returned_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list assignments")
	}

	var rows []asgModel.AssetAssignmentModel
	if err := q.
		Order("assignment_assigned_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list assignments")
	}

	out := make([]*asgDTO.AssetAssignmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, asgDTO.NewAssetAssignmentResponse(&rows[i]))
	}

	return helper.SuccessList(c, "OK", out, helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ===================== INTERNAL ===================== */

// resolveDisplay fills the human-readable names next to the raw ids.
func (h *AssetAssignmentController) resolveDisplay(resp *asgDTO.AssetAssignmentResponse) {
	if resp.AssignmentUserID != nil {
		var u userModel.UserModel
		if err := h.DB.First(&u, "user_id = ?", *resp.AssignmentUserID).Error; err == nil {
			resp.AssignmentUserName = &u.UserFullName
		}
	}
	if resp.AssignmentDepartmentID != nil {
		var d departmentModel.DepartmentModel
		if err := h.DB.First(&d, "department_id = ?", *resp.AssignmentDepartmentID).Error; err == nil {
			resp.AssignmentDepartmentName = &d.DepartmentName
		}
	}
	if resp.AssignmentBuildingID != nil {
		var b locationModel.BuildingModel
		if err := h.DB.First(&b, "building_id = ?", *resp.AssignmentBuildingID).Error; err == nil {
			resp.AssignmentBuildingName = &b.BuildingName
		}
	}
	if resp.AssignmentRoomID != nil {
		var r locationModel.RoomModel
		if err := h.DB.First(&r, "room_id = ?", *resp.AssignmentRoomID).Error; err == nil {
			resp.AssignmentRoomName = &r.RoomName
		}
	}
}
