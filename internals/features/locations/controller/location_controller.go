// internals/features/locations/controller/location_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	lDTO "asetku_backend/internals/features/locations/dto"
	lModel "asetku_backend/internals/features/locations/model"
	helper "asetku_backend/internals/helpers"
)

// LocationController serves the building → floor → room hierarchy. The
// models are returned as-is; these are plain reference tables.
type LocationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db, Validate: validator.New()}
}

/* ===================== BUILDINGS ===================== */

func (h *LocationController) CreateBuilding(c *fiber.Ctx) error {
	var req lDTO.CreateBuildingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create building")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Building created", m)
}

func (h *LocationController) UpdateBuilding(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var req lDTO.UpdateBuildingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m lModel.BuildingModel
	if err := h.DB.First(&m, "building_id = ?", id).Error; err != nil {
		return notFoundOr500(err, "Building")
	}
	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update building")
	}
	return helper.Success(c, "Building updated", m)
}

func (h *LocationController) DeleteBuilding(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	if err := h.DB.Delete(&lModel.BuildingModel{}, "building_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete building")
	}
	return helper.Success(c, "Building deleted", fiber.Map{"building_id": id})
}

func (h *LocationController) ListBuildings(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)
	var total int64
	if err := h.DB.Model(&lModel.BuildingModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list buildings")
	}
	var rows []lModel.BuildingModel
	if err := h.DB.
		Order("building_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list buildings")
	}
	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ===================== FLOORS ===================== */

func (h *LocationController) CreateFloor(c *fiber.Ctx) error {
	var req lDTO.CreateFloorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// floor must hang off an existing building
	var n int64
	if err := h.DB.Model(&lModel.BuildingModel{}).
		Where("building_id = ?", req.FloorBuildingID).Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create floor")
	}
	if n == 0 {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"Building does not exist", fiber.Map{"floor_building_id": "not_found"})
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create floor")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Floor created", m)
}

func (h *LocationController) UpdateFloor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var req lDTO.UpdateFloorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m lModel.FloorModel
	if err := h.DB.First(&m, "floor_id = ?", id).Error; err != nil {
		return notFoundOr500(err, "Floor")
	}
	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update floor")
	}
	return helper.Success(c, "Floor updated", m)
}

func (h *LocationController) DeleteFloor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	if err := h.DB.Delete(&lModel.FloorModel{}, "floor_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete floor")
	}
	return helper.Success(c, "Floor deleted", fiber.Map{"floor_id": id})
}

func (h *LocationController) ListFloors(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&lModel.FloorModel{})
	if b := c.Query("building_id"); b != "" {
		q = q.Where("floor_building_id = ?", b)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list floors")
	}
	var rows []lModel.FloorModel
	if err := q.
		Order("floor_level ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list floors")
	}
	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ===================== ROOMS ===================== */

func (h *LocationController) CreateRoom(c *fiber.Ctx) error {
	var req lDTO.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	if err := h.DB.Model(&lModel.FloorModel{}).
		Where("floor_id = ?", req.RoomFloorID).Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create room")
	}
	if n == 0 {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"Floor does not exist", fiber.Map{"room_floor_id": "not_found"})
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create room")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Room created", m)
}

func (h *LocationController) UpdateRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var req lDTO.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m lModel.RoomModel
	if err := h.DB.First(&m, "room_id = ?", id).Error; err != nil {
		return notFoundOr500(err, "Room")
	}
	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update room")
	}
	return helper.Success(c, "Room updated", m)
}

func (h *LocationController) DeleteRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	if err := h.DB.Delete(&lModel.RoomModel{}, "room_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete room")
	}
	return helper.Success(c, "Room deleted", fiber.Map{"room_id": id})
}

func (h *LocationController) ListRooms(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&lModel.RoomModel{})
	if f := c.Query("floor_id"); f != "" {
		q = q.Where("room_floor_id = ?", f)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list rooms")
	}
	var rows []lModel.RoomModel
	if err := q.
		Order("room_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list rooms")
	}
	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ===================== INTERNAL ===================== */

func notFoundOr500(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, what+" not found")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Failed to load "+what)
}
