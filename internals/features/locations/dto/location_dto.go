// internals/features/locations/dto/location_dto.go
package dto

import (
	"github.com/google/uuid"

	lModel "asetku_backend/internals/features/locations/model"
)

/* ===================== BUILDING ===================== */

type CreateBuildingRequest struct {
	BuildingName    string  `json:"building_name" validate:"required,min=2,max=150"`
	BuildingAddress *string `json:"building_address" validate:"omitempty"`
}

func (r *CreateBuildingRequest) ToModel() *lModel.BuildingModel {
	return &lModel.BuildingModel{
		BuildingName:    r.BuildingName,
		BuildingAddress: r.BuildingAddress,
	}
}

type UpdateBuildingRequest struct {
	BuildingName    *string `json:"building_name" validate:"omitempty,min=2,max=150"`
	BuildingAddress *string `json:"building_address" validate:"omitempty"`
}

func (r *UpdateBuildingRequest) ApplyToModel(m *lModel.BuildingModel) {
	if r.BuildingName != nil {
		m.BuildingName = *r.BuildingName
	}
	if r.BuildingAddress != nil {
		m.BuildingAddress = r.BuildingAddress
	}
}

/* ===================== FLOOR ===================== */

type CreateFloorRequest struct {
	FloorName       string    `json:"floor_name" validate:"required,min=1,max=150"`
	FloorBuildingID uuid.UUID `json:"floor_building_id" validate:"required"`
	FloorLevel      *int      `json:"floor_level" validate:"omitempty"`
}

func (r *CreateFloorRequest) ToModel() *lModel.FloorModel {
	return &lModel.FloorModel{
		FloorName:       r.FloorName,
		FloorBuildingID: r.FloorBuildingID,
		FloorLevel:      r.FloorLevel,
	}
}

type UpdateFloorRequest struct {
	FloorName  *string `json:"floor_name" validate:"omitempty,min=1,max=150"`
	FloorLevel *int    `json:"floor_level" validate:"omitempty"`
}

func (r *UpdateFloorRequest) ApplyToModel(m *lModel.FloorModel) {
	if r.FloorName != nil {
		m.FloorName = *r.FloorName
	}
	if r.FloorLevel != nil {
		m.FloorLevel = r.FloorLevel
	}
}

/* ===================== ROOM ===================== */

type CreateRoomRequest struct {
	RoomName    string    `json:"room_name" validate:"required,min=1,max=150"`
	RoomFloorID uuid.UUID `json:"room_floor_id" validate:"required"`
	RoomNumber  *string   `json:"room_number" validate:"omitempty,max=30"`
}

func (r *CreateRoomRequest) ToModel() *lModel.RoomModel {
	return &lModel.RoomModel{
		RoomName:    r.RoomName,
		RoomFloorID: r.RoomFloorID,
		RoomNumber:  r.RoomNumber,
	}
}

type UpdateRoomRequest struct {
	RoomName   *string `json:"room_name" validate:"omitempty,min=1,max=150"`
	RoomNumber *string `json:"room_number" validate:"omitempty,max=30"`
}

func (r *UpdateRoomRequest) ApplyToModel(m *lModel.RoomModel) {
	if r.RoomName != nil {
		m.RoomName = *r.RoomName
	}
	if r.RoomNumber != nil {
		m.RoomNumber = r.RoomNumber
	}
}
