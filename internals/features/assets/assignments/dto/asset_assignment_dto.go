// internals/features/assets/assignments/dto/asset_assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	asgModel "asetku_backend/internals/features/assets/assignments/model"
	"asetku_backend/internals/features/assets/assignments/service"
)

/* ===================== REQUESTS ===================== */

type CreateAssetAssignmentRequest struct {
	AssignmentAssetID uuid.UUID `json:"assignment_asset_id" validate:"required"`

	// Custodian: user and/or department; at least one is expected
	AssignmentUserID       *uuid.UUID `json:"assignment_user_id" validate:"omitempty"`
	AssignmentDepartmentID *uuid.UUID `json:"assignment_department_id" validate:"required_without=AssignmentUserID"`

	AssignmentBuildingID *uuid.UUID `json:"assignment_building_id" validate:"omitempty"`
	AssignmentFloorID    *uuid.UUID `json:"assignment_floor_id" validate:"omitempty"`
	AssignmentRoomID     *uuid.UUID `json:"assignment_room_id" validate:"omitempty"`

	AssignmentPurpose *string `json:"assignment_purpose" validate:"omitempty,max=500"`
	AssignmentNote    *string `json:"assignment_note" validate:"omitempty,max=1000"`
}

func (r *CreateAssetAssignmentRequest) ToInput(assignedBy uuid.UUID) service.AssignInput {
	return service.AssignInput{
		AssetID:      r.AssignmentAssetID,
		UserID:       r.AssignmentUserID,
		DepartmentID: r.AssignmentDepartmentID,
		BuildingID:   r.AssignmentBuildingID,
		FloorID:      r.AssignmentFloorID,
		RoomID:       r.AssignmentRoomID,
		Purpose:      r.AssignmentPurpose,
		Note:         r.AssignmentNote,
		AssignedBy:   assignedBy,
	}
}

/* ===================== RESPONSES ===================== */

type AssetAssignmentResponse struct {
	AssignmentID      uuid.UUID `json:"assignment_id"`
	AssignmentAssetID uuid.UUID `json:"assignment_asset_id"`

	AssignmentUserID       *uuid.UUID `json:"assignment_user_id,omitempty"`
	AssignmentDepartmentID *uuid.UUID `json:"assignment_department_id,omitempty"`

	AssignmentBuildingID *uuid.UUID `json:"assignment_building_id,omitempty"`
	AssignmentFloorID    *uuid.UUID `json:"assignment_floor_id,omitempty"`
	AssignmentRoomID     *uuid.UUID `json:"assignment_room_id,omitempty"`

	AssignmentPurpose *string `json:"assignment_purpose,omitempty"`
	AssignmentNote    *string `json:"assignment_note,omitempty"`

	AssignmentAssignedAt time.Time  `json:"assignment_assigned_at"`
	AssignmentReturnedAt *time.Time `json:"assignment_returned_at,omitempty"`
	AssignmentAssignedBy uuid.UUID  `json:"assignment_assigned_by"`

	// Resolved display names, filled when the ledger is read with its
	// reference data
	AssignmentUserName       *string `json:"assignment_user_name,omitempty"`
	AssignmentDepartmentName *string `json:"assignment_department_name,omitempty"`
	AssignmentBuildingName   *string `json:"assignment_building_name,omitempty"`
	AssignmentRoomName       *string `json:"assignment_room_name,omitempty"`
}

func NewAssetAssignmentResponse(m *asgModel.AssetAssignmentModel) *AssetAssignmentResponse {
	return &AssetAssignmentResponse{
		AssignmentID:           m.AssignmentID,
		AssignmentAssetID:      m.AssignmentAssetID,
		AssignmentUserID:       m.AssignmentUserID,
		AssignmentDepartmentID: m.AssignmentDepartmentID,
		AssignmentBuildingID:   m.AssignmentBuildingID,
		AssignmentFloorID:      m.AssignmentFloorID,
		AssignmentRoomID:       m.AssignmentRoomID,
		AssignmentPurpose:      m.AssignmentPurpose,
		AssignmentNote:         m.AssignmentNote,
		AssignmentAssignedAt:   m.AssignmentAssignedAt,
		AssignmentReturnedAt:   m.AssignmentReturnedAt,
		AssignmentAssignedBy:   m.AssignmentAssignedBy,
	}
}
