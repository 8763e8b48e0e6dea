// internals/features/assets/assignments/model/asset_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetAssignmentModel is one custody row in the ledger. Open means
// assignment_returned_at IS NULL; the partial unique index
// uq_asset_assignments_open (see databases.Migrate) caps open rows at
// one per asset.
type AssetAssignmentModel struct {
	// PK
	AssignmentID uuid.UUID `gorm:"type:uuid;primaryKey;column:assignment_id" json:"assignment_id"`

	AssignmentAssetID uuid.UUID `gorm:"type:uuid;not null;column:assignment_asset_id;index" json:"assignment_asset_id"`

	// Custodian: user and/or department
	AssignmentUserID       *uuid.UUID `gorm:"type:uuid;column:assignment_user_id;index" json:"assignment_user_id,omitempty"`
	AssignmentDepartmentID *uuid.UUID `gorm:"type:uuid;column:assignment_department_id;index" json:"assignment_department_id,omitempty"`

	// Location
	AssignmentBuildingID *uuid.UUID `gorm:"type:uuid;column:assignment_building_id" json:"assignment_building_id,omitempty"`
	AssignmentFloorID    *uuid.UUID `gorm:"type:uuid;column:assignment_floor_id" json:"assignment_floor_id,omitempty"`
	AssignmentRoomID     *uuid.UUID `gorm:"type:uuid;column:assignment_room_id" json:"assignment_room_id,omitempty"`

	AssignmentPurpose *string `gorm:"column:assignment_purpose" json:"assignment_purpose,omitempty"`
	AssignmentNote    *string `gorm:"column:assignment_note" json:"assignment_note,omitempty"`

	// Server-side timestamps; assigned_at is immutable, returned_at is
	// stamped exactly once.
	AssignmentAssignedAt time.Time  `gorm:"not null;column:assignment_assigned_at;index" json:"assignment_assigned_at"`
	AssignmentReturnedAt *time.Time `gorm:"column:assignment_returned_at;index" json:"assignment_returned_at,omitempty"`

	AssignmentAssignedBy uuid.UUID `gorm:"type:uuid;not null;column:assignment_assigned_by" json:"assignment_assigned_by"`

	// Audit
	AssignmentCreatedAt time.Time      `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt *time.Time     `gorm:"column:assignment_updated_at;autoUpdateTime" json:"assignment_updated_at,omitempty"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"assignment_deleted_at,omitempty"`
}

func (AssetAssignmentModel) TableName() string { return "asset_assignments" }

func (m *AssetAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssignmentID == uuid.Nil {
		m.AssignmentID = uuid.New()
	}
	return nil
}

// Open reports whether the row is the asset's current custody record.
func (m *AssetAssignmentModel) Open() bool {
	return m.AssignmentReturnedAt == nil
}
