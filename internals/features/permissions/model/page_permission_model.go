// internals/features/permissions/model/page_permission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Page-level grants: (page key, role) → allowed. The page guard
// middleware queries this table.
type PagePermissionModel struct {
	PagePermissionID uuid.UUID `gorm:"type:uuid;primaryKey;column:page_permission_id" json:"page_permission_id"`

	PagePermissionPageKey string `gorm:"type:varchar(120);not null;column:page_permission_page_key;uniqueIndex:uq_page_permission_key_role" json:"page_permission_page_key"`
	PagePermissionRole    string `gorm:"type:varchar(30);not null;column:page_permission_role;uniqueIndex:uq_page_permission_key_role" json:"page_permission_role"`
	PagePermissionAllowed bool   `gorm:"not null;default:false;column:page_permission_allowed" json:"page_permission_allowed"`

	PagePermissionCreatedAt time.Time      `gorm:"column:page_permission_created_at;autoCreateTime" json:"page_permission_created_at"`
	PagePermissionUpdatedAt *time.Time     `gorm:"column:page_permission_updated_at;autoUpdateTime" json:"page_permission_updated_at,omitempty"`
	PagePermissionDeletedAt gorm.DeletedAt `gorm:"column:page_permission_deleted_at;index" json:"page_permission_deleted_at,omitempty"`
}

func (PagePermissionModel) TableName() string { return "page_permissions" }

func (m *PagePermissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.PagePermissionID == uuid.Nil {
		m.PagePermissionID = uuid.New()
	}
	return nil
}
