// internals/features/assets/types/model/asset_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssetTypeModel struct {
	// PK
	AssetTypeID uuid.UUID `gorm:"type:uuid;primaryKey;column:asset_type_id" json:"asset_type_id"`

	AssetTypeName        string     `gorm:"type:varchar(120);not null;column:asset_type_name" json:"asset_type_name"`
	AssetTypeCategoryID  *uuid.UUID `gorm:"type:uuid;column:asset_type_category_id;index" json:"asset_type_category_id,omitempty"`
	AssetTypeDescription *string    `gorm:"column:asset_type_description" json:"asset_type_description,omitempty"`

	// Audit
	AssetTypeCreatedAt time.Time      `gorm:"column:asset_type_created_at;autoCreateTime" json:"asset_type_created_at"`
	AssetTypeUpdatedAt *time.Time     `gorm:"column:asset_type_updated_at;autoUpdateTime" json:"asset_type_updated_at,omitempty"`
	AssetTypeDeletedAt gorm.DeletedAt `gorm:"column:asset_type_deleted_at;index" json:"asset_type_deleted_at,omitempty"`
}

func (AssetTypeModel) TableName() string { return "asset_types" }

func (m *AssetTypeModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssetTypeID == uuid.Nil {
		m.AssetTypeID = uuid.New()
	}
	return nil
}
