// internals/features/assets/categories/model/asset_category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssetCategoryModel struct {
	// PK
	AssetCategoryID uuid.UUID `gorm:"type:uuid;primaryKey;column:asset_category_id" json:"asset_category_id"`

	AssetCategoryName string `gorm:"type:varchar(120);not null;column:asset_category_name" json:"asset_category_name"`

	// Barcode series prefix, e.g. "HW". Empty → allocator falls back to
	// the default prefix.
	AssetCategoryPrefix      *string `gorm:"type:varchar(16);column:asset_category_prefix" json:"asset_category_prefix,omitempty"`
	AssetCategoryDescription *string `gorm:"column:asset_category_description" json:"asset_category_description,omitempty"`

	// Audit
	AssetCategoryCreatedAt time.Time      `gorm:"column:asset_category_created_at;autoCreateTime" json:"asset_category_created_at"`
	AssetCategoryUpdatedAt *time.Time     `gorm:"column:asset_category_updated_at;autoUpdateTime" json:"asset_category_updated_at,omitempty"`
	AssetCategoryDeletedAt gorm.DeletedAt `gorm:"column:asset_category_deleted_at;index" json:"asset_category_deleted_at,omitempty"`
}

func (AssetCategoryModel) TableName() string { return "asset_categories" }

func (m *AssetCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssetCategoryID == uuid.Nil {
		m.AssetCategoryID = uuid.New()
	}
	return nil
}
