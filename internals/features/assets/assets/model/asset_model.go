// internals/features/assets/assets/model/asset_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
Availability (matches the ENUM in the DB):
- "available"
- "in_use"
- "maintenance"
- "retired"
- "lost"
- "consumed"

Only the assignment service writes in_use/maintenance/available; the
terminal states come from the dedicated availability endpoint. General
asset edits never touch this column.
*/
type AssetAvailability string

const (
	AvailabilityAvailable   AssetAvailability = "available"
	AvailabilityInUse       AssetAvailability = "in_use"
	AvailabilityMaintenance AssetAvailability = "maintenance"
	AvailabilityRetired     AssetAvailability = "retired"
	AvailabilityLost        AssetAvailability = "lost"
	AvailabilityConsumed    AssetAvailability = "consumed"
)

// Always lower-case on scan/save (safe if the source is ever mixed-case)
func (s *AssetAvailability) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = AssetAvailability(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = AssetAvailability(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = AssetAvailability(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (s AssetAvailability) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// Terminal reports whether the state is one that only a direct admin
// edit may set.
func (s AssetAvailability) Terminal() bool {
	switch s {
	case AvailabilityRetired, AvailabilityLost, AvailabilityConsumed:
		return true
	}
	return false
}

type AssetModel struct {
	// PK
	AssetID uuid.UUID `gorm:"type:uuid;primaryKey;column:asset_id" json:"asset_id"`

	AssetName string `gorm:"type:varchar(200);not null;column:asset_name" json:"asset_name"`

	// Barcode: "{prefix}-{jYYYYMM}-{seq4}" when auto-generated, or
	// whatever the caller supplied. Unique either way.
	AssetBarcode    string  `gorm:"type:varchar(64);unique;not null;column:asset_barcode" json:"asset_barcode"`
	AssetOldBarcode *string `gorm:"type:varchar(64);column:asset_old_barcode" json:"asset_old_barcode,omitempty"`

	AssetAvailability AssetAvailability `gorm:"type:varchar(20);not null;default:'available';column:asset_availability" json:"asset_availability"`
	AssetCondition    *string           `gorm:"type:varchar(120);column:asset_condition" json:"asset_condition,omitempty"`

	// Refs
	AssetCategoryID uuid.UUID  `gorm:"type:uuid;not null;column:asset_category_id;index" json:"asset_category_id"`
	AssetTypeID     *uuid.UUID `gorm:"type:uuid;column:asset_type_id;index" json:"asset_type_id,omitempty"`
	AssetCreatedBy  *uuid.UUID `gorm:"type:uuid;column:asset_created_by" json:"asset_created_by,omitempty"`

	// Detail
	AssetPurchaseDate *time.Time                 `gorm:"type:date;column:asset_purchase_date" json:"asset_purchase_date,omitempty"`
	AssetCost         *float64                   `gorm:"type:numeric(14,2);column:asset_cost" json:"asset_cost,omitempty"`
	AssetSerialNumber *string                    `gorm:"type:varchar(120);column:asset_serial_number" json:"asset_serial_number,omitempty"`
	AssetDescription  *string                    `gorm:"column:asset_description" json:"asset_description,omitempty"`
	AssetImages       datatypes.JSONSlice[string] `gorm:"column:asset_images" json:"asset_images,omitempty"`

	// Audit
	AssetCreatedAt time.Time      `gorm:"column:asset_created_at;autoCreateTime" json:"asset_created_at"`
	AssetUpdatedAt *time.Time     `gorm:"column:asset_updated_at;autoUpdateTime" json:"asset_updated_at,omitempty"`
	AssetDeletedAt gorm.DeletedAt `gorm:"column:asset_deleted_at;index" json:"asset_deleted_at,omitempty"`
}

func (AssetModel) TableName() string { return "assets" }

func (m *AssetModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssetID == uuid.Nil {
		m.AssetID = uuid.New()
	}
	if m.AssetAvailability == "" {
		m.AssetAvailability = AvailabilityAvailable
	}
	return nil
}
