// internals/features/assets/assets/dto/asset_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	aModel "asetku_backend/internals/features/assets/assets/model"
	"asetku_backend/internals/helpers/perdate"
)

/* ===================== REQUESTS ===================== */

type CreateAssetRequest struct {
	AssetName string `json:"asset_name" validate:"required,min=2,max=200"`

	// Empty → barcode is allocated from the category's series
	AssetBarcode    *string `json:"asset_barcode" validate:"omitempty,max=64"`
	AssetOldBarcode *string `json:"asset_old_barcode" validate:"omitempty,max=64"`

	AssetCategoryID uuid.UUID  `json:"asset_category_id" validate:"required"`
	AssetTypeID     *uuid.UUID `json:"asset_type_id" validate:"omitempty"`

	AssetAvailability *aModel.AssetAvailability `json:"asset_availability" validate:"omitempty,oneof=available in_use maintenance retired lost consumed"`
	AssetCondition    *string                   `json:"asset_condition" validate:"omitempty,max=120"`

	// Jalali ("1403/05/15", "1403-05-15") or Gregorian ISO. Anything
	// else is kept lenient: the field just stays empty.
	AssetPurchaseDate *string `json:"asset_purchase_date" validate:"omitempty"`

	AssetCost         *float64 `json:"asset_cost" validate:"omitempty,gte=0"`
	AssetSerialNumber *string  `json:"asset_serial_number" validate:"omitempty,max=120"`
	AssetDescription  *string  `json:"asset_description" validate:"omitempty"`
	AssetImages       []string `json:"asset_images" validate:"omitempty,dive,url"`
}

func (r *CreateAssetRequest) ToModel(createdBy uuid.UUID) *aModel.AssetModel {
	m := &aModel.AssetModel{
		AssetName:         r.AssetName,
		AssetOldBarcode:   r.AssetOldBarcode,
		AssetCategoryID:   r.AssetCategoryID,
		AssetTypeID:       r.AssetTypeID,
		AssetCondition:    r.AssetCondition,
		AssetCost:         r.AssetCost,
		AssetSerialNumber: r.AssetSerialNumber,
		AssetDescription:  r.AssetDescription,
		AssetCreatedBy:    &createdBy,
	}
	if r.AssetBarcode != nil {
		m.AssetBarcode = *r.AssetBarcode
	}
	if r.AssetAvailability != nil {
		m.AssetAvailability = *r.AssetAvailability
	}
	if r.AssetPurchaseDate != nil {
		if d, ok := perdate.Parse(*r.AssetPurchaseDate); ok {
			m.AssetPurchaseDate = &d
		}
	}
	if len(r.AssetImages) > 0 {
		m.AssetImages = datatypes.NewJSONSlice(r.AssetImages)
	}
	return m
}

// UpdateAssetRequest deliberately has no availability field: that
// column belongs to the assignment ledger (and the dedicated
// availability endpoint for terminal states).
type UpdateAssetRequest struct {
	AssetName       *string `json:"asset_name" validate:"omitempty,min=2,max=200"`
	AssetOldBarcode *string `json:"asset_old_barcode" validate:"omitempty,max=64"`

	AssetCategoryID *uuid.UUID `json:"asset_category_id" validate:"omitempty"`
	AssetTypeID     *uuid.UUID `json:"asset_type_id" validate:"omitempty"`

	AssetCondition    *string  `json:"asset_condition" validate:"omitempty,max=120"`
	AssetPurchaseDate *string  `json:"asset_purchase_date" validate:"omitempty"`
	AssetCost         *float64 `json:"asset_cost" validate:"omitempty,gte=0"`
	AssetSerialNumber *string  `json:"asset_serial_number" validate:"omitempty,max=120"`
	AssetDescription  *string  `json:"asset_description" validate:"omitempty"`
	AssetImages       []string `json:"asset_images" validate:"omitempty,dive,url"`
}

func (r *UpdateAssetRequest) ApplyToModel(m *aModel.AssetModel) {
	if r.AssetName != nil {
		m.AssetName = *r.AssetName
	}
	if r.AssetOldBarcode != nil {
		m.AssetOldBarcode = r.AssetOldBarcode
	}
	if r.AssetCategoryID != nil {
		m.AssetCategoryID = *r.AssetCategoryID
	}
	if r.AssetTypeID != nil {
		m.AssetTypeID = r.AssetTypeID
	}
	if r.AssetCondition != nil {
		m.AssetCondition = r.AssetCondition
	}
	if r.AssetPurchaseDate != nil {
		if d, ok := perdate.Parse(*r.AssetPurchaseDate); ok {
			m.AssetPurchaseDate = &d
		}
	}
	if r.AssetCost != nil {
		m.AssetCost = r.AssetCost
	}
	if r.AssetSerialNumber != nil {
		m.AssetSerialNumber = r.AssetSerialNumber
	}
	if r.AssetDescription != nil {
		m.AssetDescription = r.AssetDescription
	}
	if r.AssetImages != nil {
		m.AssetImages = datatypes.NewJSONSlice(r.AssetImages)
	}
}

type UpdateAssetAvailabilityRequest struct {
	AssetAvailability aModel.AssetAvailability `json:"asset_availability" validate:"required,oneof=retired lost consumed"`
}

/* ===================== RESPONSES ===================== */

type AssetResponse struct {
	AssetID uuid.UUID `json:"asset_id"`

	AssetName       string  `json:"asset_name"`
	AssetBarcode    string  `json:"asset_barcode"`
	AssetOldBarcode *string `json:"asset_old_barcode,omitempty"`

	AssetAvailability aModel.AssetAvailability `json:"asset_availability"`
	AssetCondition    *string                  `json:"asset_condition,omitempty"`

	AssetCategoryID uuid.UUID  `json:"asset_category_id"`
	AssetTypeID     *uuid.UUID `json:"asset_type_id,omitempty"`
	AssetCreatedBy  *uuid.UUID `json:"asset_created_by,omitempty"`

	AssetPurchaseDate *time.Time `json:"asset_purchase_date,omitempty"`
	AssetCost         *float64   `json:"asset_cost,omitempty"`
	AssetSerialNumber *string    `json:"asset_serial_number,omitempty"`
	AssetDescription  *string    `json:"asset_description,omitempty"`
	AssetImages       []string   `json:"asset_images,omitempty"`

	AssetCreatedAt time.Time  `json:"asset_created_at"`
	AssetUpdatedAt *time.Time `json:"asset_updated_at,omitempty"`
}

func NewAssetResponse(m *aModel.AssetModel) *AssetResponse {
	return &AssetResponse{
		AssetID:           m.AssetID,
		AssetName:         m.AssetName,
		AssetBarcode:      m.AssetBarcode,
		AssetOldBarcode:   m.AssetOldBarcode,
		AssetAvailability: m.AssetAvailability,
		AssetCondition:    m.AssetCondition,
		AssetCategoryID:   m.AssetCategoryID,
		AssetTypeID:       m.AssetTypeID,
		AssetCreatedBy:    m.AssetCreatedBy,
		AssetPurchaseDate: m.AssetPurchaseDate,
		AssetCost:         m.AssetCost,
		AssetSerialNumber: m.AssetSerialNumber,
		AssetDescription:  m.AssetDescription,
		AssetImages:       m.AssetImages,
		AssetCreatedAt:    m.AssetCreatedAt,
		AssetUpdatedAt:    m.AssetUpdatedAt,
	}
}
