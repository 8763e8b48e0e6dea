// internals/features/assets/types/dto/asset_type_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	tModel "asetku_backend/internals/features/assets/types/model"
)

type CreateAssetTypeRequest struct {
	AssetTypeName        string     `json:"asset_type_name" validate:"required,min=2,max=120"`
	AssetTypeCategoryID  *uuid.UUID `json:"asset_type_category_id" validate:"omitempty"`
	AssetTypeDescription *string    `json:"asset_type_description" validate:"omitempty"`
}

func (r *CreateAssetTypeRequest) ToModel() *tModel.AssetTypeModel {
	return &tModel.AssetTypeModel{
		AssetTypeName:        r.AssetTypeName,
		AssetTypeCategoryID:  r.AssetTypeCategoryID,
		AssetTypeDescription: r.AssetTypeDescription,
	}
}

type UpdateAssetTypeRequest struct {
	AssetTypeName        *string    `json:"asset_type_name" validate:"omitempty,min=2,max=120"`
	AssetTypeCategoryID  *uuid.UUID `json:"asset_type_category_id" validate:"omitempty"`
	AssetTypeDescription *string    `json:"asset_type_description" validate:"omitempty"`
}

func (r *UpdateAssetTypeRequest) ApplyToModel(m *tModel.AssetTypeModel) {
	if r.AssetTypeName != nil {
		m.AssetTypeName = *r.AssetTypeName
	}
	if r.AssetTypeCategoryID != nil {
		m.AssetTypeCategoryID = r.AssetTypeCategoryID
	}
	if r.AssetTypeDescription != nil {
		m.AssetTypeDescription = r.AssetTypeDescription
	}
}

type AssetTypeResponse struct {
	AssetTypeID          uuid.UUID  `json:"asset_type_id"`
	AssetTypeName        string     `json:"asset_type_name"`
	AssetTypeCategoryID  *uuid.UUID `json:"asset_type_category_id,omitempty"`
	AssetTypeDescription *string    `json:"asset_type_description,omitempty"`
	AssetTypeCreatedAt   time.Time  `json:"asset_type_created_at"`
	AssetTypeUpdatedAt   *time.Time `json:"asset_type_updated_at,omitempty"`
}

func NewAssetTypeResponse(m *tModel.AssetTypeModel) *AssetTypeResponse {
	return &AssetTypeResponse{
		AssetTypeID:          m.AssetTypeID,
		AssetTypeName:        m.AssetTypeName,
		AssetTypeCategoryID:  m.AssetTypeCategoryID,
		AssetTypeDescription: m.AssetTypeDescription,
		AssetTypeCreatedAt:   m.AssetTypeCreatedAt,
		AssetTypeUpdatedAt:   m.AssetTypeUpdatedAt,
	}
}
