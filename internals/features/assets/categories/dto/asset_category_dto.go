// internals/features/assets/categories/dto/asset_category_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	cModel "asetku_backend/internals/features/assets/categories/model"
)

/* ===================== REQUESTS ===================== */

type CreateAssetCategoryRequest struct {
	AssetCategoryName        string  `json:"asset_category_name" validate:"required,min=2,max=120"`
	AssetCategoryPrefix      *string `json:"asset_category_prefix" validate:"omitempty,max=16,alphanum"`
	AssetCategoryDescription *string `json:"asset_category_description" validate:"omitempty"`
}

func (r *CreateAssetCategoryRequest) ToModel() *cModel.AssetCategoryModel {
	return &cModel.AssetCategoryModel{
		AssetCategoryName:        r.AssetCategoryName,
		AssetCategoryPrefix:      r.AssetCategoryPrefix,
		AssetCategoryDescription: r.AssetCategoryDescription,
	}
}

type UpdateAssetCategoryRequest struct {
	AssetCategoryName        *string `json:"asset_category_name" validate:"omitempty,min=2,max=120"`
	AssetCategoryPrefix      *string `json:"asset_category_prefix" validate:"omitempty,max=16,alphanum"`
	AssetCategoryDescription *string `json:"asset_category_description" validate:"omitempty"`
}

func (r *UpdateAssetCategoryRequest) ApplyToModel(m *cModel.AssetCategoryModel) {
	if r.AssetCategoryName != nil {
		m.AssetCategoryName = *r.AssetCategoryName
	}
	if r.AssetCategoryPrefix != nil {
		m.AssetCategoryPrefix = r.AssetCategoryPrefix
	}
	if r.AssetCategoryDescription != nil {
		m.AssetCategoryDescription = r.AssetCategoryDescription
	}
}

/* ===================== RESPONSES ===================== */

type AssetCategoryResponse struct {
	AssetCategoryID          uuid.UUID  `json:"asset_category_id"`
	AssetCategoryName        string     `json:"asset_category_name"`
	AssetCategoryPrefix      *string    `json:"asset_category_prefix,omitempty"`
	AssetCategoryDescription *string    `json:"asset_category_description,omitempty"`
	AssetCategoryCreatedAt   time.Time  `json:"asset_category_created_at"`
	AssetCategoryUpdatedAt   *time.Time `json:"asset_category_updated_at,omitempty"`
}

func NewAssetCategoryResponse(m *cModel.AssetCategoryModel) *AssetCategoryResponse {
	return &AssetCategoryResponse{
		AssetCategoryID:          m.AssetCategoryID,
		AssetCategoryName:        m.AssetCategoryName,
		AssetCategoryPrefix:      m.AssetCategoryPrefix,
		AssetCategoryDescription: m.AssetCategoryDescription,
		AssetCategoryCreatedAt:   m.AssetCategoryCreatedAt,
		AssetCategoryUpdatedAt:   m.AssetCategoryUpdatedAt,
	}
}
