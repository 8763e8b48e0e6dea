package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aModel "asetku_backend/internals/features/assets/assets/model"
)

// General edits must never move the availability column; only the
// assignment service and the availability endpoint write it.
func TestUpdateAssetDoesNotTouchAvailability(t *testing.T) {
	m := &aModel.AssetModel{
		AssetName:         "Projector",
		AssetAvailability: aModel.AvailabilityInUse,
	}

	name := "Projector (hall B)"
	cond := "scratched casing"
	req := UpdateAssetRequest{
		AssetName:      &name,
		AssetCondition: &cond,
	}
	req.ApplyToModel(m)

	assert.Equal(t, "Projector (hall B)", m.AssetName)
	assert.Equal(t, aModel.AvailabilityInUse, m.AssetAvailability)
}

func TestCreateAssetRequestParsesJalaliPurchaseDate(t *testing.T) {
	raw := "1403/05/15"
	req := CreateAssetRequest{
		AssetName:         "Laptop",
		AssetCategoryID:   uuid.New(),
		AssetPurchaseDate: &raw,
	}

	m := req.ToModel(uuid.New())
	require.NotNil(t, m.AssetPurchaseDate)
	assert.Equal(t, time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC), *m.AssetPurchaseDate)
}

func TestCreateAssetRequestKeepsUnparseableDateEmpty(t *testing.T) {
	raw := "sometime last year"
	req := CreateAssetRequest{
		AssetName:         "Laptop",
		AssetCategoryID:   uuid.New(),
		AssetPurchaseDate: &raw,
	}

	m := req.ToModel(uuid.New())
	assert.Nil(t, m.AssetPurchaseDate)
}
