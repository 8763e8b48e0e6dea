package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "asetku_backend/internals/databases"
	aModel "asetku_backend/internals/features/assets/assets/model"
	cModel "asetku_backend/internals/features/assets/categories/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, prefix string) *cModel.AssetCategoryModel {
	t.Helper()
	cat := &cModel.AssetCategoryModel{AssetCategoryName: "Hardware"}
	if prefix != "" {
		cat.AssetCategoryPrefix = &prefix
	}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

func TestCreateAssetAllocatesSequentialBarcodes(t *testing.T) {
	db := openTestDB(t)
	cat := seedCategory(t, db, "HW")

	purchase := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC) // 15 Mordad 1403

	first := &aModel.AssetModel{
		AssetName:         "Laptop A",
		AssetCategoryID:   cat.AssetCategoryID,
		AssetPurchaseDate: &purchase,
	}
	require.NoError(t, CreateAsset(context.Background(), db, first))
	assert.Equal(t, "HW-140305-0001", first.AssetBarcode)
	assert.Equal(t, aModel.AvailabilityAvailable, first.AssetAvailability)

	second := &aModel.AssetModel{
		AssetName:         "Laptop B",
		AssetCategoryID:   cat.AssetCategoryID,
		AssetPurchaseDate: &purchase,
	}
	require.NoError(t, CreateAsset(context.Background(), db, second))
	assert.Equal(t, "HW-140305-0002", second.AssetBarcode)
}

func TestCreateAssetSeriesIsPerPrefixAndMonth(t *testing.T) {
	db := openTestDB(t)
	cat := seedCategory(t, db, "HW")

	aug := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)  // Mordad 1403
	sep := time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC) // Shahrivar 1403

	a := &aModel.AssetModel{AssetName: "A", AssetCategoryID: cat.AssetCategoryID, AssetPurchaseDate: &aug}
	require.NoError(t, CreateAsset(context.Background(), db, a))
	assert.Equal(t, "HW-140305-0001", a.AssetBarcode)

	// A different Jalali month starts its own sequence
	b := &aModel.AssetModel{AssetName: "B", AssetCategoryID: cat.AssetCategoryID, AssetPurchaseDate: &sep}
	require.NoError(t, CreateAsset(context.Background(), db, b))
	assert.Equal(t, "HW-140306-0001", b.AssetBarcode)
}

func TestCreateAssetFallsBackToDefaultPrefix(t *testing.T) {
	db := openTestDB(t)
	cat := seedCategory(t, db, "")

	purchase := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)
	m := &aModel.AssetModel{AssetName: "X", AssetCategoryID: cat.AssetCategoryID, AssetPurchaseDate: &purchase}
	require.NoError(t, CreateAsset(context.Background(), db, m))
	assert.Equal(t, "AST-140305-0001", m.AssetBarcode)
}

func TestCreateAssetKeepsExplicitBarcode(t *testing.T) {
	db := openTestDB(t)
	cat := seedCategory(t, db, "HW")

	m := &aModel.AssetModel{
		AssetName:       "Imported",
		AssetCategoryID: cat.AssetCategoryID,
		AssetBarcode:    "LEGACY-0042",
	}
	require.NoError(t, CreateAsset(context.Background(), db, m))
	assert.Equal(t, "LEGACY-0042", m.AssetBarcode)
}

func TestCreateAssetRejectsDuplicateExplicitBarcode(t *testing.T) {
	db := openTestDB(t)
	cat := seedCategory(t, db, "HW")

	first := &aModel.AssetModel{AssetName: "A", AssetCategoryID: cat.AssetCategoryID, AssetBarcode: "LEGACY-0042"}
	require.NoError(t, CreateAsset(context.Background(), db, first))

	dupe := &aModel.AssetModel{AssetName: "B", AssetCategoryID: cat.AssetCategoryID, AssetBarcode: "LEGACY-0042"}
	err := CreateAsset(context.Background(), db, dupe)
	assert.ErrorIs(t, err, ErrDuplicateBarcode)

	var n int64
	require.NoError(t, db.Model(&aModel.AssetModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCreateAssetRejectsUnknownCategory(t *testing.T) {
	db := openTestDB(t)

	m := &aModel.AssetModel{AssetName: "Orphan"}
	err := CreateAsset(context.Background(), db, m)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCreateAssetSkipsOverRowsInsertedOutsideTheAllocator(t *testing.T) {
	db := openTestDB(t)
	cat := seedCategory(t, db, "HW")

	// A row created without the allocator already holds 0001.
	require.NoError(t, db.Create(&aModel.AssetModel{
		AssetName:       "Manual",
		AssetCategoryID: cat.AssetCategoryID,
		AssetBarcode:    "HW-140305-0001",
	}).Error)

	purchase := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)
	m := &aModel.AssetModel{AssetName: "Auto", AssetCategoryID: cat.AssetCategoryID, AssetPurchaseDate: &purchase}
	require.NoError(t, CreateAsset(context.Background(), db, m))
	assert.Equal(t, "HW-140305-0002", m.AssetBarcode)
}

func TestCreateAssetContinuesSeriesPastSoftDeletedRows(t *testing.T) {
	db := openTestDB(t)
	cat := seedCategory(t, db, "HW")
	purchase := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)

	first := &aModel.AssetModel{AssetName: "A", AssetCategoryID: cat.AssetCategoryID, AssetPurchaseDate: &purchase}
	require.NoError(t, CreateAsset(context.Background(), db, first))
	require.Equal(t, "HW-140305-0001", first.AssetBarcode)

	// Soft-deleted assets keep their barcode; the series must not
	// reissue it.
	require.NoError(t, db.Delete(&aModel.AssetModel{}, "asset_id = ?", first.AssetID).Error)

	second := &aModel.AssetModel{AssetName: "B", AssetCategoryID: cat.AssetCategoryID, AssetPurchaseDate: &purchase}
	require.NoError(t, CreateAsset(context.Background(), db, second))
	assert.Equal(t, "HW-140305-0002", second.AssetBarcode)

	// Explicit reuse of the deleted row's barcode still trips the guard.
	dupe := &aModel.AssetModel{AssetName: "C", AssetCategoryID: cat.AssetCategoryID, AssetBarcode: "HW-140305-0001"}
	assert.ErrorIs(t, CreateAsset(context.Background(), db, dupe), ErrDuplicateBarcode)
}

func TestCreateAssetConcurrentCreatorsGetDistinctBarcodes(t *testing.T) {
	db := openTestDB(t)
	cat := seedCategory(t, db, "HW")
	purchase := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)

	const workers = 5
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m := &aModel.AssetModel{
				AssetName:         "Concurrent",
				AssetCategoryID:   cat.AssetCategoryID,
				AssetPurchaseDate: &purchase,
			}
			errs[i] = CreateAsset(context.Background(), db, m)
		}(i)
	}
	wg.Wait()

	// A worker may exhaust its retries under heavy contention; what can
	// never happen is two rows sharing a barcode.
	succeeded := 0
	for i, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, ErrDuplicateBarcode, "worker %d", i)
	}
	require.GreaterOrEqual(t, succeeded, 1)

	var barcodes []string
	require.NoError(t, db.Model(&aModel.AssetModel{}).Pluck("asset_barcode", &barcodes).Error)
	require.Len(t, barcodes, succeeded)

	seen := map[string]bool{}
	for _, b := range barcodes {
		assert.False(t, seen[b], "duplicate barcode %s", b)
		seen[b] = true
	}
}

func TestNextBarcodeStartsEachSeriesAtOne(t *testing.T) {
	db := openTestDB(t)

	got, err := NextBarcode(db, "HW", time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "HW-140305-0001", got)
}

func TestLastSeq(t *testing.T) {
	assert.Equal(t, 7, lastSeq("HW-140305-0007"))
	assert.Equal(t, 0, lastSeq("HW-140305-junk"))
	assert.Equal(t, 0, lastSeq("plain"))
}
