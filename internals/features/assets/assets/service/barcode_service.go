// internals/features/assets/assets/service/barcode_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	aModel "asetku_backend/internals/features/assets/assets/model"
	cModel "asetku_backend/internals/features/assets/categories/model"
	"asetku_backend/internals/helpers/perdate"
)

var (
	ErrInvalidCategory  = errors.New("asset category does not exist")
	ErrDuplicateBarcode = errors.New("barcode already in use")
)

const (
	// Prefix when the category has none configured
	DefaultBarcodePrefix = "AST"

	barcodeSeqWidth = 4

	// The scan-max allocator can race another creator into the same
	// sequence number; the unique constraint is the authority and we
	// just recompute and try again.
	createAttempts = 3
)

// NextBarcode derives the next free suffix for the
// "{prefix}-{jYYYYMM}-" series by scanning the current max. Not safe
// against concurrent creators — CreateAsset pairs it with the unique
// constraint and a retry loop.
func NextBarcode(tx *gorm.DB, prefix string, purchaseDate time.Time) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultBarcodePrefix
	}
	series := fmt.Sprintf("%s-%s-", prefix, perdate.YearMonth(purchaseDate))

	// Unscoped: soft-deleted assets keep their barcode (the unique
	// constraint spans them), so their suffixes are still taken.
	var last []string
	err := tx.Unscoped().Model(&aModel.AssetModel{}).
		Where("asset_barcode LIKE ?", series+"%").
		Order("asset_barcode DESC").
		Limit(1).
		Pluck("asset_barcode", &last).Error
	if err != nil {
		return "", err
	}

	seq := 1
	if len(last) > 0 {
		seq = lastSeq(last[0]) + 1
	}
	return fmt.Sprintf("%s%0*d", series, barcodeSeqWidth, seq), nil
}

// lastSeq parses the trailing "-NNNN" segment; anything unparseable
// counts as 0 so the series restarts at 0001.
func lastSeq(barcode string) int {
	parts := strings.Split(barcode, "-")
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// BarcodeInUse is the pre-insert convenience check; the constraint in
// the DB stays the final arbiter. Counts soft-deleted rows as well,
// matching what the constraint will reject.
func BarcodeInUse(tx *gorm.DB, barcode string) (bool, error) {
	var n int64
	err := tx.Unscoped().Model(&aModel.AssetModel{}).
		Where("asset_barcode = ?", barcode).
		Count(&n).Error
	return n > 0, err
}

// CreateAsset validates the category, finalizes the barcode
// (caller-supplied or allocated from the category's series) and
// inserts. Auto-generated barcodes are recomputed and retried when an
// insert loses the race on the unique constraint; explicit barcodes
// fail straight away with ErrDuplicateBarcode.
func CreateAsset(ctx context.Context, db *gorm.DB, m *aModel.AssetModel) error {
	var category cModel.AssetCategoryModel
	if err := db.WithContext(ctx).
		First(&category, "asset_category_id = ?", m.AssetCategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCategory
		}
		return err
	}

	explicit := strings.TrimSpace(m.AssetBarcode) != ""

	prefix := DefaultBarcodePrefix
	if category.AssetCategoryPrefix != nil && strings.TrimSpace(*category.AssetCategoryPrefix) != "" {
		prefix = strings.TrimSpace(*category.AssetCategoryPrefix)
	}

	seriesDate := time.Now()
	if m.AssetPurchaseDate != nil {
		seriesDate = *m.AssetPurchaseDate
	}

	for attempt := 0; attempt < createAttempts; attempt++ {
		if !explicit {
			barcode, err := NextBarcode(db.WithContext(ctx), prefix, seriesDate)
			if err != nil {
				return err
			}
			m.AssetBarcode = barcode
		}

		if used, err := BarcodeInUse(db.WithContext(ctx), m.AssetBarcode); err != nil {
			return err
		} else if used {
			if explicit {
				return ErrDuplicateBarcode
			}
			continue
		}

		err := db.WithContext(ctx).Create(m).Error
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if explicit {
				return ErrDuplicateBarcode
			}
			// lost the race; rescan and retry
			m.AssetID = uuid.Nil
			continue
		}
		return err
	}

	return ErrDuplicateBarcode
}
