// internals/features/assets/assignments/service/assignment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	asgModel "asetku_backend/internals/features/assets/assignments/model"
	assetModel "asetku_backend/internals/features/assets/assets/model"
	locationModel "asetku_backend/internals/features/locations/model"
	departmentModel "asetku_backend/internals/features/organizations/model"
	userModel "asetku_backend/internals/features/users/model"
)

var (
	ErrAssetNotFound        = errors.New("asset does not exist")
	ErrAssignmentNotFound   = errors.New("assignment does not exist")
	ErrAlreadyReturned      = errors.New("assignment is already returned")
	ErrAssignConflict       = errors.New("another assignment of this asset is in progress")
	ErrOrchestrationTimeout = errors.New("assignment transaction exceeded its time budget")
)

// InvalidReferenceError names the foreign key that failed to resolve so
// the client knows which field to fix.
type InvalidReferenceError struct {
	Field string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("referenced %s does not exist", e.Field)
}

// The whole close-old/update-availability/insert-new unit must finish
// within this budget or roll back untouched.
const assignTimeout = 15 * time.Second

type AssignInput struct {
	AssetID uuid.UUID

	UserID       *uuid.UUID
	DepartmentID *uuid.UUID

	BuildingID *uuid.UUID
	FloorID    *uuid.UUID
	RoomID     *uuid.UUID

	Purpose *string
	Note    *string

	AssignedBy uuid.UUID
}

// AssignAsset is the one way an asset changes custody: inside a single
// transaction it closes the asset's open assignment (if any), derives
// the new availability from the purpose text, and opens the new row.
// Readers never observe an in-between state.
func AssignAsset(ctx context.Context, db *gorm.DB, in AssignInput) (*asgModel.AssetAssignmentModel, error) {
	ctx, cancel := context.WithTimeout(ctx, assignTimeout)
	defer cancel()

	created := &asgModel.AssetAssignmentModel{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asset assetModel.AssetModel
		if err := tx.First(&asset, "asset_id = ?", in.AssetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssetNotFound
			}
			return err
		}

		if err := validateReferences(tx, in); err != nil {
			return err
		}

		now := time.Now()

		// 1) close the current open assignment, if there is one. The
		// guarded WHERE makes a lost race visible as zero rows.
		var prev asgModel.AssetAssignmentModel
		err := tx.
			Where("assignment_asset_id = ? AND assignment_returned_at IS NULL", in.AssetID).
			Order("assignment_assigned_at DESC").
			First(&prev).Error
		switch {
		case err == nil:
			res := tx.Model(&asgModel.AssetAssignmentModel{}).
				Where("assignment_id = ? AND assignment_returned_at IS NULL", prev.AssignmentID).
				Update("assignment_returned_at", now)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrAssignConflict
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// nothing open
		default:
			return err
		}

		// 2) availability follows the new assignment's purpose
		next := assetModel.AvailabilityInUse
		if IsRepairPurpose(in.Purpose) {
			next = assetModel.AvailabilityMaintenance
		}
		if err := tx.Model(&assetModel.AssetModel{}).
			Where("asset_id = ?", asset.AssetID).
			Update("asset_availability", next).Error; err != nil {
			return err
		}

		// 3) open the new row
		*created = asgModel.AssetAssignmentModel{
			AssignmentAssetID:      in.AssetID,
			AssignmentUserID:       in.UserID,
			AssignmentDepartmentID: in.DepartmentID,
			AssignmentBuildingID:   in.BuildingID,
			AssignmentFloorID:      in.FloorID,
			AssignmentRoomID:       in.RoomID,
			AssignmentPurpose:      in.Purpose,
			AssignmentNote:         in.Note,
			AssignmentAssignedAt:   now,
			AssignmentAssignedBy:   in.AssignedBy,
		}
		if err := tx.Create(created).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// partial unique index: somebody opened a row between
				// our close and insert
				return ErrAssignConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrOrchestrationTimeout
		}
		return nil, err
	}

	return created, nil
}

// ReturnAssignment closes one assignment by id and drops the asset back
// to available unconditionally. A row that is already closed stays
// closed — returned_at is stamped exactly once.
func ReturnAssignment(ctx context.Context, db *gorm.DB, assignmentID uuid.UUID) (*asgModel.AssetAssignmentModel, error) {
	var asg asgModel.AssetAssignmentModel

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&asg, "assignment_id = ?", assignmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}
		if asg.AssignmentReturnedAt != nil {
			return ErrAlreadyReturned
		}

		now := time.Now()
		res := tx.Model(&asgModel.AssetAssignmentModel{}).
			Where("assignment_id = ? AND assignment_returned_at IS NULL", asg.AssignmentID).
			Update("assignment_returned_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyReturned
		}
		asg.AssignmentReturnedAt = &now

		return tx.Model(&assetModel.AssetModel{}).
			Where("asset_id = ?", asg.AssignmentAssetID).
			Update("asset_availability", assetModel.AvailabilityAvailable).Error
	})
	if err != nil {
		return nil, err
	}
	return &asg, nil
}

// DeleteAssignment soft-deletes a ledger row and re-derives the asset's
// availability from whatever open row remains, so the cached state
// cannot drift from ledger truth. Hard delete is not exposed.
func DeleteAssignment(ctx context.Context, db *gorm.DB, assignmentID uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asg asgModel.AssetAssignmentModel
		if err := tx.First(&asg, "assignment_id = ?", assignmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}

		if err := tx.Delete(&asgModel.AssetAssignmentModel{}, "assignment_id = ?", asg.AssignmentID).Error; err != nil {
			return err
		}

		return RecomputeAvailability(tx, asg.AssignmentAssetID)
	})
}

// RecomputeAvailability re-derives the cached availability from the
// ledger: open row → in_use/maintenance per its purpose, none →
// available. Terminal states set by admins are left alone.
func RecomputeAvailability(tx *gorm.DB, assetID uuid.UUID) error {
	var asset assetModel.AssetModel
	if err := tx.First(&asset, "asset_id = ?", assetID).Error; err != nil {
		return err
	}
	if asset.AssetAvailability.Terminal() {
		return nil
	}

	next := assetModel.AvailabilityAvailable
	var open asgModel.AssetAssignmentModel
	err := tx.
		Where("assignment_asset_id = ? AND assignment_returned_at IS NULL", assetID).
		Order("assignment_assigned_at DESC").
		First(&open).Error
	switch {
	case err == nil:
		next = assetModel.AvailabilityInUse
		if IsRepairPurpose(open.AssignmentPurpose) {
			next = assetModel.AvailabilityMaintenance
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no open custody
	default:
		return err
	}

	return tx.Model(&assetModel.AssetModel{}).
		Where("asset_id = ?", assetID).
		Update("asset_availability", next).Error
}

// IsRepairPurpose flags purposes that send the asset to maintenance
// instead of in_use. The UI is bilingual, hence both patterns.
func IsRepairPurpose(purpose *string) bool {
	if purpose == nil {
		return false
	}
	s := strings.ToLower(*purpose)
	return strings.Contains(s, "repair") || strings.Contains(s, "تعمیر")
}

func validateReferences(tx *gorm.DB, in AssignInput) error {
	checks := []struct {
		id    *uuid.UUID
		field string
		probe func(id uuid.UUID) *gorm.DB
	}{
		{in.UserID, "user_id", func(id uuid.UUID) *gorm.DB {
			return tx.Model(&userModel.UserModel{}).Where("user_id = ?", id)
		}},
		{in.DepartmentID, "department_id", func(id uuid.UUID) *gorm.DB {
			return tx.Model(&departmentModel.DepartmentModel{}).Where("department_id = ?", id)
		}},
		{in.BuildingID, "building_id", func(id uuid.UUID) *gorm.DB {
			return tx.Model(&locationModel.BuildingModel{}).Where("building_id = ?", id)
		}},
		{in.FloorID, "floor_id", func(id uuid.UUID) *gorm.DB {
			return tx.Model(&locationModel.FloorModel{}).Where("floor_id = ?", id)
		}},
		{in.RoomID, "room_id", func(id uuid.UUID) *gorm.DB {
			return tx.Model(&locationModel.RoomModel{}).Where("room_id = ?", id)
		}},
	}

	for _, chk := range checks {
		if chk.id == nil {
			continue
		}
		var n int64
		if err := chk.probe(*chk.id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return &InvalidReferenceError{Field: chk.field}
		}
	}
	return nil
}
