package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "asetku_backend/internals/databases"
	asgModel "asetku_backend/internals/features/assets/assignments/model"
	assetModel "asetku_backend/internals/features/assets/assets/model"
	categoryModel "asetku_backend/internals/features/assets/categories/model"
	locationModel "asetku_backend/internals/features/locations/model"
	departmentModel "asetku_backend/internals/features/organizations/model"
	userModel "asetku_backend/internals/features/users/model"
)

type fixture struct {
	db *gorm.DB

	asset      *assetModel.AssetModel
	user       *userModel.UserModel
	department *departmentModel.DepartmentModel
	building   *locationModel.BuildingModel
	floor      *locationModel.FloorModel
	room       *locationModel.RoomModel

	actor uuid.UUID
}

func newFixture(t *testing.T) *fixture {
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

	cat := &categoryModel.AssetCategoryModel{AssetCategoryName: "Hardware"}
	require.NoError(t, db.Create(cat).Error)

	f := &fixture{db: db}

	f.asset = &assetModel.AssetModel{
		AssetName:       "Projector",
		AssetBarcode:    "HW-140305-0001",
		AssetCategoryID: cat.AssetCategoryID,
	}
	require.NoError(t, db.Create(f.asset).Error)

	f.user = &userModel.UserModel{
		UserUserName: "m.karimi",
		UserFullName: "Maryam Karimi",
		UserPassword: "x",
		UserRole:     "staff",
	}
	require.NoError(t, db.Create(f.user).Error)

	f.department = &departmentModel.DepartmentModel{DepartmentName: "IT"}
	require.NoError(t, db.Create(f.department).Error)

	f.building = &locationModel.BuildingModel{BuildingName: "HQ"}
	require.NoError(t, db.Create(f.building).Error)
	f.floor = &locationModel.FloorModel{FloorName: "2nd", FloorBuildingID: f.building.BuildingID}
	require.NoError(t, db.Create(f.floor).Error)
	f.room = &locationModel.RoomModel{RoomName: "Server room", RoomFloorID: f.floor.FloorID}
	require.NoError(t, db.Create(f.room).Error)

	f.actor = uuid.New()
	return f
}

func (f *fixture) reloadAsset(t *testing.T) *assetModel.AssetModel {
	t.Helper()
	var m assetModel.AssetModel
	require.NoError(t, f.db.First(&m, "asset_id = ?", f.asset.AssetID).Error)
	return &m
}

func (f *fixture) openAssignments(t *testing.T) []asgModel.AssetAssignmentModel {
	t.Helper()
	var rows []asgModel.AssetAssignmentModel
	require.NoError(t, f.db.
		Where("assignment_asset_id = ? AND assignment_returned_at IS NULL", f.asset.AssetID).
		Find(&rows).Error)
	return rows
}

func strPtr(s string) *string { return &s }

func TestAssignAssetOpensLedgerAndFlipsAvailability(t *testing.T) {
	f := newFixture(t)

	got, err := AssignAsset(context.Background(), f.db, AssignInput{
		AssetID:    f.asset.AssetID,
		UserID:     &f.user.UserID,
		BuildingID: &f.building.BuildingID,
		RoomID:     &f.room.RoomID,
		Purpose:    strPtr("daily office use"),
		AssignedBy: f.actor,
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Open())
	assert.Equal(t, f.actor, got.AssignmentAssignedBy)
	assert.False(t, got.AssignmentAssignedAt.IsZero())

	assert.Equal(t, assetModel.AvailabilityInUse, f.reloadAsset(t).AssetAvailability)
	assert.Len(t, f.openAssignments(t), 1)
}

func TestAssignAssetRepairPurposeMeansMaintenance(t *testing.T) {
	f := newFixture(t)

	_, err := AssignAsset(context.Background(), f.db, AssignInput{
		AssetID:      f.asset.AssetID,
		DepartmentID: &f.department.DepartmentID,
		Purpose:      strPtr("Sent out for repair"),
		AssignedBy:   f.actor,
	})
	require.NoError(t, err)

	assert.Equal(t, assetModel.AvailabilityMaintenance, f.reloadAsset(t).AssetAvailability)
}

func TestAssignAssetClosesPreviousAssignment(t *testing.T) {
	f := newFixture(t)

	first, err := AssignAsset(context.Background(), f.db, AssignInput{
		AssetID:    f.asset.AssetID,
		UserID:     &f.user.UserID,
		AssignedBy: f.actor,
	})
	require.NoError(t, err)

	second, err := AssignAsset(context.Background(), f.db, AssignInput{
		AssetID:      f.asset.AssetID,
		DepartmentID: &f.department.DepartmentID,
		AssignedBy:   f.actor,
	})
	require.NoError(t, err)

	open := f.openAssignments(t)
	require.Len(t, open, 1)
	assert.Equal(t, second.AssignmentID, open[0].AssignmentID)

	var prev asgModel.AssetAssignmentModel
	require.NoError(t, f.db.First(&prev, "assignment_id = ?", first.AssignmentID).Error)
	require.NotNil(t, prev.AssignmentReturnedAt)

	// full history stays in the ledger
	var total int64
	require.NoError(t, f.db.Model(&asgModel.AssetAssignmentModel{}).
		Where("assignment_asset_id = ?", f.asset.AssetID).Count(&total).Error)
	assert.EqualValues(t, 2, total)
}

func TestAssignAssetUnknownAsset(t *testing.T) {
	f := newFixture(t)

	_, err := AssignAsset(context.Background(), f.db, AssignInput{
		AssetID:    uuid.New(),
		AssignedBy: f.actor,
	})
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestAssignAssetInvalidReferenceLeavesEverythingUntouched(t *testing.T) {
	f := newFixture(t)

	ghost := uuid.New()
	_, err := AssignAsset(context.Background(), f.db, AssignInput{
		AssetID:    f.asset.AssetID,
		UserID:     &ghost,
		AssignedBy: f.actor,
	})

	var refErr *InvalidReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "user_id", refErr.Field)

	// the failed attempt must not leak partial state
	assert.Equal(t, assetModel.AvailabilityAvailable, f.reloadAsset(t).AssetAvailability)
	assert.Empty(t, f.openAssignments(t))
}

func TestAssignAssetInvalidReferenceDoesNotCloseOpenAssignment(t *testing.T) {
	f := newFixture(t)

	first, err := AssignAsset(context.Background(), f.db, AssignInput{
		AssetID:    f.asset.AssetID,
		UserID:     &f.user.UserID,
		AssignedBy: f.actor,
	})
	require.NoError(t, err)

	ghost := uuid.New()
	_, err = AssignAsset(context.Background(), f.db, AssignInput{
		AssetID:      f.asset.AssetID,
		DepartmentID: &ghost,
		AssignedBy:   f.actor,
	})
	var refErr *InvalidReferenceError
	require.ErrorAs(t, err, &refErr)

	open := f.openAssignments(t)
	require.Len(t, open, 1)
	assert.Equal(t, first.AssignmentID, open[0].AssignmentID)
	assert.Equal(t, assetModel.AvailabilityInUse, f.reloadAsset(t).AssetAvailability)
}

func TestAssignAssetExpiredContext(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := AssignAsset(ctx, f.db, AssignInput{
		AssetID:    f.asset.AssetID,
		UserID:     &f.user.UserID,
		AssignedBy: f.actor,
	})
	assert.ErrorIs(t, err, ErrOrchestrationTimeout)

	assert.Equal(t, assetModel.AvailabilityAvailable, f.reloadAsset(t).AssetAvailability)
	assert.Empty(t, f.openAssignments(t))
}

func TestReturnAssignment(t *testing.T) {
	f := newFixture(t)

	asg, err := AssignAsset(context.Background(), f.db, AssignInput{
		AssetID:    f.asset.AssetID,
		UserID:     &f.user.UserID,
		AssignedBy: f.actor,
	})
	require.NoError(t, err)

	returned, err := ReturnAssignment(context.Background(), f.db, asg.AssignmentID)
	require.NoError(t, err)
	require.NotNil(t, returned.AssignmentReturnedAt)

	assert.Equal(t, assetModel.AvailabilityAvailable, f.reloadAsset(t).AssetAvailability)
	assert.Empty(t, f.openAssignments(t))
}

func TestReturnAssignmentIsStampedExactlyOnce(t *testing.T) {
	f := newFixture(t)

	asg, err := AssignAsset(context.Background(), f.db, AssignInput{
		AssetID:    f.asset.AssetID,
		UserID:     &f.user.UserID,
		AssignedBy: f.actor,
	})
	require.NoError(t, err)

	first, err := ReturnAssignment(context.Background(), f.db, asg.AssignmentID)
	require.NoError(t, err)

	_, err = ReturnAssignment(context.Background(), f.db, asg.AssignmentID)
	assert.ErrorIs(t, err, ErrAlreadyReturned)

	// timestamp unchanged by the rejected second call
	var row asgModel.AssetAssignmentModel
	require.NoError(t, f.db.First(&row, "assignment_id = ?", asg.AssignmentID).Error)
	require.NotNil(t, row.AssignmentReturnedAt)
	assert.WithinDuration(t, *first.AssignmentReturnedAt, *row.AssignmentReturnedAt, time.Second)
}

func TestReturnAssignmentUnknownID(t *testing.T) {
	f := newFixture(t)

	_, err := ReturnAssignment(context.Background(), f.db, uuid.New())
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestDeleteAssignmentRecomputesAvailability(t *testing.T) {
	f := newFixture(t)

	asg, err := AssignAsset(context.Background(), f.db, AssignInput{
		AssetID:    f.asset.AssetID,
		UserID:     &f.user.UserID,
		AssignedBy: f.actor,
	})
	require.NoError(t, err)
	require.Equal(t, assetModel.AvailabilityInUse, f.reloadAsset(t).AssetAvailability)

	require.NoError(t, DeleteAssignment(context.Background(), f.db, asg.AssignmentID))

	assert.Equal(t, assetModel.AvailabilityAvailable, f.reloadAsset(t).AssetAvailability)
	assert.Empty(t, f.openAssignments(t))
}

func TestRecomputeAvailabilityLeavesTerminalStatesAlone(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.db.Model(&assetModel.AssetModel{}).
		Where("asset_id = ?", f.asset.AssetID).
		Update("asset_availability", assetModel.AvailabilityRetired).Error)

	require.NoError(t, RecomputeAvailability(f.db, f.asset.AssetID))
	assert.Equal(t, assetModel.AvailabilityRetired, f.reloadAsset(t).AssetAvailability)
}

func TestIsRepairPurpose(t *testing.T) {
	assert.True(t, IsRepairPurpose(strPtr("Repair of the projector lamp")))
	assert.True(t, IsRepairPurpose(strPtr("ارسال برای تعمیر")))
	assert.False(t, IsRepairPurpose(strPtr("daily office use")))
	assert.False(t, IsRepairPurpose(nil))
}

func TestAssignReturnAssignLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := AssignAsset(ctx, f.db, AssignInput{
		AssetID:    f.asset.AssetID,
		UserID:     &f.user.UserID,
		Purpose:    strPtr("office use"),
		AssignedBy: f.actor,
	})
	require.NoError(t, err)
	require.Equal(t, assetModel.AvailabilityInUse, f.reloadAsset(t).AssetAvailability)

	_, err = ReturnAssignment(ctx, f.db, first.AssignmentID)
	require.NoError(t, err)
	require.Equal(t, assetModel.AvailabilityAvailable, f.reloadAsset(t).AssetAvailability)

	second, err := AssignAsset(ctx, f.db, AssignInput{
		AssetID:      f.asset.AssetID,
		DepartmentID: &f.department.DepartmentID,
		Purpose:      strPtr("repair"),
		AssignedBy:   f.actor,
	})
	require.NoError(t, err)
	require.Equal(t, assetModel.AvailabilityMaintenance, f.reloadAsset(t).AssetAvailability)

	open := f.openAssignments(t)
	require.Len(t, open, 1)
	assert.Equal(t, second.AssignmentID, open[0].AssignmentID)
}
