package database

import (
	"gorm.io/gorm"

	assignmentModel "asetku_backend/internals/features/assets/assignments/model"
	assetModel "asetku_backend/internals/features/assets/assets/model"
	categoryModel "asetku_backend/internals/features/assets/categories/model"
	typeModel "asetku_backend/internals/features/assets/types/model"
	locationModel "asetku_backend/internals/features/locations/model"
	departmentModel "asetku_backend/internals/features/organizations/model"
	permissionModel "asetku_backend/internals/features/permissions/model"
	timesheetModel "asetku_backend/internals/features/timesheets/model"
	userModel "asetku_backend/internals/features/users/model"
)

// Migrate creates/updates the schema and the storage-level guards the
// services rely on. Also used by the package tests against sqlite, so
// everything here has to stay portable across both dialects.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&departmentModel.DepartmentModel{},
		&locationModel.BuildingModel{},
		&locationModel.FloorModel{},
		&locationModel.RoomModel{},
		&categoryModel.AssetCategoryModel{},
		&typeModel.AssetTypeModel{},
		&assetModel.AssetModel{},
		&assignmentModel.AssetAssignmentModel{},
		&timesheetModel.TimesheetModel{},
		&permissionModel.PagePermissionModel{},
	); err != nil {
		return err
	}

	// At most one open assignment per asset, enforced in storage.
	// Application code closes the previous row first; this index is the
	// backstop when two writers race.
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_asset_assignments_open
		ON asset_assignments (assignment_asset_id)
		WHERE assignment_returned_at IS NULL AND assignment_deleted_at IS NULL
	`).Error
}
