// internals/features/permissions/service/page_permission_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"asetku_backend/internals/constants"
	permModel "asetku_backend/internals/features/permissions/model"
)

// IsAllowed reports whether role may open pageKey. Admin always may;
// for everyone else a missing grant row means denied.
func IsAllowed(ctx context.Context, db *gorm.DB, pageKey, role string) (bool, error) {
	if role == constants.RoleAdmin {
		return true, nil
	}

	var m permModel.PagePermissionModel
	err := db.WithContext(ctx).
		Where("page_permission_page_key = ? AND page_permission_role = ?", pageKey, role).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return m.PagePermissionAllowed, nil
}

// Upsert creates or flips the grant for (pageKey, role).
func Upsert(ctx context.Context, db *gorm.DB, pageKey, role string, allowed bool) (*permModel.PagePermissionModel, error) {
	var out *permModel.PagePermissionModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m permModel.PagePermissionModel
		err := tx.
			Where("page_permission_page_key = ? AND page_permission_role = ?", pageKey, role).
			First(&m).Error
		switch {
		case err == nil:
			if err := tx.Model(&permModel.PagePermissionModel{}).
				Where("page_permission_id = ?", m.PagePermissionID).
				Update("page_permission_allowed", allowed).Error; err != nil {
				return err
			}
			m.PagePermissionAllowed = allowed
			out = &m
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			m = permModel.PagePermissionModel{
				PagePermissionPageKey: pageKey,
				PagePermissionRole:    role,
				PagePermissionAllowed: allowed,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			out = &m
			return nil
		default:
			return err
		}
	})
	return out, err
}
