// internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`

	UserUserName string `gorm:"type:varchar(80);unique;not null;column:user_user_name" json:"user_user_name"`
	UserFullName string `gorm:"type:varchar(150);not null;column:user_full_name" json:"user_full_name"`

	// bcrypt hash; never serialized
	UserPassword string `gorm:"type:varchar(100);not null;column:user_password" json:"-"`

	UserRole         string     `gorm:"type:varchar(30);not null;default:'staff';column:user_role" json:"user_role"`
	UserDepartmentID *uuid.UUID `gorm:"type:uuid;column:user_department_id;index" json:"user_department_id,omitempty"`
	UserIsActive     bool       `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
