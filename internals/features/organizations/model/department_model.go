// internals/features/organizations/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	DepartmentID          uuid.UUID  `gorm:"type:uuid;primaryKey;column:department_id" json:"department_id"`
	DepartmentName        string     `gorm:"type:varchar(150);not null;column:department_name" json:"department_name"`
	DepartmentManagerID   *uuid.UUID `gorm:"type:uuid;column:department_manager_id" json:"department_manager_id,omitempty"`
	DepartmentDescription *string    `gorm:"column:department_description" json:"department_description,omitempty"`

	DepartmentCreatedAt time.Time      `gorm:"column:department_created_at;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt *time.Time     `gorm:"column:department_updated_at;autoUpdateTime" json:"department_updated_at,omitempty"`
	DepartmentDeletedAt gorm.DeletedAt `gorm:"column:department_deleted_at;index" json:"department_deleted_at,omitempty"`
}

func (DepartmentModel) TableName() string { return "departments" }

func (m *DepartmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.DepartmentID == uuid.Nil {
		m.DepartmentID = uuid.New()
	}
	return nil
}
