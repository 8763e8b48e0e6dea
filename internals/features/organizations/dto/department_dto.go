// internals/features/organizations/dto/department_dto.go
package dto

import (
	"github.com/google/uuid"

	dModel "asetku_backend/internals/features/organizations/model"
)

type CreateDepartmentRequest struct {
	DepartmentName        string     `json:"department_name" validate:"required,min=2,max=150"`
	DepartmentManagerID   *uuid.UUID `json:"department_manager_id" validate:"omitempty"`
	DepartmentDescription *string    `json:"department_description" validate:"omitempty"`
}

func (r *CreateDepartmentRequest) ToModel() *dModel.DepartmentModel {
	return &dModel.DepartmentModel{
		DepartmentName:        r.DepartmentName,
		DepartmentManagerID:   r.DepartmentManagerID,
		DepartmentDescription: r.DepartmentDescription,
	}
}

type UpdateDepartmentRequest struct {
	DepartmentName        *string    `json:"department_name" validate:"omitempty,min=2,max=150"`
	DepartmentManagerID   *uuid.UUID `json:"department_manager_id" validate:"omitempty"`
	DepartmentDescription *string    `json:"department_description" validate:"omitempty"`
}

func (r *UpdateDepartmentRequest) ApplyToModel(m *dModel.DepartmentModel) {
	if r.DepartmentName != nil {
		m.DepartmentName = *r.DepartmentName
	}
	if r.DepartmentManagerID != nil {
		m.DepartmentManagerID = r.DepartmentManagerID
	}
	if r.DepartmentDescription != nil {
		m.DepartmentDescription = r.DepartmentDescription
	}
}
