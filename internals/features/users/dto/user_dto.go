// internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	uModel "asetku_backend/internals/features/users/model"
)

/* ===================== REQUESTS ===================== */

type CreateUserRequest struct {
	UserUserName string `json:"user_user_name" validate:"required,min=3,max=80"`
	UserFullName string `json:"user_full_name" validate:"required,min=2,max=150"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`

	UserRole         *string    `json:"user_role" validate:"omitempty,oneof=admin staff viewer"`
	UserDepartmentID *uuid.UUID `json:"user_department_id" validate:"omitempty"`
}

type UpdateUserRequest struct {
	UserFullName     *string    `json:"user_full_name" validate:"omitempty,min=2,max=150"`
	UserPassword     *string    `json:"user_password" validate:"omitempty,min=8,max=72"`
	UserRole         *string    `json:"user_role" validate:"omitempty,oneof=admin staff viewer"`
	UserDepartmentID *uuid.UUID `json:"user_department_id" validate:"omitempty"`
	UserIsActive     *bool      `json:"user_is_active" validate:"omitempty"`
}

type LoginRequest struct {
	UserUserName string `json:"user_user_name" validate:"required"`
	UserPassword string `json:"user_password" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	UserID           uuid.UUID  `json:"user_id"`
	UserUserName     string     `json:"user_user_name"`
	UserFullName     string     `json:"user_full_name"`
	UserRole         string     `json:"user_role"`
	UserDepartmentID *uuid.UUID `json:"user_department_id,omitempty"`
	UserIsActive     bool       `json:"user_is_active"`
	UserCreatedAt    time.Time  `json:"user_created_at"`
}

func NewUserResponse(m *uModel.UserModel) *UserResponse {
	return &UserResponse{
		UserID:           m.UserID,
		UserUserName:     m.UserUserName,
		UserFullName:     m.UserFullName,
		UserRole:         m.UserRole,
		UserDepartmentID: m.UserDepartmentID,
		UserIsActive:     m.UserIsActive,
		UserCreatedAt:    m.UserCreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}
