// internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"asetku_backend/internals/constants"
	uDTO "asetku_backend/internals/features/users/dto"
	uModel "asetku_backend/internals/features/users/model"
	helper "asetku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// POST /api/a/users
func (h *UserController) Create(c *fiber.Ctx) error {
	var req uDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	m := &uModel.UserModel{
		UserUserName: strings.ToLower(strings.TrimSpace(req.UserUserName)),
		UserFullName: req.UserFullName,
		UserPassword: string(hash),
		UserRole:     constants.RoleStaff,
	}
	if req.UserRole != nil {
		m.UserRole = *req.UserRole
	}
	m.UserDepartmentID = req.UserDepartmentID

	if err := h.DB.Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.ErrorWithDetails(c, fiber.StatusConflict,
				"Username already taken", fiber.Map{"user_user_name": "duplicate"})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", uDTO.NewUserResponse(m))
}

// PATCH /api/a/users/:id
func (h *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var req uDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findByID(id)
	if err != nil {
		return err
	}

	if req.UserFullName != nil {
		m.UserFullName = *req.UserFullName
	}
	if req.UserPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
		}
		m.UserPassword = string(hash)
	}
	if req.UserRole != nil {
		m.UserRole = *req.UserRole
	}
	if req.UserDepartmentID != nil {
		m.UserDepartmentID = req.UserDepartmentID
	}
	if req.UserIsActive != nil {
		m.UserIsActive = *req.UserIsActive
	}

	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.Success(c, "User updated", uDTO.NewUserResponse(m))
}

// DELETE /api/a/users/:id (soft delete)
func (h *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(&uModel.UserModel{}, "user_id = ?", m.UserID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.Success(c, "User deleted", fiber.Map{"user_id": m.UserID})
}

// GET /api/a/users/:id
func (h *UserController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	m, err := h.findByID(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", uDTO.NewUserResponse(m))
}

// GET /api/a/users
func (h *UserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&uModel.UserModel{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		q = q.Where("user_user_name LIKE ? OR user_full_name LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list users")
	}
	var rows []uModel.UserModel
	if err := q.
		Order("user_user_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list users")
	}

	out := make([]*uDTO.UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, uDTO.NewUserResponse(&rows[i]))
	}
	return helper.SuccessList(c, "OK", out, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (h *UserController) findByID(id uuid.UUID) (*uModel.UserModel, error) {
	var m uModel.UserModel
	if err := h.DB.First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}
	return &m, nil
}
