// internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"asetku_backend/internals/configs"
	uDTO "asetku_backend/internals/features/users/dto"
	uModel "asetku_backend/internals/features/users/model"
	helper "asetku_backend/internals/helpers"
)

const accessTokenTTL = 12 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /api/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req uDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user uModel.UserModel
	err := h.DB.First(&user, "user_user_name = ?", strings.ToLower(strings.TrimSpace(req.UserUserName))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Wrong username or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account is disabled")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Wrong username or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    user.UserRole,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  now.Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.Success(c, "Login success", uDTO.LoginResponse{
		AccessToken: token,
		User:        uDTO.NewUserResponse(&user),
	})
}
