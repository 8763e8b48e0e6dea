package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Locals keys hydrated by AuthJWT.
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
	LocClaims   = "jwt_claims"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // use the access_token cookie when there is no Bearer header
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) Token: Authorization: Bearer xxx (or cookie when allowed)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verify algorithm
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals(LocClaims, claims)

		if sub := strClaim(claims, "user_id"); sub != "" {
			c.Locals(LocUserID, sub)
		}
		if role := strClaim(claims, "role"); role != "" {
			c.Locals(LocUserRole, role)
		}

		return c.Next()
	}
}

// UserID reads the authenticated user id out of Locals. The services
// trust this value as the acting user (assigned_by / created_by).
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
	}
	return id, nil
}

func Role(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
