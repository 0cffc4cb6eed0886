package auth

import (
	"strings"

	"pukis-backend/internal/config"
	"pukis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUserRoleKey = "user_role"
	CtxOutletIDKey = "outlet_id"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Header Authorization tidak ditemukan")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Format Authorization harus 'Bearer <token>'")
		}

		claims, err := ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token tidak valid atau sudah kedaluwarsa")
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxUserRoleKey, claims.Role)
		c.Locals(CtxOutletIDKey, claims.OutletID)

		return c.Next()
	}
}

func RequireRole(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleVal := c.Locals(CtxUserRoleKey)
		role, ok := roleVal.(models.UserRole)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Informasi role tidak ditemukan")
		}

		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak memiliki izin untuk operasi ini")
	}
}

// PrincipalFromCtx membaca identitas caller yang sudah ditaruh
// JWTMiddleware di locals.
func PrincipalFromCtx(c *fiber.Ctx) (models.Principal, error) {
	userID, ok := c.Locals(CtxUserIDKey).(string)
	if !ok || userID == "" {
		return models.Principal{}, fiber.NewError(fiber.StatusForbidden, "Informasi pengguna tidak ditemukan")
	}
	role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
	if !ok {
		return models.Principal{}, fiber.NewError(fiber.StatusForbidden, "Informasi role tidak ditemukan")
	}

	var outletID *string
	if ptr, ok := c.Locals(CtxOutletIDKey).(*string); ok && ptr != nil {
		outletID = ptr
	}

	return models.Principal{UserID: userID, Role: role, AssignedOutletID: outletID}, nil
}
