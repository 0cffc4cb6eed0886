package auth

import (
	"errors"
	"strings"

	"pukis-backend/internal/config"
	"pukis-backend/internal/models"
	"pukis-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID               string  `json:"id"`
	Email            *string `json:"email"`
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	ProfileImageURL  *string `json:"profile_image_url"`
	Role             string  `json:"role"`
	AssignedOutletID *string `json:"assigned_outlet_id"`
	CreatedAt        string  `json:"created_at"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		ProfileImageURL:  u.ProfileImageURL,
		Role:             string(u.Role),
		AssignedOutletID: u.AssignedOutletID,
		CreatedAt:        u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func LoginHandler(cfg *config.Config, st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data tidak valid")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		user, err := st.GetUserByEmail(c.Context(), body.Email)
		if err != nil || user.PasswordHash == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}

		token, err := GenerateToken(cfg.JWTSecret, user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token tidak dapat dibuat")
		}

		return c.JSON(fiber.Map{
			"access_token": token,
			"token_type":   "bearer",
			"user":         NewUserResponse(*user),
		})
	}
}

func MeHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		user, err := st.GetUserByID(c.Context(), p.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
		}

		return c.JSON(NewUserResponse(*user))
	}
}

// Logout stateless: token JWT tidak disimpan di server, klien cukup
// membuang tokennya.
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Logout berhasil"})
	}
}

