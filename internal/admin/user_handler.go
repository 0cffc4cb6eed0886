package admin

import (
	"errors"

	"pukis-backend/internal/auth"
	"pukis-backend/internal/models"
	"pukis-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

func ListAdminsHandler(svc *service.Users) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		users, err := svc.ListAdmins(c.Context(), p)
		if err != nil {
			return httpError(err)
		}

		resp := make([]auth.UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, auth.NewUserResponse(u))
		}
		return c.JSON(resp)
	}
}

type CreateAdminRequest struct {
	Email            string  `json:"email"`
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	Role             string  `json:"role"`
	Password         *string `json:"password"`
	AssignedOutletID *string `json:"assigned_outlet_id"`
}

func CreateAdminHandler(svc *service.Users) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		var body CreateAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data tidak valid")
		}

		user, err := svc.CreateAdmin(c.Context(), p, service.CreateAdminInput{
			Email:            body.Email,
			FirstName:        body.FirstName,
			LastName:         body.LastName,
			Role:             models.UserRole(body.Role),
			Password:         body.Password,
			AssignedOutletID: body.AssignedOutletID,
		})
		if err != nil {
			return httpError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(auth.NewUserResponse(*user))
	}
}

func DeleteAdminHandler(svc *service.Users) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		if err := svc.DeleteAdmin(c.Context(), p, c.Params("id")); err != nil {
			return httpError(err)
		}
		return c.JSON(fiber.Map{"message": "Admin berhasil dihapus"})
	}
}

func httpError(err error) error {
	var se *service.Error
	if errors.As(err, &se) {
		switch se.Kind {
		case service.KindNotFound:
			return fiber.NewError(fiber.StatusNotFound, se.Message)
		case service.KindForbidden:
			return fiber.NewError(fiber.StatusForbidden, se.Message)
		case service.KindConflict:
			return fiber.NewError(fiber.StatusConflict, se.Message)
		default:
			return fiber.NewError(fiber.StatusBadRequest, se.Message)
		}
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}
