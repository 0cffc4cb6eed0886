package outlet

import (
	"errors"

	"pukis-backend/internal/auth"
	"pukis-backend/internal/models"
	"pukis-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OutletResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CogsPerPiece float64 `json:"cogs_per_piece"`
	CreatedAt    string  `json:"created_at"`
}

func NewOutletResponse(o models.Outlet) OutletResponse {
	return OutletResponse{
		ID:           o.ID,
		Name:         o.Name,
		CogsPerPiece: o.CogsPerPiece,
		CreatedAt:    o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ListHandler(svc *service.Outlets) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		outlets, err := svc.List(c.Context(), p)
		if err != nil {
			return httpError(err)
		}

		resp := make([]OutletResponse, 0, len(outlets))
		for _, o := range outlets {
			resp = append(resp, NewOutletResponse(o))
		}
		return c.JSON(resp)
	}
}

func GetHandler(svc *service.Outlets) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		o, err := svc.Get(c.Context(), p, c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(NewOutletResponse(*o))
	}
}

type CreateOutletRequest struct {
	Name         string  `json:"name"`
	CogsPerPiece float64 `json:"cogs_per_piece"`
}

func CreateHandler(svc *service.Outlets) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		var body CreateOutletRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data tidak valid")
		}

		o, err := svc.Create(c.Context(), p, service.CreateOutletInput{
			Name:         body.Name,
			CogsPerPiece: body.CogsPerPiece,
		})
		if err != nil {
			return httpError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(NewOutletResponse(*o))
	}
}

type UpdateOutletRequest struct {
	Name         *string  `json:"name"`
	CogsPerPiece *float64 `json:"cogs_per_piece"`
}

func UpdateHandler(svc *service.Outlets) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		var body UpdateOutletRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data tidak valid")
		}

		o, err := svc.Update(c.Context(), p, c.Params("id"), service.UpdateOutletInput{
			Name:         body.Name,
			CogsPerPiece: body.CogsPerPiece,
		})
		if err != nil {
			return httpError(err)
		}
		return c.JSON(NewOutletResponse(*o))
	}
}

func DeleteHandler(svc *service.Outlets) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		if err := svc.Delete(c.Context(), p, c.Params("id")); err != nil {
			return httpError(err)
		}
		return c.JSON(fiber.Map{"message": "Outlet berhasil dihapus"})
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
