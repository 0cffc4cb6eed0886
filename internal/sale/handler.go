package sale

import (
	"errors"
	"time"

	"pukis-backend/internal/auth"
	"pukis-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SaleResponse memakai kunci camelCase, berbeda dari resource lain yang
// snake_case. Klien lama sudah terlanjur bergantung pada bentuk ini.
type SaleResponse struct {
	ID              string  `json:"id"`
	OutletID        string  `json:"outletId"`
	Date            string  `json:"date"`
	Cash            int     `json:"cash"`
	Qris            int     `json:"qris"`
	Grab            int     `json:"grab"`
	Gofood          int     `json:"gofood"`
	Shopee          int     `json:"shopee"`
	Tiktok          int     `json:"tiktok"`
	TotalSold       int     `json:"totalSold"`
	Remaining       int     `json:"remaining"`
	Returned        int     `json:"returned"`
	TotalProduction int     `json:"totalProduction"`
	SoldOutTime     *string `json:"soldOutTime"`
	CreatedAt       string  `json:"createdAt"`

	TotalRevenue          float64 `json:"totalRevenue"`
	CogsSold              float64 `json:"cogsSold"`
	GrossMargin           float64 `json:"grossMargin"`
	GrossMarginPercentage float64 `json:"grossMarginPercentage"`
	OutletName            string  `json:"outletName"`
	CogsPerPiece          float64 `json:"cogsPerPiece"`
}

func NewSaleResponse(v service.SaleView) SaleResponse {
	return SaleResponse{
		ID:              v.ID,
		OutletID:        v.Sale.OutletID,
		Date:            v.Date,
		Cash:            v.Cash,
		Qris:            v.Qris,
		Grab:            v.Grab,
		Gofood:          v.Gofood,
		Shopee:          v.Shopee,
		Tiktok:          v.Tiktok,
		TotalSold:       v.TotalSold,
		Remaining:       v.Remaining,
		Returned:        v.Returned,
		TotalProduction: v.TotalProduction,
		SoldOutTime:     v.SoldOutTime,
		CreatedAt:       v.CreatedAt.Format("2006-01-02 15:04:05"),

		TotalRevenue:          v.TotalRevenue,
		CogsSold:              v.CogsSold,
		GrossMargin:           v.GrossMargin,
		GrossMarginPercentage: v.GrossMarginPercentage,
		OutletName:            v.OutletName,
		CogsPerPiece:          v.CogsPerPiece,
	}
}

func saleResponses(views []service.SaleView) []SaleResponse {
	resp := make([]SaleResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, NewSaleResponse(v))
	}
	return resp
}

func ListHandler(svc *service.Sales) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		views, err := svc.List(c.Context(), p, service.ListSalesInput{
			OutletID:  c.Query("outlet_id"),
			StartDate: c.Query("start_date"),
			EndDate:   c.Query("end_date"),
		})
		if err != nil {
			return httpError(err)
		}
		return c.JSON(saleResponses(views))
	}
}

func GetHandler(svc *service.Sales) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		v, err := svc.Get(c.Context(), p, c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(NewSaleResponse(v))
	}
}

type CreateSaleRequest struct {
	OutletID        string  `json:"outlet_id"`
	Date            string  `json:"date"`
	Cash            int     `json:"cash"`
	Qris            int     `json:"qris"`
	Grab            int     `json:"grab"`
	Gofood          int     `json:"gofood"`
	Shopee          int     `json:"shopee"`
	Tiktok          int     `json:"tiktok"`
	TotalSold       int     `json:"total_sold"`
	Remaining       int     `json:"remaining"`
	Returned        int     `json:"returned"`
	TotalProduction int     `json:"total_production"`
	SoldOutTime     *string `json:"sold_out_time"`
}

func CreateHandler(svc *service.Sales) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data tidak valid")
		}

		v, err := svc.Create(c.Context(), p, service.CreateSaleInput{
			OutletID:        body.OutletID,
			Date:            body.Date,
			Cash:            body.Cash,
			Qris:            body.Qris,
			Grab:            body.Grab,
			Gofood:          body.Gofood,
			Shopee:          body.Shopee,
			Tiktok:          body.Tiktok,
			TotalSold:       body.TotalSold,
			Remaining:       body.Remaining,
			Returned:        body.Returned,
			TotalProduction: body.TotalProduction,
			SoldOutTime:     body.SoldOutTime,
		})
		if err != nil {
			return httpError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(NewSaleResponse(v))
	}
}

type UpdateSaleRequest struct {
	Cash            *int    `json:"cash"`
	Qris            *int    `json:"qris"`
	Grab            *int    `json:"grab"`
	Gofood          *int    `json:"gofood"`
	Shopee          *int    `json:"shopee"`
	Tiktok          *int    `json:"tiktok"`
	TotalSold       *int    `json:"total_sold"`
	Remaining       *int    `json:"remaining"`
	Returned        *int    `json:"returned"`
	TotalProduction *int    `json:"total_production"`
	SoldOutTime     *string `json:"sold_out_time"`
}

func UpdateHandler(svc *service.Sales) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		var body UpdateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data tidak valid")
		}

		v, err := svc.Update(c.Context(), p, c.Params("id"), service.UpdateSaleInput{
			Cash:            body.Cash,
			Qris:            body.Qris,
			Grab:            body.Grab,
			Gofood:          body.Gofood,
			Shopee:          body.Shopee,
			Tiktok:          body.Tiktok,
			TotalSold:       body.TotalSold,
			Remaining:       body.Remaining,
			Returned:        body.Returned,
			TotalProduction: body.TotalProduction,
			SoldOutTime:     body.SoldOutTime,
		})
		if err != nil {
			return httpError(err)
		}
		return c.JSON(NewSaleResponse(v))
	}
}

func DeleteHandler(svc *service.Sales) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		if err := svc.Delete(c.Context(), p, c.Params("id")); err != nil {
			return httpError(err)
		}
		return c.JSON(fiber.Map{"message": "Data penjualan berhasil dihapus"})
	}
}

// refDate membaca query ?date=YYYY-MM-DD; kosong berarti hari ini.
func refDate(c *fiber.Ctx) (time.Time, error) {
	q := c.Query("date")
	if q == "" {
		return time.Now(), nil
	}
	ref, err := time.Parse("2006-01-02", q)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus 'YYYY-MM-DD'")
	}
	return ref, nil
}

func MTDHandler(svc *service.Sales) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		ref, err := refDate(c)
		if err != nil {
			return err
		}

		views, err := svc.MTD(c.Context(), p, ref, c.Query("outlet_id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(saleResponses(views))
	}
}

func MTDSummaryHandler(svc *service.Sales) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		ref, err := refDate(c)
		if err != nil {
			return err
		}

		summaries, err := svc.MTDSummaries(c.Context(), p, ref)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(summaries)
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
