package expense

import (
	"errors"
	"os"
	"path/filepath"

	"pukis-backend/internal/auth"
	"pukis-backend/internal/config"
	"pukis-backend/internal/models"
	"pukis-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ExpenseResponse struct {
	ID          string  `json:"id"`
	OutletID    string  `json:"outlet_id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	ProofURL    *string `json:"proof_url"`
	CreatedAt   string  `json:"created_at"`
}

func NewExpenseResponse(e models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		OutletID:    e.OutletID,
		Date:        e.Date,
		Type:        string(e.Type),
		Description: e.Description,
		Amount:      e.Amount,
		ProofURL:    e.ProofURL,
		CreatedAt:   e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ListHandler(svc *service.Expenses) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		expenses, err := svc.List(c.Context(), p, service.ListExpensesInput{
			OutletID:  c.Query("outlet_id"),
			StartDate: c.Query("start_date"),
			EndDate:   c.Query("end_date"),
			Type:      models.ExpenseType(c.Query("type")),
		})
		if err != nil {
			return httpError(err)
		}

		resp := make([]ExpenseResponse, 0, len(expenses))
		for _, e := range expenses {
			resp = append(resp, NewExpenseResponse(e))
		}
		return c.JSON(resp)
	}
}

func GetHandler(svc *service.Expenses) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		e, err := svc.Get(c.Context(), p, c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(NewExpenseResponse(*e))
	}
}

type CreateExpenseRequest struct {
	OutletID    string  `json:"outlet_id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	ProofURL    *string `json:"proof_url"`
}

func CreateHandler(svc *service.Expenses) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		var body CreateExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data tidak valid")
		}

		e, err := svc.Create(c.Context(), p, service.CreateExpenseInput{
			OutletID:    body.OutletID,
			Date:        body.Date,
			Type:        models.ExpenseType(body.Type),
			Description: body.Description,
			Amount:      body.Amount,
			ProofURL:    body.ProofURL,
		})
		if err != nil {
			return httpError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(NewExpenseResponse(*e))
	}
}

type UpdateExpenseRequest struct {
	Date        *string  `json:"date"`
	Type        *string  `json:"type"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	ProofURL    *string  `json:"proof_url"`
}

func UpdateHandler(svc *service.Expenses) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		var body UpdateExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data tidak valid")
		}

		var t *models.ExpenseType
		if body.Type != nil {
			et := models.ExpenseType(*body.Type)
			t = &et
		}

		e, err := svc.Update(c.Context(), p, c.Params("id"), service.UpdateExpenseInput{
			Date:        body.Date,
			Type:        t,
			Description: body.Description,
			Amount:      body.Amount,
			ProofURL:    body.ProofURL,
		})
		if err != nil {
			return httpError(err)
		}
		return c.JSON(NewExpenseResponse(*e))
	}
}

func DeleteHandler(svc *service.Expenses) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := auth.PrincipalFromCtx(c)
		if err != nil {
			return err
		}

		if err := svc.Delete(c.Context(), p, c.Params("id")); err != nil {
			return httpError(err)
		}
		return c.JSON(fiber.Map{"message": "Data pengeluaran berhasil dihapus"})
	}
}

// UploadProofHandler menyimpan bukti pengeluaran (nota/kuitansi) ke
// direktori upload dengan nama acak, lalu mengembalikan URL publiknya.
// File dilayani kembali lewat route statis /uploads.
func UploadProofHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File wajib dilampirkan")
		}

		dir := filepath.Join(cfg.UploadDir, "proofs")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan file")
		}

		filename := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(dir, filename)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan file")
		}

		return c.JSON(fiber.Map{
			"url":      "/uploads/proofs/" + filename,
			"filename": filename,
		})
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
