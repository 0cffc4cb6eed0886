package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"pukis-backend/internal/models"
	"pukis-backend/internal/policy"
	"pukis-backend/internal/store"
)

type Expenses struct {
	store store.Store
}

func NewExpenses(s store.Store) *Expenses {
	return &Expenses{store: s}
}

type ListExpensesInput struct {
	OutletID  string
	StartDate string
	EndDate   string
	Type      models.ExpenseType
}

// List mengembalikan pengeluaran terurut tanggal menurun. Baris gaji
// disaring diam-diam untuk role di luar super_admin/owner; berbeda dengan
// akses detail yang ditolak terang-terangan (lihat Get).
func (s *Expenses) List(ctx context.Context, p models.Principal, in ListExpensesInput) ([]models.Expense, error) {
	f := store.ExpenseFilter{
		OutletID:  in.OutletID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Type:      in.Type,
	}
	if p.Role == models.RoleAdminOutlet {
		if p.AssignedOutletID == nil {
			return []models.Expense{}, nil
		}
		f.OutletID = *p.AssignedOutletID
	}
	if !policy.CanSeeSalary(p.Role) {
		f.ExcludeType = models.ExpenseGaji
	}
	return s.store.ListExpenses(ctx, f)
}

// Get menolak dengan forbidden (bukan not found, bukan daftar kosong)
// bila caller tidak berhak melihat record yang memang ada.
func (s *Expenses) Get(ctx context.Context, p models.Principal, id string) (*models.Expense, error) {
	e, err := s.store.GetExpense(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("Data pengeluaran tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	if err := s.readGate(p, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Expenses) readGate(p models.Principal, e *models.Expense) error {
	if policy.CanReadExpense(p.Role, p.AssignedOutletID, e.OutletID, e.Type) {
		return nil
	}
	if !policy.CanReadOutlet(p.Role, p.AssignedOutletID, e.OutletID) {
		return forbidden("Anda tidak memiliki akses ke data ini")
	}
	return forbidden("Anda tidak memiliki akses ke data gaji")
}

type CreateExpenseInput struct {
	OutletID    string
	Date        string
	Type        models.ExpenseType
	Description string
	Amount      float64
	ProofURL    *string
}

func (s *Expenses) Create(ctx context.Context, p models.Principal, in CreateExpenseInput) (*models.Expense, error) {
	if in.OutletID == "" {
		return nil, invalid("outlet_id wajib diisi")
	}
	if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return nil, invalid("Format tanggal harus 'YYYY-MM-DD'")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, invalid("Deskripsi wajib diisi")
	}
	if in.Amount < 0 {
		return nil, invalid("Jumlah pengeluaran tidak boleh negatif")
	}
	if in.Type == "" {
		in.Type = models.ExpenseHarian
	}
	if !models.ValidExpenseType(in.Type) {
		return nil, invalid("Tipe pengeluaran harus harian, bulanan, atau gaji")
	}

	if !policy.CanWriteExpense(p.Role, p.AssignedOutletID, in.OutletID, in.Type) {
		if !policy.CanReadOutlet(p.Role, p.AssignedOutletID, in.OutletID) {
			return nil, forbidden("Anda tidak memiliki akses ke outlet ini")
		}
		return nil, forbidden("Hanya owner yang dapat menambahkan pengeluaran gaji")
	}

	if _, err := s.store.GetOutlet(ctx, in.OutletID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("Outlet tidak ditemukan")
		}
		return nil, err
	}

	e := &models.Expense{
		OutletID:    in.OutletID,
		Date:        in.Date,
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		ProofURL:    in.ProofURL,
	}
	if err := s.store.CreateExpense(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

type UpdateExpenseInput struct {
	Date        *string
	Type        *models.ExpenseType
	Description *string
	Amount      *float64
	ProofURL    *string
}

// Update menjaga dua gerbang gaji sekaligus: record yang sudah bertipe
// gaji tidak boleh disentuh role non-owner, dan record non-gaji tidak
// boleh dinaikkan menjadi gaji oleh role non-owner.
func (s *Expenses) Update(ctx context.Context, p models.Principal, id string, in UpdateExpenseInput) (*models.Expense, error) {
	e, err := s.store.GetExpense(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("Data pengeluaran tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	if err := s.writeGate(p, e.OutletID, e.Type); err != nil {
		return nil, err
	}

	if in.Type != nil {
		if !models.ValidExpenseType(*in.Type) {
			return nil, invalid("Tipe pengeluaran harus harian, bulanan, atau gaji")
		}
		if err := s.writeGate(p, e.OutletID, *in.Type); err != nil {
			return nil, err
		}
		e.Type = *in.Type
	}
	if in.Date != nil {
		if _, err := time.Parse(dateLayout, *in.Date); err != nil {
			return nil, invalid("Format tanggal harus 'YYYY-MM-DD'")
		}
		e.Date = *in.Date
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if desc == "" {
			return nil, invalid("Deskripsi tidak boleh kosong")
		}
		e.Description = desc
	}
	if in.Amount != nil {
		if *in.Amount < 0 {
			return nil, invalid("Jumlah pengeluaran tidak boleh negatif")
		}
		e.Amount = *in.Amount
	}
	if in.ProofURL != nil {
		e.ProofURL = in.ProofURL
	}

	if err := s.store.SaveExpense(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Expenses) Delete(ctx context.Context, p models.Principal, id string) error {
	e, err := s.store.GetExpense(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound("Data pengeluaran tidak ditemukan")
	}
	if err != nil {
		return err
	}
	if err := s.writeGate(p, e.OutletID, e.Type); err != nil {
		return err
	}
	return s.store.DeleteExpense(ctx, id)
}

func (s *Expenses) writeGate(p models.Principal, outletID string, t models.ExpenseType) error {
	if policy.CanWriteExpense(p.Role, p.AssignedOutletID, outletID, t) {
		return nil
	}
	if !policy.CanReadOutlet(p.Role, p.AssignedOutletID, outletID) {
		return forbidden("Anda tidak memiliki akses ke data ini")
	}
	return forbidden("Anda tidak memiliki akses ke data gaji")
}
