// Package store mendefinisikan kontrak penyimpanan yang dipakai layer
// service. Implementasi Postgres ada di store/gormstore, implementasi
// in-memory untuk pengujian ada di store/memory.
package store

import (
	"context"
	"errors"

	"pukis-backend/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// SaleFilter memfilter penjualan. Tanggal dibandingkan sebagai string
// "YYYY-MM-DD" (>= / <=), string kosong berarti tanpa batas.
type SaleFilter struct {
	OutletID  string
	StartDate string
	EndDate   string
}

type ExpenseFilter struct {
	OutletID  string
	StartDate string
	EndDate   string
	Type      models.ExpenseType
	// ExcludeType menyaring satu tipe keluar dari hasil (dipakai untuk
	// menyembunyikan gaji dari role yang tidak berhak).
	ExcludeType models.ExpenseType
}

type Store interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// ListAdmins mengembalikan semua user non-super_admin, terbaru dulu.
	ListAdmins(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id string) error

	GetOutlet(ctx context.Context, id string) (*models.Outlet, error)
	// ListOutlets mengembalikan semua outlet terurut nama.
	ListOutlets(ctx context.Context) ([]models.Outlet, error)
	CreateOutlet(ctx context.Context, outlet *models.Outlet) error
	SaveOutlet(ctx context.Context, outlet *models.Outlet) error
	// DeleteOutlet menghapus outlet beserta seluruh sales dan expenses
	// miliknya (cascade).
	DeleteOutlet(ctx context.Context, id string) error

	GetSale(ctx context.Context, id string) (*models.Sale, error)
	FindSaleByOutletAndDate(ctx context.Context, outletID, date string) (*models.Sale, error)
	// ListSales mengembalikan penjualan terurut tanggal menurun.
	ListSales(ctx context.Context, f SaleFilter) ([]models.Sale, error)
	// CreateSale mengembalikan ErrDuplicate bila pasangan (outlet, date)
	// sudah ada; store yang menjamin serialisasi lewat unique index.
	CreateSale(ctx context.Context, sale *models.Sale) error
	SaveSale(ctx context.Context, sale *models.Sale) error
	DeleteSale(ctx context.Context, id string) error

	GetExpense(ctx context.Context, id string) (*models.Expense, error)
	// ListExpenses mengembalikan pengeluaran terurut tanggal menurun.
	ListExpenses(ctx context.Context, f ExpenseFilter) ([]models.Expense, error)
	CreateExpense(ctx context.Context, expense *models.Expense) error
	SaveExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, id string) error
}
