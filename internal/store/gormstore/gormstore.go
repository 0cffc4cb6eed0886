// Package gormstore mengimplementasikan store.Store di atas Postgres
// melalui GORM.
package gormstore

import (
	"context"
	"errors"

	"pukis-backend/internal/models"
	"pukis-backend/internal/store"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return store.ErrDuplicate
	default:
		return err
	}
}

// ---- users ----

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) ListAdmins(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("role <> ?", models.RoleSuperAdmin).
		Order("created_at desc").
		Find(&users).Error
	if err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return translate(s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error)
}

// ---- outlets ----

func (s *Store) GetOutlet(ctx context.Context, id string) (*models.Outlet, error) {
	var outlet models.Outlet
	if err := s.db.WithContext(ctx).First(&outlet, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &outlet, nil
}

func (s *Store) ListOutlets(ctx context.Context) ([]models.Outlet, error) {
	var outlets []models.Outlet
	if err := s.db.WithContext(ctx).Order("name asc").Find(&outlets).Error; err != nil {
		return nil, translate(err)
	}
	return outlets, nil
}

func (s *Store) CreateOutlet(ctx context.Context, outlet *models.Outlet) error {
	return translate(s.db.WithContext(ctx).Create(outlet).Error)
}

func (s *Store) SaveOutlet(ctx context.Context, outlet *models.Outlet) error {
	return translate(s.db.WithContext(ctx).Save(outlet).Error)
}

func (s *Store) DeleteOutlet(ctx context.Context, id string) error {
	// Hapus anak-anaknya dalam satu transaksi supaya tidak ada baris
	// yatim walau constraint DB belum terpasang.
	return translate(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Sale{}, "outlet_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Expense{}, "outlet_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Outlet{}, "id = ?", id).Error
	}))
}

// ---- sales ----

func (s *Store) GetSale(ctx context.Context, id string) (*models.Sale, error) {
	var sale models.Sale
	if err := s.db.WithContext(ctx).First(&sale, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &sale, nil
}

func (s *Store) FindSaleByOutletAndDate(ctx context.Context, outletID, date string) (*models.Sale, error) {
	var sale models.Sale
	err := s.db.WithContext(ctx).
		First(&sale, "outlet_id = ? AND date = ?", outletID, date).Error
	if err != nil {
		return nil, translate(err)
	}
	return &sale, nil
}

func (s *Store) ListSales(ctx context.Context, f store.SaleFilter) ([]models.Sale, error) {
	dbq := s.db.WithContext(ctx).Model(&models.Sale{})
	if f.OutletID != "" {
		dbq = dbq.Where("outlet_id = ?", f.OutletID)
	}
	if f.StartDate != "" {
		dbq = dbq.Where("date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		dbq = dbq.Where("date <= ?", f.EndDate)
	}

	var sales []models.Sale
	if err := dbq.Order("date desc").Find(&sales).Error; err != nil {
		return nil, translate(err)
	}
	return sales, nil
}

func (s *Store) CreateSale(ctx context.Context, sale *models.Sale) error {
	// Unique index (outlet_id, date) yang menjamin serialisasi; insert
	// yang kalah balapan mendapat ErrDuplicate.
	return translate(s.db.WithContext(ctx).Create(sale).Error)
}

func (s *Store) SaveSale(ctx context.Context, sale *models.Sale) error {
	return translate(s.db.WithContext(ctx).Save(sale).Error)
}

func (s *Store) DeleteSale(ctx context.Context, id string) error {
	return translate(s.db.WithContext(ctx).Delete(&models.Sale{}, "id = ?", id).Error)
}

// ---- expenses ----

func (s *Store) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &expense, nil
}

func (s *Store) ListExpenses(ctx context.Context, f store.ExpenseFilter) ([]models.Expense, error) {
	dbq := s.db.WithContext(ctx).Model(&models.Expense{})
	if f.OutletID != "" {
		dbq = dbq.Where("outlet_id = ?", f.OutletID)
	}
	if f.StartDate != "" {
		dbq = dbq.Where("date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		dbq = dbq.Where("date <= ?", f.EndDate)
	}
	if f.Type != "" {
		dbq = dbq.Where("type = ?", f.Type)
	}
	if f.ExcludeType != "" {
		dbq = dbq.Where("type <> ?", f.ExcludeType)
	}

	var expenses []models.Expense
	if err := dbq.Order("date desc").Find(&expenses).Error; err != nil {
		return nil, translate(err)
	}
	return expenses, nil
}

func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return translate(s.db.WithContext(ctx).Create(expense).Error)
}

func (s *Store) SaveExpense(ctx context.Context, expense *models.Expense) error {
	return translate(s.db.WithContext(ctx).Save(expense).Error)
}

func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	return translate(s.db.WithContext(ctx).Delete(&models.Expense{}, "id = ?", id).Error)
}
