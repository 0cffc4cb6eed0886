// Package memory adalah implementasi store.Store di dalam memori,
// dipakai untuk pengujian layer service tanpa Postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pukis-backend/internal/models"
	"pukis-backend/internal/store"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	users    map[string]models.User
	outlets  map[string]models.Outlet
	sales    map[string]models.Sale
	expenses map[string]models.Expense
	seq      int
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		users:    map[string]models.User{},
		outlets:  map[string]models.Outlet{},
		sales:    map[string]models.Sale{},
		expenses: map[string]models.Expense{},
	}
}

// nextCreatedAt memberikan stempel waktu monotonik supaya urutan
// created_at deterministik di dalam satu test.
func (s *Store) nextCreatedAt() time.Time {
	s.seq++
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.seq) * time.Second)
}

// ---- users ----

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email != nil && *u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListAdmins(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if u.Role != models.RoleSuperAdmin {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Email != nil {
		for _, u := range s.users {
			if u.Email != nil && *u.Email == *user.Email {
				return store.ErrDuplicate
			}
		}
	}
	user.CreatedAt = s.nextCreatedAt()
	s.users[user.ID] = *user
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

// ---- outlets ----

func (s *Store) GetOutlet(ctx context.Context, id string) (*models.Outlet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.outlets[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &o, nil
}

func (s *Store) ListOutlets(ctx context.Context) ([]models.Outlet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Outlet, 0, len(s.outlets))
	for _, o := range s.outlets {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) CreateOutlet(ctx context.Context, outlet *models.Outlet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if outlet.ID == "" {
		outlet.ID = uuid.NewString()
	}
	outlet.CreatedAt = s.nextCreatedAt()
	s.outlets[outlet.ID] = *outlet
	return nil
}

func (s *Store) SaveOutlet(ctx context.Context, outlet *models.Outlet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.outlets[outlet.ID]; !ok {
		return store.ErrNotFound
	}
	s.outlets[outlet.ID] = *outlet
	return nil
}

func (s *Store) DeleteOutlet(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.outlets, id)
	for sid, sale := range s.sales {
		if sale.OutletID == id {
			delete(s.sales, sid)
		}
	}
	for eid, exp := range s.expenses {
		if exp.OutletID == id {
			delete(s.expenses, eid)
		}
	}
	return nil
}

// ---- sales ----

func (s *Store) GetSale(ctx context.Context, id string) (*models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sale, ok := s.sales[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &sale, nil
}

func (s *Store) FindSaleByOutletAndDate(ctx context.Context, outletID, date string) (*models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sale := range s.sales {
		if sale.OutletID == outletID && sale.Date == date {
			cp := sale
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListSales(ctx context.Context, f store.SaleFilter) ([]models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Sale, 0)
	for _, sale := range s.sales {
		if f.OutletID != "" && sale.OutletID != f.OutletID {
			continue
		}
		if f.StartDate != "" && sale.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && sale.Date > f.EndDate {
			continue
		}
		out = append(out, sale)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *Store) CreateSale(ctx context.Context, sale *models.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.sales {
		if existing.OutletID == sale.OutletID && existing.Date == sale.Date {
			return store.ErrDuplicate
		}
	}
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	sale.CreatedAt = s.nextCreatedAt()
	s.sales[sale.ID] = *sale
	return nil
}

func (s *Store) SaveSale(ctx context.Context, sale *models.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sales[sale.ID]; !ok {
		return store.ErrNotFound
	}
	s.sales[sale.ID] = *sale
	return nil
}

func (s *Store) DeleteSale(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sales, id)
	return nil
}

// ---- expenses ----

func (s *Store) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.expenses[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &e, nil
}

func (s *Store) ListExpenses(ctx context.Context, f store.ExpenseFilter) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Expense, 0)
	for _, e := range s.expenses {
		if f.OutletID != "" && e.OutletID != f.OutletID {
			continue
		}
		if f.StartDate != "" && e.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && e.Date > f.EndDate {
			continue
		}
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if f.ExcludeType != "" && e.Type == f.ExcludeType {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}
	expense.CreatedAt = s.nextCreatedAt()
	s.expenses[expense.ID] = *expense
	return nil
}

func (s *Store) SaveExpense(ctx context.Context, expense *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenses[expense.ID]; !ok {
		return store.ErrNotFound
	}
	s.expenses[expense.ID] = *expense
	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.expenses, id)
	return nil
}
