package service

import (
	"context"
	"errors"
	"strings"

	"pukis-backend/internal/models"
	"pukis-backend/internal/policy"
	"pukis-backend/internal/store"
)

type Outlets struct {
	store store.Store
}

func NewOutlets(s store.Store) *Outlets {
	return &Outlets{store: s}
}

// List mengembalikan outlet yang boleh dilihat caller: admin_outlet hanya
// outlet tempat dia ditugaskan, role lain semua outlet terurut nama.
func (s *Outlets) List(ctx context.Context, p models.Principal) ([]models.Outlet, error) {
	if p.Role == models.RoleAdminOutlet {
		if p.AssignedOutletID == nil {
			return []models.Outlet{}, nil
		}
		o, err := s.store.GetOutlet(ctx, *p.AssignedOutletID)
		if errors.Is(err, store.ErrNotFound) {
			return []models.Outlet{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []models.Outlet{*o}, nil
	}
	return s.store.ListOutlets(ctx)
}

func (s *Outlets) Get(ctx context.Context, p models.Principal, id string) (*models.Outlet, error) {
	o, err := s.store.GetOutlet(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("Outlet tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	if !policy.CanReadOutlet(p.Role, p.AssignedOutletID, o.ID) {
		return nil, forbidden("Anda tidak memiliki akses ke outlet ini")
	}
	return o, nil
}

type CreateOutletInput struct {
	Name         string
	CogsPerPiece float64
}

func (s *Outlets) Create(ctx context.Context, p models.Principal, in CreateOutletInput) (*models.Outlet, error) {
	if !policy.CanWriteOutlet(p.Role) {
		return nil, forbidden("Hanya super admin atau owner yang dapat mengelola outlet")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("Nama outlet wajib diisi")
	}
	if in.CogsPerPiece < 0 {
		return nil, invalid("cogs_per_piece tidak boleh negatif")
	}

	o := &models.Outlet{Name: name, CogsPerPiece: in.CogsPerPiece}
	if err := s.store.CreateOutlet(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

type UpdateOutletInput struct {
	Name         *string
	CogsPerPiece *float64
}

func (s *Outlets) Update(ctx context.Context, p models.Principal, id string, in UpdateOutletInput) (*models.Outlet, error) {
	if !policy.CanWriteOutlet(p.Role) {
		return nil, forbidden("Hanya super admin atau owner yang dapat mengelola outlet")
	}

	o, err := s.store.GetOutlet(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("Outlet tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalid("Nama outlet tidak boleh kosong")
		}
		o.Name = name
	}
	if in.CogsPerPiece != nil {
		if *in.CogsPerPiece < 0 {
			return nil, invalid("cogs_per_piece tidak boleh negatif")
		}
		o.CogsPerPiece = *in.CogsPerPiece
	}

	if err := s.store.SaveOutlet(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Delete menghapus outlet beserta seluruh sales dan expenses miliknya.
func (s *Outlets) Delete(ctx context.Context, p models.Principal, id string) error {
	if !policy.CanWriteOutlet(p.Role) {
		return forbidden("Hanya super admin atau owner yang dapat mengelola outlet")
	}

	if _, err := s.store.GetOutlet(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("Outlet tidak ditemukan")
		}
		return err
	}
	return s.store.DeleteOutlet(ctx, id)
}
