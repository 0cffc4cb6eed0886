package service

import (
	"context"
	"errors"
	"strings"

	"pukis-backend/internal/models"
	"pukis-backend/internal/policy"
	"pukis-backend/internal/store"

	"golang.org/x/crypto/bcrypt"
)

type Users struct {
	store store.Store
}

func NewUsers(s store.Store) *Users {
	return &Users{store: s}
}

// ListAdmins mengembalikan semua akun non-super_admin, terbaru dulu.
func (s *Users) ListAdmins(ctx context.Context, p models.Principal) ([]models.User, error) {
	if !policy.CanManageUsers(p.Role) {
		return nil, forbidden("Hanya super admin yang dapat mengelola akun")
	}
	return s.store.ListAdmins(ctx)
}

type CreateAdminInput struct {
	Email            string
	FirstName        *string
	LastName         *string
	Role             models.UserRole
	Password         *string
	AssignedOutletID *string
}

func (s *Users) CreateAdmin(ctx context.Context, p models.Principal, in CreateAdminInput) (*models.User, error) {
	if !policy.CanManageUsers(p.Role) {
		return nil, forbidden("Hanya super admin yang dapat mengelola akun")
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, invalid("Email wajib diisi")
	}
	if in.Role == "" {
		in.Role = models.RoleOwner
	}
	if !models.ValidRole(in.Role) {
		return nil, invalid("Role tidak dikenal")
	}
	if in.Role == models.RoleAdminOutlet && in.AssignedOutletID == nil {
		return nil, invalid("admin_outlet harus ditugaskan ke satu outlet")
	}

	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		return nil, invalid("Email sudah terdaftar")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if in.AssignedOutletID != nil {
		if _, err := s.store.GetOutlet(ctx, *in.AssignedOutletID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, notFound("Outlet tidak ditemukan")
			}
			return nil, err
		}
	}

	var passwordHash *string
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		passwordHash = &h
	}

	user := &models.User{
		Email:            &email,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Role:             in.Role,
		PasswordHash:     passwordHash,
		AssignedOutletID: in.AssignedOutletID,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, invalid("Email sudah terdaftar")
		}
		return nil, err
	}
	return user, nil
}

// DeleteAdmin menolak menghapus akun super_admin, siapapun callernya.
func (s *Users) DeleteAdmin(ctx context.Context, p models.Principal, id string) error {
	if !policy.CanManageUsers(p.Role) {
		return forbidden("Hanya super admin yang dapat mengelola akun")
	}

	user, err := s.store.GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound("User tidak ditemukan")
	}
	if err != nil {
		return err
	}
	if policy.IsProtectedUser(*user) {
		return forbidden("Tidak dapat menghapus super admin")
	}
	return s.store.DeleteUser(ctx, id)
}
