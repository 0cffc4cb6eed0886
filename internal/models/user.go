package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleSuperAdmin  UserRole = "super_admin"
	RoleOwner       UserRole = "owner"
	RoleAdminOutlet UserRole = "admin_outlet"
	RoleFinance     UserRole = "finance"
)

// ValidRole reports whether r is one of the four known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleSuperAdmin, RoleOwner, RoleAdminOutlet, RoleFinance:
		return true
	}
	return false
}

type User struct {
	ID               string   `gorm:"primaryKey;size:36"`
	Email            *string  `gorm:"size:100;uniqueIndex"`
	FirstName        *string  `gorm:"size:100"`
	LastName         *string  `gorm:"size:100"`
	ProfileImageURL  *string  `gorm:"size:255"`
	Role             UserRole `gorm:"size:20;not null;default:owner"`
	PasswordHash     *string  `gorm:"size:255"`
	AssignedOutletID *string  `gorm:"size:36;index"`
	AssignedOutlet   *Outlet  `gorm:"foreignKey:AssignedOutletID"`
	CreatedAt        time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Principal is the authenticated caller as resolved from a JWT.
type Principal struct {
	UserID           string
	Role             UserRole
	AssignedOutletID *string
}
