package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Outlet struct {
	ID           string  `gorm:"primaryKey;size:36"`
	Name         string  `gorm:"size:100;not null"`
	CogsPerPiece float64 `gorm:"not null;default:0"` // modal per biji pukis
	CreatedAt    time.Time

	Sales    []Sale    `gorm:"constraint:OnDelete:CASCADE"`
	Expenses []Expense `gorm:"constraint:OnDelete:CASCADE"`
}

func (o *Outlet) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
