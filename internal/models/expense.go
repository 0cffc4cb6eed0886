package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseType string

const (
	ExpenseHarian  ExpenseType = "harian"
	ExpenseBulanan ExpenseType = "bulanan"
	ExpenseGaji    ExpenseType = "gaji"
)

// ValidExpenseType reports whether t is one of the known expense types.
func ValidExpenseType(t ExpenseType) bool {
	switch t {
	case ExpenseHarian, ExpenseBulanan, ExpenseGaji:
		return true
	}
	return false
}

type Expense struct {
	ID          string `gorm:"primaryKey;size:36"`
	OutletID    string `gorm:"size:36;not null;index"`
	Outlet      Outlet
	Date        string      `gorm:"size:10;not null;index"` // "2006-01-02"
	Type        ExpenseType `gorm:"size:20;not null;default:harian"`
	Description string      `gorm:"size:255;not null"`
	Amount      float64     `gorm:"not null"`
	ProofURL    *string     `gorm:"size:255"`
	CreatedAt   time.Time
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
