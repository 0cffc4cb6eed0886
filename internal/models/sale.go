package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale adalah rekap penjualan satu outlet untuk satu tanggal.
// Satu outlet hanya boleh punya satu Sale per tanggal.
type Sale struct {
	ID       string `gorm:"primaryKey;size:36"`
	OutletID string `gorm:"size:36;not null;uniqueIndex:idx_sales_outlet_date"`
	Outlet   Outlet
	Date     string `gorm:"size:10;not null;uniqueIndex:idx_sales_outlet_date"` // "2006-01-02"

	// Omzet per kanal penjualan (rupiah)
	Cash   int `gorm:"not null;default:0"`
	Qris   int `gorm:"not null;default:0"`
	Grab   int `gorm:"not null;default:0"`
	Gofood int `gorm:"not null;default:0"`
	Shopee int `gorm:"not null;default:0"`
	Tiktok int `gorm:"not null;default:0"`

	// Jumlah unit (biji)
	TotalSold       int     `gorm:"not null;default:0"`
	Remaining       int     `gorm:"not null;default:0"`
	Returned        int     `gorm:"not null;default:0"`
	TotalProduction int     `gorm:"not null;default:0"`
	SoldOutTime     *string `gorm:"size:50"`

	CreatedAt time.Time
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
