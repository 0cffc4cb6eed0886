package database

import (
	"fmt"

	"pukis-backend/internal/config"
	"pukis-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open membuka koneksi Postgres dan menjalankan AutoMigrate.
// TranslateError diaktifkan supaya pelanggaran unique index muncul
// sebagai gorm.ErrDuplicatedKey, bukan error driver mentah.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("koneksi database gagal: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Outlet{},
		&models.Sale{},
		&models.Expense{},
	); err != nil {
		return nil, fmt.Errorf("migrasi database gagal: %w", err)
	}

	return db, nil
}
