// Membuat akun super admin pertama bila belum ada.
// Jalankan: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"pukis-backend/internal/config"
	"pukis-backend/internal/database"
	"pukis-backend/internal/models"
	"pukis-backend/internal/store"
	"pukis-backend/internal/store/gormstore"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const superAdminEmail = "superadmin@pukis.id"

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	st := gormstore.New(db)
	ctx := context.Background()

	if _, err := st.GetUserByEmail(ctx, superAdminEmail); err == nil {
		log.Println("Super admin sudah ada, tidak ada yang dibuat.")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Fatal(err)
	}

	password := os.Getenv("SEED_SUPER_ADMIN_PASSWORD")
	if password == "" {
		password = "superadmin123"
		log.Println("[WARN] SEED_SUPER_ADMIN_PASSWORD tidak diset, memakai password default. Segera ganti!")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	email := superAdminEmail
	firstName := "Super"
	lastName := "Admin"
	passwordHash := string(hash)

	user := &models.User{
		Email:        &email,
		FirstName:    &firstName,
		LastName:     &lastName,
		Role:         models.RoleSuperAdmin,
		PasswordHash: &passwordHash,
	}
	if err := st.CreateUser(ctx, user); err != nil {
		log.Fatal(err)
	}

	log.Println("Super admin berhasil dibuat:", superAdminEmail)
}
