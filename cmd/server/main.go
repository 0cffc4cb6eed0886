package main

import (
	"log"
	"strings"

	"pukis-backend/internal/admin"
	"pukis-backend/internal/auth"
	"pukis-backend/internal/config"
	"pukis-backend/internal/database"
	"pukis-backend/internal/expense"
	"pukis-backend/internal/models"
	"pukis-backend/internal/outlet"
	"pukis-backend/internal/sale"
	"pukis-backend/internal/service"
	"pukis-backend/internal/store/gormstore"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}

	st := gormstore.New(db)
	outlets := service.NewOutlets(st)
	sales := service.NewSales(st)
	expenses := service.NewExpenses(st)
	users := service.NewUsers(st)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Terjadi kesalahan pada server",
			})
		},
	})

	// CORS origins dipisah koma di env
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	// Bukti pengeluaran dilayani statis
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg, st))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/user", auth.MeHandler(st))
	protected.Post("/auth/logout", auth.LogoutHandler())

	// Outlet
	protected.Get("/outlets", outlet.ListHandler(outlets))
	protected.Get("/outlets/:id", outlet.GetHandler(outlets))
	protected.Post("/outlets", outlet.CreateHandler(outlets))
	protected.Patch("/outlets/:id", outlet.UpdateHandler(outlets))
	protected.Delete("/outlets/:id", outlet.DeleteHandler(outlets))

	// Penjualan harian
	// Rute literal /sales/mtd* harus didaftarkan sebelum /sales/:id
	protected.Get("/sales", sale.ListHandler(sales))
	protected.Get("/sales/mtd", sale.MTDHandler(sales))
	protected.Get("/sales/mtd-summary", sale.MTDSummaryHandler(sales))
	protected.Get("/sales/:id", sale.GetHandler(sales))
	protected.Post("/sales", sale.CreateHandler(sales))
	protected.Patch("/sales/:id", sale.UpdateHandler(sales))
	protected.Delete("/sales/:id", sale.DeleteHandler(sales))

	// Pengeluaran
	protected.Get("/expenses", expense.ListHandler(expenses))
	protected.Post("/expenses/upload", expense.UploadProofHandler(cfg))
	protected.Get("/expenses/:id", expense.GetHandler(expenses))
	protected.Post("/expenses", expense.CreateHandler(expenses))
	protected.Patch("/expenses/:id", expense.UpdateHandler(expenses))
	protected.Delete("/expenses/:id", expense.DeleteHandler(expenses))

	// Manajemen akun, khusus super admin
	adminRoutes := protected.Group("/super-admin")
	adminRoutes.Use(auth.RequireRole(models.RoleSuperAdmin))
	adminRoutes.Get("/admins", admin.ListAdminsHandler(users))
	adminRoutes.Post("/admins", admin.CreateAdminHandler(users))
	adminRoutes.Delete("/admins/:id", admin.DeleteAdminHandler(users))

	log.Println("Server berjalan di port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
