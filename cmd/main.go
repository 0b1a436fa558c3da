package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/saranraj027/alliance-matrimony-backend/config"
	"github.com/saranraj027/alliance-matrimony-backend/database"
	"github.com/saranraj027/alliance-matrimony-backend/internal/auditlog"
	"github.com/saranraj027/alliance-matrimony-backend/internal/auth"
	"github.com/saranraj027/alliance-matrimony-backend/internal/lookup"
	"github.com/saranraj027/alliance-matrimony-backend/internal/notification"
	"github.com/saranraj027/alliance-matrimony-backend/internal/photo"
	"github.com/saranraj027/alliance-matrimony-backend/internal/profile"
	"github.com/saranraj027/alliance-matrimony-backend/routes"
	"github.com/saranraj027/alliance-matrimony-backend/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis (backs session liveness, so this is fatal)
	if err := utils.InitRedis(cfg); err != nil {
		log.Fatalf("❌ Redis init failed: %v", err)
	}

	// Init Kafka
	utils.InitializeKafka(cfg)

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.UserRole{},
		&auth.User{},
		&auditlog.AuditLog{},
		&lookup.Caste{},
		&lookup.Koottam{},
		&lookup.Rasi{},
		&lookup.Star{},
		&lookup.Dhosam{},
		&lookup.Education{},
		&lookup.Profession{},
		&profile.MemberProfile{},
		&profile.FamilyDetail{},
		&profile.BirthDetail{},
		&profile.ProfessionalDetail{},
		&photo.ProfilePhoto{},
		&notification.Notification{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Seed roles and reference data
	if err := auth.SeedUserRoles(db); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed roles: %v", err))
	}
	if err := lookup.Seed(db); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed lookup tables: %v", err))
	}

	// Lookup catalog is loaded once; reference tables only change on deploy
	catalog, err := lookup.LoadCatalog(db)
	if err != nil {
		panic(fmt.Sprintf("❌ Failed to load lookup catalog: %v", err))
	}
	log.Println("✅ Lookup catalog loaded")

	// Notification consumer persists Kafka events as in-app notifications
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo)
	notification.StartKafkaConsumer(cfg, notificationService)

	// Photo uploads live on local disk
	if err := os.MkdirAll(config.UploadPath, os.ModePerm); err != nil {
		panic(fmt.Sprintf("❌ Failed to create upload directory: %v", err))
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:4173", "http://127.0.0.1:4173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With", "Cache-Control", "Pragma"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", "Cache-Control", "Pragma", "Expires"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg, catalog)

	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	fmt.Printf("📁 Upload directory: %s\n", config.UploadPath)
	fmt.Printf("🖼️ Photo access: http://localhost:%s/media/photos/{profileID}/{filename}\n", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		panic(fmt.Sprintf("Failed to start server: %v", err))
	}
}
