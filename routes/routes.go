package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saranraj027/alliance-matrimony-backend/config"
	"github.com/saranraj027/alliance-matrimony-backend/database"
	"github.com/saranraj027/alliance-matrimony-backend/internal/auditlog"
	"github.com/saranraj027/alliance-matrimony-backend/internal/auth"
	"github.com/saranraj027/alliance-matrimony-backend/internal/lookup"
	"github.com/saranraj027/alliance-matrimony-backend/internal/match"
	"github.com/saranraj027/alliance-matrimony-backend/internal/notification"
	"github.com/saranraj027/alliance-matrimony-backend/internal/photo"
	"github.com/saranraj027/alliance-matrimony-backend/internal/profile"
	"github.com/saranraj027/alliance-matrimony-backend/internal/reports"
	"github.com/saranraj027/alliance-matrimony-backend/middleware"
)

func Setup(r *gin.Engine, cfg *config.Config, catalog *lookup.Catalog) {
	// Uploaded photos are served straight from disk
	r.Static("/media/photos", config.UploadPath)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Public pages
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"page":    "index",
			"message": "Welcome to Alliance Matrimony",
		})
	})
	r.GET("/privacy-policy", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": "privacy-policy"})
	})

	r.Use(middleware.RateLimiter())

	// ========== Audit Log Module ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, auditSvc, auth.NewRedisSessionStore(), cfg)
	authHandler := auth.NewHandler(authSvc)

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg, authSvc))

	protected.POST("/logout", authHandler.Logout)

	// ========== Profile ==========
	profileRepo := profile.NewRepository(database.DB)
	profileSvc := profile.NewService(profileRepo, catalog, auditSvc)
	profileHandler := profile.NewHandler(profileSvc, catalog, authSvc)

	protected.GET("/profile", profileHandler.GetProfile)
	protected.POST("/profile", profileHandler.UpdateProfile)
	protected.GET("/profile/:id", profileHandler.ViewProfile)

	// ========== Photos ==========
	photoRepo := photo.NewRepository(database.DB)
	photoStore := photo.NewDiskStore(config.UploadPath)
	photoSvc := photo.NewService(photoRepo, photoStore, auditSvc, cfg)
	photoHandler := photo.NewHandler(photoSvc, profileRepo)

	photoRoutes := protected.Group("/profile/photos")
	{
		photoRoutes.GET("", photoHandler.List)
		photoRoutes.POST("/upload", photoHandler.Upload)
		photoRoutes.POST("/:id/set_primary", photoHandler.SetPrimary)
		photoRoutes.POST("/:id/delete", photoHandler.Delete)
	}

	// ========== Matches ==========
	matchSvc := match.NewService(profileRepo)
	matchHandler := match.NewHandler(matchSvc)

	protected.GET("/matches", matchHandler.GetMatches)
	protected.GET("/shortlisted", matchHandler.GetShortlisted)

	// ========== Notifications ==========
	notifRepo := notification.NewRepository(database.DB)
	notifSvc := notification.NewService(notifRepo)
	notifHandler := notification.NewHandler(notifSvc)

	protected.GET("/notifications", notifHandler.List)

	// ========== Admin (audit logs + reports) ==========
	reportRepo := reports.NewRepository(database.DB)
	reportSvc := reports.NewService(reportRepo, reports.NewExporter(), auditSvc)
	reportHandler := reports.NewHandler(reportSvc)

	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(middleware.RequireRoles(auth.RoleAdmin, auth.RoleManager))
	{
		adminRoutes.GET("/auditlogs", auditHandler.GetAuditLogs)
		adminRoutes.GET("/reports/members", reportHandler.GetMemberList)
	}
}
