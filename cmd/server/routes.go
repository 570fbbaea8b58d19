package main

import (
	"database/sql"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"bank-backoffice.backend/internal/config"
	"bank-backoffice.backend/internal/infrastructure/repositories"
	"bank-backoffice.backend/internal/interfaces/http/handlers"
	"bank-backoffice.backend/internal/interfaces/http/middleware"
	"bank-backoffice.backend/internal/usecases"
	"bank-backoffice.backend/pkg/jwt"
	"bank-backoffice.backend/pkg/logger"
	"bank-backoffice.backend/pkg/redis"
)

// crudRoutes is the handler set every resource exposes
type crudRoutes interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	resources      map[string]crudRoutes
	authMiddleware gin.HandlerFunc
}

// resourcePaths fixes registration order
var resourcePaths = []string{"users", "addresses", "accounts", "cards", "invoices", "loans"}

func newRouteDeps(cfg *config.Config, db *gorm.DB) routeDeps {
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)

	userRepo := repositories.NewUserRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	cardRepo := repositories.NewCardRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	var tokens usecases.RefreshTokenStore
	if redis.Enabled() {
		tokens = redis.NewRefreshTokenStore()
	}

	validator := handlers.NewValidator()
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, tokens, cfg.JWT.RefreshExpiry)

	return routeDeps{
		authHandler: handlers.NewAuthHandler(authUsecase, validator),
		resources: map[string]crudRoutes{
			"users":     handlers.NewUserHandler(usecases.NewUserUsecase(userRepo, addressRepo), validator),
			"addresses": handlers.NewAddressHandler(usecases.NewAddressUsecase(addressRepo), validator),
			"accounts":  handlers.NewAccountHandler(usecases.NewAccountUsecase(accountRepo, userRepo), validator),
			"cards":     handlers.NewCardHandler(usecases.NewCardUsecase(cardRepo, accountRepo), validator),
			"invoices":  handlers.NewInvoiceHandler(usecases.NewInvoiceUsecase(invoiceRepo, cardRepo), validator),
			"loans":     handlers.NewLoanHandler(usecases.NewLoanUsecase(loanRepo, userRepo), validator),
		},
		authMiddleware: middleware.AuthMiddleware(jwtService),
	}
}

func applyBaseMiddleware(r *gin.Engine) {
	r.Use(ginzap.RecoveryWithZap(logger.GetLogger(), true))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware("/health", "/metrics"))
	r.Use(middleware.MetricsMiddleware())
}

func applyCORSMiddleware(r *gin.Engine, origins []string) {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.IdempotencyHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{handlers.HeaderTotalCount, handlers.HeaderPage, handlers.HeaderLimit, handlers.HeaderTotalPages, middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	r.Use(cors.New(corsCfg))
}

func registerHealthRoute(r *gin.Engine, sqlDB *sql.DB) {
	var pinger handlers.Pinger
	if sqlDB != nil {
		pinger = sqlDB
	}
	r.GET("/health", handlers.NewHealthHandler(pinger).Health)
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
		}

		// Resource routes: reads for any role, writes for ADMIN
		for _, path := range resourcePaths {
			h, ok := d.resources[path]
			if !ok {
				continue
			}
			group := v1.Group("/" + path)
			group.Use(d.authMiddleware)
			{
				group.GET("", middleware.RequireReader(), h.List)
				group.GET("/:id", middleware.RequireReader(), h.Get)
				group.POST("", middleware.RequireAdmin(), middleware.IdempotencyMiddleware(), h.Create)
				group.PATCH("/:id", middleware.RequireAdmin(), h.Update)
				group.DELETE("/:id", middleware.RequireAdmin(), h.Delete)
			}
		}
	}
}
