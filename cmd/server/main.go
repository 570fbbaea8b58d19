package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bank-backoffice.backend/internal/config"
	"bank-backoffice.backend/internal/infrastructure/datasources/postgres"
	"bank-backoffice.backend/pkg/crypto"
	"bank-backoffice.backend/pkg/logger"
	"bank-backoffice.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	connectDB  = postgres.NewConnection
	openGorm   = postgres.Open
	migrate    = postgres.Migrate
	runServer  = func(srv *http.Server) error { return srv.ListenAndServe() }
	// shutdownSignal is closed or fed when the process should stop
	shutdownSignal = func() <-chan os.Signal {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		return quit
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	crypto.SetCost(cfg.Security.BcryptCost)

	if cfg.Redis.Enabled {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer redis.Close()
		logger.Info(ctx, "Redis initialized")
	} else {
		logger.Warn(ctx, "Redis disabled: refresh tokens are reusable and idempotency keys are ignored")
	}

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	sqlDB, err := connectDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer sqlDB.Close()

	db, err := openGorm(sqlDB)
	if err != nil {
		return err
	}
	logger.Info(ctx, "Connected to PostgreSQL", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.DBName))

	if cfg.Database.AutoMigrate {
		if err := migrate(db); err != nil {
			return err
		}
		logger.Info(ctx, "Database schema migrated")
	}

	return serve(cfg, buildRouter(cfg, db, sqlDB))
}

func buildRouter(cfg *config.Config, db *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	r := gin.New()
	applyBaseMiddleware(r)
	applyCORSMiddleware(r, cfg.Server.CORSOrigins)
	registerHealthRoute(r, sqlDB)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, newRouteDeps(cfg, db))
	return r
}

func serve(cfg *config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(context.Background(), "Bank back-office API starting", zap.String("port", cfg.Server.Port))
		errCh <- runServer(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-shutdownSignal():
		logger.Info(context.Background(), "Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
