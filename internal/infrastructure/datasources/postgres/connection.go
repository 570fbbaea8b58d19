package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bank-backoffice.backend/internal/config"
	"bank-backoffice.backend/internal/infrastructure/models"
)

var (
	sqlOpen = sql.Open
	dbPing  = func(db *sql.DB) error { return db.Ping() }
)

// Supported database/sql drivers
const (
	DriverPQ  = "postgres"
	DriverPgx = "pgx"
)

// NewConnection opens a pool on the configured driver (lib/pq unless "pgx")
// and verifies the server is reachable.
func NewConnection(cfg config.DatabaseConfig) (*sql.DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverPQ
	}
	if driver != DriverPQ && driver != DriverPgx {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlOpen(driver, cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxOpen > 0 {
		db.SetMaxOpenConns(cfg.MaxOpen)
	}
	if cfg.MaxIdle > 0 {
		db.SetMaxIdleConns(cfg.MaxIdle)
	}
	if cfg.MaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.MaxLifetime)
	}

	if err := dbPing(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Open wraps an existing pool with gorm. Driver errors are translated so
// unique violations surface as gorm.ErrDuplicatedKey where the dialect allows.
func Open(sqlDB *sql.DB) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the six resource tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
