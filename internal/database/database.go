package database

import (
	"fmt"
	"time"

	"hotel-frontdesk-backend/internal/config"
	"hotel-frontdesk-backend/internal/models"
	"hotel-frontdesk-backend/internal/repository"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the MySQL connection string. clientFoundRows makes an UPDATE
// report matched rows, so re-applying the same status still counts.
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
	)
}

// Connect initializes and returns a GORM database connection
func Connect(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.GinMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(mysql.Open(DSN(cfg.Database)), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database))
	return db, nil
}

// Migrate creates or updates the tables the front desk reads and writes
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Room{},
		&models.Guest{},
		&models.Booking{},
		&models.StaffUser{},
		&models.RefreshToken{},
		&models.AuditLog{},
	)
}

// OpenGateway returns the record store selected by STORE_DRIVER.
// The returned close function releases any underlying connection.
func OpenGateway(cfg *config.Config, log *zap.Logger) (repository.Gateway, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverMySQL:
		db, err := Connect(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		if err := Migrate(db); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repository.NewGormGateway(db), closeFn, nil
	case config.DriverRest:
		log.Info("using hosted data api", zap.String("url", cfg.Store.RestURL))
		return repository.NewRestGateway(cfg.Store.RestURL, cfg.Store.RestAPIKey, cfg.Store.RestTimeout), func() {}, nil
	case config.DriverMemory:
		log.Warn("using in-memory store; data is lost on restart")
		return repository.NewMemoryGateway(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
