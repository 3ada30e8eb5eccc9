package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/rpupo63/constructco-site-backend/models"
)

const pingTimeout = 5 * time.Second

// Settings describes how to reach the database. DATABASE_URL accepts
// postgres://, postgresql://, sqlite:// or a bare SQLite file path.
type Settings struct {
	URL             string        `env:"DATABASE_URL" envDefault:"sqlite://./constructco.db"`
	ReplicaURLs     []string      `env:"DATABASE_REPLICA_URLS" envSeparator:","`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DATABASE_CONN_MAX_IDLE_TIME" envDefault:"10m"`
	SlowThreshold   time.Duration `env:"DATABASE_SLOW_THRESHOLD" envDefault:"2s"`
	LogLevel        string        `env:"DATABASE_LOG_LEVEL" envDefault:"warn"`
}

// IsPostgres reports whether the URL points at PostgreSQL
func (s Settings) IsPostgres() bool {
	return strings.HasPrefix(s.URL, "postgres://") || strings.HasPrefix(s.URL, "postgresql://")
}

// SQLitePath extracts the file path from a sqlite:// URL
func (s Settings) SQLitePath() string {
	return strings.TrimPrefix(s.URL, "sqlite://")
}

// Open connects to the configured database, sets up pooling and read replicas, and pings it
func Open(ctx context.Context, settings Settings) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if settings.IsPostgres() {
		dialector = postgres.New(postgres.Config{
			DSN:                  settings.URL,
			PreferSimpleProtocol: true,
		})
	} else {
		sqlDB, err := sql.Open("sqlite", settings.SQLitePath())
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		dialector = sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        settings.SQLitePath(),
			Conn:       sqlDB,
		}
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             settings.SlowThreshold,
			LogLevel:                  parseLogLevel(settings.LogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    false,
		TranslateError: true,
		Logger:         gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if settings.IsPostgres() {
		if len(settings.ReplicaURLs) > 0 {
			replicas := make([]gorm.Dialector, 0, len(settings.ReplicaURLs))
			for _, replicaURL := range settings.ReplicaURLs {
				replicas = append(replicas, postgres.New(postgres.Config{
					DSN:                  replicaURL,
					PreferSimpleProtocol: true,
				}))
			}
			if err := db.Use(dbresolver.Register(dbresolver.Config{
				Replicas: replicas,
				Policy:   dbresolver.RandomPolicy{},
			})); err != nil {
				return nil, fmt.Errorf("failed to register read replicas: %w", err)
			}
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(settings.MaxOpenConns)
		sqlDB.SetMaxIdleConns(settings.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(settings.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(settings.ConnMaxIdleTime)
	} else {
		// SQLite allows one writer at a time
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := ping(ctx, db); err != nil {
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the tables for every model
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func ping(ctx context.Context, db *gorm.DB) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
