package db

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// appSchema is the dedicated Postgres namespace for application tables,
// pinned through search_path so migrations and queries stay unqualified.
const appSchema = "app"

// Open connects to the database named by databaseURL and applies embedded
// migrations. A postgres:// or postgresql:// URL selects the Postgres driver;
// anything else is treated as a sqlite file path.
func Open(databaseURL string) (*gorm.DB, error) {
	if isPostgresURL(databaseURL) {
		return openPostgres(databaseURL)
	}
	return openSQLite(databaseURL)
}

func isPostgresURL(databaseURL string) bool {
	lowered := strings.ToLower(strings.TrimSpace(databaseURL))
	return strings.HasPrefix(lowered, "postgres://") || strings.HasPrefix(lowered, "postgresql://")
}

func openPostgres(databaseURL string) (*gorm.DB, error) {
	dsn, err := withSearchPath(databaseURL, appSchema)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         newGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := database.Exec("CREATE SCHEMA IF NOT EXISTS " + appSchema).Error; err != nil {
		return nil, fmt.Errorf("create %s schema: %w", appSchema, err)
	}

	if err := applyEmbeddedMigrations(database, DialectPostgres); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

func openSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         newGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyEmbeddedMigrations(database, DialectSQLite); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

// withSearchPath appends search_path to the URL unless the caller already set
// one, so app tables resolve inside the dedicated schema.
func withSearchPath(databaseURL string, schema string) (string, error) {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return "", err
	}
	query := parsed.Query()
	if query.Get("search_path") == "" {
		query.Set("search_path", schema+",public")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String(), nil
}

func newGormLogger() gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// Ping runs a trivial round trip to report database reachability.
func Ping(database *gorm.DB) error {
	var one int
	return database.Raw("SELECT 1").Scan(&one).Error
}
