package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mytheresa/go-shop/config"
	"github.com/mytheresa/go-shop/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// Open connects to the shop database with the driver named in cfg.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger(cfg.DBLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPgx, "":
		return postgres.Open(cfg.DBURL), nil
	case config.DriverPq:
		sqlDB, err := sql.Open("postgres", cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open lib/pq connection: %w", err)
		}
		return postgres.New(postgres.Config{Conn: sqlDB}), nil
	}
	return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
}

func newLogger(level string) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  parseLogLevel(level),
			IgnoreRecordNotFoundError: true,
		},
	)
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	}
	return logger.Warn
}

// schema lists every model in dependency order.
var schema = []any{
	&models.Account{},
	&models.Category{},
	&models.Product{},
	&models.Order{},
	&models.LineItem{},
	&models.Cart{},
}

// columnDefaults are set after AutoMigrate. Declaring them as gorm
// defaults would turn an explicit zero count into one on insert.
var columnDefaults = []struct{ table, column, value string }{
	{"products", "count", "1"},
	{"line_items", "count", "1"},
	{"carts", "count", "1"},
}

// Migrate creates or updates the shop tables, including the
// ON DELETE CASCADE foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(schema...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	for _, d := range columnDefaults {
		stmt := fmt.Sprintf(`ALTER TABLE %q ALTER COLUMN %q SET DEFAULT %s`, d.table, d.column, d.value)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("set default %s.%s: %w", d.table, d.column, err)
		}
	}
	return nil
}
