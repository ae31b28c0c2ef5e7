package db

import (
	"fmt" // Error formatting

	"recycling_portal/internal/config" // Driver selection
	"recycling_portal/internal/store"  // Entry model

	"github.com/glebarez/sqlite" // Pure-Go SQLite driver for GORM
	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Open connects to the SQL backend selected by cfg.StoreDriver
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StoreDriver {
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.MySQLDSN()) // Connect using the MySQL DSN
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath) // Connect to the SQLite file
	default:
		return nil, fmt.Errorf("store driver %q is not a SQL backend", cfg.StoreDriver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{}) // Open a connection to the database
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.StoreDriver, err)
	}
	return db, nil
}

// Migrate creates or updates the key-value table
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing columns and indexes
	if err := db.AutoMigrate(&store.Entry{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
