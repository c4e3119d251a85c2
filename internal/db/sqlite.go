package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gathergrid/commune/internal/models/entities"
)

// OpenSQLite opens a GORM/sqlite database and migrates the schema. Used for
// local development and service tests; Postgres deployments are migrated
// externally.
func OpenSQLite(path string) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := conn.AutoMigrate(
		&entities.User{},
		&entities.Friendship{},
		&entities.Membership{},
		&entities.Attendance{},
		&entities.Community{},
		&entities.Event{},
		&entities.Notification{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}

	return conn, nil
}
