package database

import (
	"fmt"
	"nocslol/pkg/config"
	"nocslol/pkg/database/models"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the postgres connection pool.
func NewConnection() (*gorm.DB, error) {
	// Create the database instance.
	db, err := gorm.Open(postgres.Open(config.Database.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Get the SQL database itself.
	sqlDb, sqlErr := db.DB()

	// Verify if could get the connection.
	if sqlErr != nil {
		return nil, fmt.Errorf("failed to get the sql connection: %v", sqlErr)
	}

	// Set the pool values.
	sqlDb.SetMaxOpenConns(100)
	sqlDb.SetMaxIdleConns(10)
	sqlDb.SetConnMaxLifetime(time.Hour)
	sqlDb.SetConnMaxIdleTime(time.Hour)

	// Test the connection
	if err := sqlDb.Ping(); err != nil {
		sqlDb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, err
}

// Migrate applies the schema for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Champion{},
		&models.ChampionAbility{},
		&models.OverlayConfig{},
	); err != nil {
		return fmt.Errorf("couldn't run the migrations: %w", err)
	}

	return nil
}
