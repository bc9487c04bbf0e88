package config

import (
	"Recipe-Catalog/internal/utils"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the catalog database. DB_DRIVER selects postgres (default)
// or a local sqlite file at DB_PATH.
func ConnectDB() (*gorm.DB, error) {
	db, err := gorm.Open(dialector(utils.GetConfig("DB_DRIVER")), &gorm.Config{})
	if err != nil {
		log.Printf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}

func dialector(driver string) gorm.Dialector {
	switch driver {
	case "sqlite":
		return sqlite.Open(utils.GetConfig("DB_PATH"))
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
			utils.GetConfig("APP_TIMEZONE"),
		)
		return postgres.Open(dsn)
	}
}
