package migration

import (
	entities2 "Recipe-Catalog/entities"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities2.Recipe{}); err != nil {
		log.Printf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Ingredient{}); err != nil {
		log.Printf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.RecipeIngredient{}); err != nil {
		log.Printf("Error migrating recipe ingredient database: %v", err)
		return err
	}

	return nil
}

// MigrateStorage prepares the client-local key/value table used by the
// favorites store.
func MigrateStorage(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities2.StorageEntry{}); err != nil {
		log.Printf("Error migrating storage database: %v", err)
		return err
	}
	return nil
}
