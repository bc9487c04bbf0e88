// File: entities/recipe.go
package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Category     string    `gorm:"index;not null" json:"category"`
	Instructions string    `gorm:"type:text" json:"instructions"`

	Timestamp
}

type Ingredient struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"uniqueIndex;not null" json:"name"`

	Timestamp
}

// RecipeIngredient links a recipe to a registry ingredient. Rows are keyed by
// their own id so one recipe may name the same ingredient more than once.
type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID     uuid.UUID `gorm:"type:uuid;index;not null" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;index;not null" json:"ingredient_id"`
	Quantity     string    `json:"quantity"`
	Position     int       `json:"position"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"-"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (ri *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}
