package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingIdentifier     = errors.New("recipe has no valid id")
	ErrFavoritesNotPersisted = errors.New("favorites could not be saved to any storage backend")
)

// Favorite is a client-local snapshot of a recipe. It does not follow later
// changes to the source recipe.
type Favorite struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Instructions string             `json:"instructions"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Category     string             `json:"category"`
	DateAdded    time.Time          `json:"dateAdded"`
}

func NewFavorite(recipe Recipe, addedAt time.Time) Favorite {
	ingredients := make([]RecipeIngredient, len(recipe.Ingredients))
	copy(ingredients, recipe.Ingredients)

	return Favorite{
		ID:           recipe.ID,
		Title:        recipe.Title,
		Instructions: recipe.Instructions,
		Ingredients:  ingredients,
		Category:     recipe.Category,
		DateAdded:    addedAt,
	}
}
