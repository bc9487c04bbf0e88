package favorite

import (
	"Recipe-Catalog/domain"
	"github.com/gofiber/fiber/v2/log"
)

// Valid reports whether a persisted favorite carries everything a view needs
// to render it. The ingredient list must be present but may be empty, as it
// may be for a catalog recipe.
func Valid(favorite domain.Favorite) bool {
	return favorite.ID != "" &&
		favorite.Title != "" &&
		favorite.Instructions != "" &&
		favorite.Ingredients != nil
}

// Validate returns the valid entries of favorites, logging each one dropped.
func Validate(favorites []domain.Favorite) []domain.Favorite {
	valid := make([]domain.Favorite, 0, len(favorites))
	for _, favorite := range favorites {
		if !Valid(favorite) {
			log.Warnf("invalid recipe structure for favorite %q, removing from favorites", favorite.ID)
			continue
		}
		valid = append(valid, favorite)
	}
	return valid
}
