package recipe

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/entities"
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// CompositionRepository owns the recipe_ingredients linkage rows.
	CompositionRepository interface {
		Link(ctx context.Context, recipeID, ingredientID uuid.UUID, quantity string, position int) error
		ListFor(ctx context.Context, recipeID uuid.UUID) ([]domain.RecipeIngredient, error)
		DeleteAllFor(ctx context.Context, recipeID uuid.UUID) error
		WithTx(tx *gorm.DB) CompositionRepository
	}

	compositionRepository struct {
		db *gorm.DB
	}
)

func NewCompositionRepository(db *gorm.DB) CompositionRepository {
	return &compositionRepository{db: db}
}

func (r *compositionRepository) WithTx(tx *gorm.DB) CompositionRepository {
	return &compositionRepository{db: tx}
}

func (r *compositionRepository) Link(ctx context.Context, recipeID, ingredientID uuid.UUID, quantity string, position int) error {
	link := entities.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Quantity:     quantity,
		Position:     position,
	}
	return r.db.WithContext(ctx).Create(&link).Error
}

func (r *compositionRepository) ListFor(ctx context.Context, recipeID uuid.UUID) ([]domain.RecipeIngredient, error) {
	ingredients := make([]domain.RecipeIngredient, 0)
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Select("ingredients.name AS name, recipe_ingredients.quantity AS quantity").
		Joins("JOIN ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Order("recipe_ingredients.position asc").
		Scan(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *compositionRepository) DeleteAllFor(ctx context.Context, recipeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&entities.RecipeIngredient{}).Error
}
