package recipe

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/entities"
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"strings"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uuid.UUID) error
		GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error)
		WithTx(tx *gorm.DB) RecipeRepository
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) WithTx(tx *gorm.DB) RecipeRepository {
	return &recipeRepository{db: tx}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// DeleteRecipe removes the recipe row only. Linkage rows must already be gone.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	query := r.db.WithContext(ctx).Model(&entities.Recipe{})

	switch filter.Kind {
	case domain.FilterIngredient:
		condition, pattern := ingredientNameMatch(r.db.Dialector.Name(), filter.Value)
		matching := r.db.WithContext(ctx).
			Model(&entities.RecipeIngredient{}).
			Select("recipe_ingredients.recipe_id").
			Joins("JOIN ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
			Where(condition, pattern)
		query = query.Where("recipes.id IN (?)", matching)
	case domain.FilterCategory:
		query = query.Where("recipes.category = ?", filter.Value)
	}

	if err := query.
		Order("recipes.created_at asc").
		Order("recipes.id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// ingredientNameMatch builds a case-insensitive substring match on ingredient
// names. Postgres folds case with ILIKE. SQLite's LIKE folds ASCII letters
// only, so non-ASCII names match there with their exact case.
func ingredientNameMatch(dialect, value string) (string, string) {
	pattern := "%" + escapeLike(value) + "%"
	if dialect == "postgres" {
		return `ingredients.name ILIKE ? ESCAPE '\'`, pattern
	}
	return `ingredients.name LIKE ? ESCAPE '\'`, pattern
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
