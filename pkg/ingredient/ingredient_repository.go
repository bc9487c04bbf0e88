package ingredient

import (
	"Recipe-Catalog/entities"
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	IngredientRepository interface {
		Resolve(ctx context.Context, name string) (uuid.UUID, error)
		GetIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		WithTx(tx *gorm.DB) IngredientRepository
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) WithTx(tx *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: tx}
}

// Resolve returns the id registered for name, creating the entry on first use.
// The insert is an upsert against the unique name index, so concurrent callers
// resolving the same name end up reading the same row.
func (r *ingredientRepository) Resolve(ctx context.Context, name string) (uuid.UUID, error) {
	candidate := entities.Ingredient{Name: name}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&candidate).Error; err != nil {
		return uuid.Nil, err
	}

	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&ingredient).Error; err != nil {
		return uuid.Nil, err
	}
	return ingredient.ID, nil
}

func (r *ingredientRepository) GetIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
