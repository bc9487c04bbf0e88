package recipe

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/entities"
	"Recipe-Catalog/pkg/ingredient"
	"context"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"strings"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID string) error
		GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error)
		GetIngredients(ctx context.Context) ([]domain.Ingredient, error)
	}

	recipeService struct {
		db                    *gorm.DB
		recipeRepository      RecipeRepository
		compositionRepository CompositionRepository
		ingredientRepository  ingredient.IngredientRepository
	}
)

func NewRecipeService(
	db *gorm.DB,
	recipeRepository RecipeRepository,
	compositionRepository CompositionRepository,
	ingredientRepository ingredient.IngredientRepository,
) RecipeService {
	return &recipeService{
		db:                    db,
		recipeRepository:      recipeRepository,
		compositionRepository: compositionRepository,
		ingredientRepository:  ingredientRepository,
	}
}

// CreateRecipe inserts the recipe, resolves every ingredient and links it in
// submission order. Everything runs in one transaction: either the recipe and
// all of its linkage rows are committed or none are.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Category) == "" || req.Ingredients == nil {
		return domain.Recipe{}, domain.ErrInvalidInput
	}

	recipe := entities.Recipe{
		Title:        req.Title,
		Category:     req.Category,
		Instructions: req.Instructions,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipes := s.recipeRepository.WithTx(tx)
		compositions := s.compositionRepository.WithTx(tx)
		ingredients := s.ingredientRepository.WithTx(tx)

		if err := recipes.CreateRecipe(ctx, &recipe); err != nil {
			return err
		}

		for position, entry := range req.Ingredients {
			ingredientID, err := ingredients.Resolve(ctx, entry.Name)
			if err != nil {
				return fmt.Errorf("resolve ingredient %q: %w", entry.Name, err)
			}
			if err := compositions.Link(ctx, recipe.ID, ingredientID, entry.Quantity, position); err != nil {
				return fmt.Errorf("link ingredient %q: %w", entry.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Errorf("create recipe %q: %v", req.Title, err)
		return domain.Recipe{}, storeError(err)
	}

	res := toDomainRecipe(&recipe)
	res.Ingredients = make([]domain.RecipeIngredient, len(req.Ingredients))
	copy(res.Ingredients, req.Ingredients)
	return res, nil
}

// DeleteRecipe removes the linkage rows and then the recipe. Deleting an id
// that does not exist succeeds.
func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string) error {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrInvalidInput
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.compositionRepository.WithTx(tx).DeleteAllFor(ctx, id); err != nil {
			return err
		}
		return s.recipeRepository.WithTx(tx).DeleteRecipe(ctx, id)
	})
	if err != nil {
		log.Errorf("delete recipe %s: %v", recipeID, err)
		return storeError(err)
	}
	return nil
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	rows, err := s.recipeRepository.GetRecipes(ctx, filter)
	if err != nil {
		log.Errorf("list recipes by %s %q: %v", filter.Kind, filter.Value, err)
		return nil, storeError(err)
	}

	recipes := make([]domain.Recipe, 0, len(rows))
	for _, row := range rows {
		recipe := toDomainRecipe(row)
		recipe.Ingredients, err = s.compositionRepository.ListFor(ctx, row.ID)
		if err != nil {
			log.Errorf("list ingredients of recipe %s: %v", row.ID, err)
			return nil, storeError(err)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (s *recipeService) GetIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	rows, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		log.Errorf("list ingredients: %v", err)
		return nil, storeError(err)
	}

	ingredients := make([]domain.Ingredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, domain.Ingredient{
			ID:   row.ID.String(),
			Name: row.Name,
		})
	}
	return ingredients, nil
}

func toDomainRecipe(recipe *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:           recipe.ID.String(),
		Title:        recipe.Title,
		Category:     recipe.Category,
		Instructions: recipe.Instructions,
		Ingredients:  []domain.RecipeIngredient{},
		CreatedAt:    recipe.CreatedAt,
	}
}

func storeError(err error) error {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}
