package catalog

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/pkg/recipe"
	"context"
	"strings"
)

type (
	// CatalogService is the read boundary addressed by network callers.
	CatalogService interface {
		GetRecipes(ctx context.Context, req domain.RecipeQueryRequest) ([]domain.Recipe, error)
	}

	catalogService struct {
		recipeService recipe.RecipeService
	}
)

func NewCatalogService(recipeService recipe.RecipeService) CatalogService {
	return &catalogService{recipeService: recipeService}
}

func (s *catalogService) GetRecipes(ctx context.Context, req domain.RecipeQueryRequest) ([]domain.Recipe, error) {
	return s.recipeService.GetRecipes(ctx, FilterFrom(req))
}

// FilterFrom picks the single filter dimension honored for a listing. An
// ingredient filter takes precedence over a category filter.
func FilterFrom(req domain.RecipeQueryRequest) domain.RecipeFilter {
	if ingredient := strings.TrimSpace(req.Ingredient); ingredient != "" {
		return domain.RecipeFilter{Kind: domain.FilterIngredient, Value: ingredient}
	}
	if category := strings.TrimSpace(req.Category); category != "" {
		return domain.RecipeFilter{Kind: domain.FilterCategory, Value: category}
	}
	return domain.RecipeFilter{Kind: domain.FilterNone}
}
