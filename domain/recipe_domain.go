package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes     = "success get recipes"
	MessageSuccessCreateRecipe   = "recipe created successfully"
	MessageSuccessDeleteRecipe   = "recipe deleted successfully"
	MessageSuccessGetIngredients = "success get ingredients"

	MessageFailedGetRecipes     = "failed to get recipes"
	MessageFailedCreateRecipe   = "failed to create recipe"
	MessageFailedDeleteRecipe   = "failed to delete recipe"
	MessageFailedGetIngredients = "failed to get ingredients"

	ErrInvalidInput     = errors.New("invalid input data")
	ErrStoreUnavailable = errors.New("recipe store unavailable")
	ErrRecipeNotFound   = errors.New("recipe not found")
)

const (
	CategorySalads     = "Salads"
	CategoryMainCourse = "Main Course"
	CategoryDesserts   = "Desserts"
)

// Categories lists the categories offered to clients. The store accepts any
// non-empty category.
var Categories = []string{CategorySalads, CategoryMainCourse, CategoryDesserts}

type (
	RecipeIngredient struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
	}

	Recipe struct {
		ID           string             `json:"id"`
		Title        string             `json:"title"`
		Category     string             `json:"category"`
		Instructions string             `json:"instructions"`
		Ingredients  []RecipeIngredient `json:"ingredients"`
		CreatedAt    time.Time          `json:"created_at"`
	}

	CreateRecipeRequest struct {
		Title        string             `json:"title" validate:"required"`
		Category     string             `json:"category" validate:"required"`
		Instructions string             `json:"instructions"`
		Ingredients  []RecipeIngredient `json:"ingredients" validate:"required"`
	}

	// RecipeQueryRequest carries the raw query parameters of a catalog listing.
	RecipeQueryRequest struct {
		Ingredient string `query:"ingredient"`
		Category   string `query:"category"`
	}

	// RecipeFilter selects at most one listing dimension.
	RecipeFilter struct {
		Kind  FilterKind
		Value string
	}

	Ingredient struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)

type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterCategory
	FilterIngredient
)

func (k FilterKind) String() string {
	switch k {
	case FilterCategory:
		return "category"
	case FilterIngredient:
		return "ingredient"
	default:
		return "none"
	}
}
