package handlers

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/internal/api/presenters"
	"Recipe-Catalog/pkg/catalog"
	"Recipe-Catalog/pkg/recipe"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService  recipe.RecipeService
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, catalogService catalog.CatalogService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService:  recipeService,
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	req := domain.RecipeQueryRequest{
		Ingredient: c.Query("ingredient"),
		Category:   c.Query("category"),
	}

	res, err := h.catalogService.GetRecipes(c.Context(), req)
	if err != nil {
		return failure(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.ErrInvalidInput)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, domain.ErrInvalidInput)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return failure(c, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID); err != nil {
		return failure(c, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) GetIngredients(c *fiber.Ctx) error {
	res, err := h.recipeService.GetIngredients(c.Context())
	if err != nil {
		return failure(c, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func failure(c *fiber.Ctx, message string, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	}
	log.Errorf("%s %s: %v", c.Method(), c.OriginalURL(), err)
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageSomethingWentWrong, err)
}
