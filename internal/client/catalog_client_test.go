package client_test

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/internal/api/handlers"
	"Recipe-Catalog/internal/api/routes"
	"Recipe-Catalog/internal/client"
	"Recipe-Catalog/internal/middleware"
	"Recipe-Catalog/internal/testutil"
	"Recipe-Catalog/internal/utils"
	"Recipe-Catalog/pkg/catalog"
	"Recipe-Catalog/pkg/ingredient"
	"Recipe-Catalog/pkg/recipe"
	"context"
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveCatalog(t *testing.T) (string, recipe.RecipeService) {
	t.Helper()
	utils.InitValidator()

	db := testutil.NewDatabase(t)
	service := recipe.NewRecipeService(
		db,
		recipe.NewRecipeRepository(db),
		recipe.NewCompositionRepository(db),
		ingredient.NewIngredientRepository(db),
	)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	cfg := routes.Config{
		App:           app,
		RecipeHandler: handlers.NewRecipeHandler(service, catalog.NewCatalogService(service), utils.Validate),
		Middleware:    middleware.NewMiddleware("*"),
	}
	cfg.Setup()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String(), service
}

func seed(t *testing.T, service recipe.RecipeService, title, category string, ingredients ...string) domain.Recipe {
	t.Helper()
	req := domain.CreateRecipeRequest{Title: title, Category: category, Instructions: "cook"}
	for _, name := range ingredients {
		req.Ingredients = append(req.Ingredients, domain.RecipeIngredient{Name: name, Quantity: "1"})
	}
	created, err := service.CreateRecipe(context.Background(), req)
	require.NoError(t, err)
	return created
}

func TestCatalogClient_GetRecipes(t *testing.T) {
	baseURL, service := serveCatalog(t)
	bread := seed(t, service, "Bread", domain.CategoryMainCourse, "Flour", "Water")
	seed(t, service, "Salad", domain.CategorySalads, "Lettuce")

	c := client.NewCatalogClient(baseURL+"/", 5*time.Second)

	all, err := c.GetRecipes(context.Background(), domain.RecipeQueryRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := c.GetRecipes(context.Background(), domain.RecipeQueryRequest{Ingredient: "flour"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, bread.ID, filtered[0].ID)
	assert.Len(t, filtered[0].Ingredients, 2)

	byCategory, err := c.GetRecipes(context.Background(), domain.RecipeQueryRequest{Category: domain.CategorySalads})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Salad", byCategory[0].Title)
}

func TestCatalogClient_GetRecipe(t *testing.T) {
	baseURL, service := serveCatalog(t)
	bread := seed(t, service, "Bread", domain.CategoryMainCourse, "Flour")
	c := client.NewCatalogClient(baseURL, 5*time.Second)

	found, err := c.GetRecipe(context.Background(), bread.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bread", found.Title)

	_, err = c.GetRecipe(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestCatalogClient_DeleteRecipe(t *testing.T) {
	baseURL, service := serveCatalog(t)
	bread := seed(t, service, "Bread", domain.CategoryMainCourse, "Flour")
	c := client.NewCatalogClient(baseURL, 5*time.Second)

	require.NoError(t, c.DeleteRecipe(context.Background(), bread.ID))
	require.NoError(t, c.DeleteRecipe(context.Background(), bread.ID))

	remaining, err := c.GetRecipes(context.Background(), domain.RecipeQueryRequest{})
	require.NoError(t, err)
	assert.Empty(t, remaining)

	err = c.DeleteRecipe(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogClient_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := client.NewCatalogClient("http://"+addr, time.Second)
	_, err = c.GetRecipes(context.Background(), domain.RecipeQueryRequest{})
	assert.ErrorIs(t, err, client.ErrRequestFailed)
}
