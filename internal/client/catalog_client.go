// Package client talks to the recipe catalog API from the favorites CLI.
package client

import (
	"Recipe-Catalog/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"net/url"
	"strings"
	"time"
)

type (
	CatalogClient interface {
		GetRecipes(ctx context.Context, req domain.RecipeQueryRequest) ([]domain.Recipe, error)
		GetRecipe(ctx context.Context, recipeID string) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID string) error
	}

	catalogClient struct {
		baseURL string
		timeout time.Duration
	}

	envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
)

var ErrRequestFailed = errors.New("catalog request failed")

func NewCatalogClient(baseURL string, timeout time.Duration) CatalogClient {
	return &catalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

func (c *catalogClient) GetRecipes(ctx context.Context, req domain.RecipeQueryRequest) ([]domain.Recipe, error) {
	query := url.Values{}
	if req.Ingredient != "" {
		query.Set("ingredient", req.Ingredient)
	}
	if req.Category != "" {
		query.Set("category", req.Category)
	}

	agent := fiber.Get(c.baseURL + "/api/recipes")
	if len(query) > 0 {
		agent.QueryString(query.Encode())
	}

	var recipes []domain.Recipe
	if err := c.do(ctx, agent, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe looks a recipe up in the full listing; the API has no single
// recipe endpoint.
func (c *catalogClient) GetRecipe(ctx context.Context, recipeID string) (domain.Recipe, error) {
	recipes, err := c.GetRecipes(ctx, domain.RecipeQueryRequest{})
	if err != nil {
		return domain.Recipe{}, err
	}
	for _, recipe := range recipes {
		if recipe.ID == recipeID {
			return recipe, nil
		}
	}
	return domain.Recipe{}, domain.ErrRecipeNotFound
}

func (c *catalogClient) DeleteRecipe(ctx context.Context, recipeID string) error {
	return c.do(ctx, fiber.Delete(c.baseURL+"/api/recipes/"+url.PathEscape(recipeID)), nil)
}

func (c *catalogClient) do(ctx context.Context, agent *fiber.Agent, out interface{}) error {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	var res envelope
	code, _, errs := agent.Struct(&res)
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrRequestFailed, errors.Join(errs...))
	}

	if code >= fiber.StatusBadRequest || !res.Status {
		detail := res.Message
		if res.Error != "" {
			detail += ": " + res.Error
		}
		if code == fiber.StatusBadRequest {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, detail)
		}
		return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, code, detail)
	}

	if out == nil || len(res.Data) == 0 {
		return nil
	}
	return json.Unmarshal(res.Data, out)
}
