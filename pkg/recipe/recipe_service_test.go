package recipe

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/entities"
	"Recipe-Catalog/internal/testutil"
	"Recipe-Catalog/pkg/ingredient"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (RecipeService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDatabase(t)
	service := NewRecipeService(
		db,
		NewRecipeRepository(db),
		NewCompositionRepository(db),
		ingredient.NewIngredientRepository(db),
	)
	return service, db
}

func findRecipe(recipes []domain.Recipe, id string) (domain.Recipe, bool) {
	for _, r := range recipes {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Recipe{}, false
}

func TestCreateRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("created recipe is listed with all of its ingredients", func(t *testing.T) {
		service, _ := newTestService(t)

		created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
			Title:        "Pancakes",
			Category:     domain.CategoryDesserts,
			Instructions: "Mix and fry.",
			Ingredients: []domain.RecipeIngredient{
				{Name: "Flour", Quantity: "250g"},
				{Name: "Milk", Quantity: "500ml"},
				{Name: "Egg", Quantity: "2"},
			},
		})
		require.NoError(t, err)
		_, err = uuid.Parse(created.ID)
		require.NoError(t, err)
		assert.Len(t, created.Ingredients, 3)

		recipes, err := service.GetRecipes(ctx, domain.RecipeFilter{})
		require.NoError(t, err)
		listed, ok := findRecipe(recipes, created.ID)
		require.True(t, ok)
		assert.Equal(t, "Pancakes", listed.Title)
		assert.Equal(t, "Mix and fry.", listed.Instructions)
		assert.Len(t, listed.Ingredients, 3)
	})

	t.Run("duplicate ingredient names stay separate entries", func(t *testing.T) {
		service, db := newTestService(t)

		created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
			Title:    "Tomato Soup",
			Category: domain.CategoryMainCourse,
			Ingredients: []domain.RecipeIngredient{
				{Name: "Tomato", Quantity: "1kg"},
				{Name: "Tomato", Quantity: "2 cloves"},
			},
		})
		require.NoError(t, err)

		recipes, err := service.GetRecipes(ctx, domain.RecipeFilter{})
		require.NoError(t, err)
		listed, ok := findRecipe(recipes, created.ID)
		require.True(t, ok)
		assert.Equal(t, []domain.RecipeIngredient{
			{Name: "Tomato", Quantity: "1kg"},
			{Name: "Tomato", Quantity: "2 cloves"},
		}, listed.Ingredients)

		var registered int64
		require.NoError(t, db.Model(&entities.Ingredient{}).Where("name = ?", "Tomato").Count(&registered).Error)
		assert.Equal(t, int64(1), registered)
	})

	t.Run("empty ingredient list is accepted", func(t *testing.T) {
		service, _ := newTestService(t)

		created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
			Title:       "Water",
			Category:    domain.CategoryMainCourse,
			Ingredients: []domain.RecipeIngredient{},
		})
		require.NoError(t, err)
		assert.NotNil(t, created.Ingredients)
		assert.Empty(t, created.Ingredients)
	})

	t.Run("ingredients are shared between recipes", func(t *testing.T) {
		service, db := newTestService(t)

		for _, title := range []string{"Bread", "Pizza"} {
			_, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
				Title:       title,
				Category:    domain.CategoryMainCourse,
				Ingredients: []domain.RecipeIngredient{{Name: "Flour", Quantity: "500g"}},
			})
			require.NoError(t, err)
		}

		var registered int64
		require.NoError(t, db.Model(&entities.Ingredient{}).Count(&registered).Error)
		assert.Equal(t, int64(1), registered)
	})
}

func TestCreateRecipeInvalidInput(t *testing.T) {
	ctx := context.Background()
	service, db := newTestService(t)

	tests := []struct {
		name string
		req  domain.CreateRecipeRequest
	}{
		{
			name: "missing title",
			req:  domain.CreateRecipeRequest{Category: domain.CategorySalads, Ingredients: []domain.RecipeIngredient{}},
		},
		{
			name: "blank title",
			req:  domain.CreateRecipeRequest{Title: "   ", Category: domain.CategorySalads, Ingredients: []domain.RecipeIngredient{}},
		},
		{
			name: "missing category",
			req:  domain.CreateRecipeRequest{Title: "Salad", Ingredients: []domain.RecipeIngredient{}},
		},
		{
			name: "ingredients not a sequence",
			req:  domain.CreateRecipeRequest{Title: "Salad", Category: domain.CategorySalads},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateRecipe(ctx, tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	var count int64
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

type failingCompositionRepository struct {
	CompositionRepository
	failAt int
}

func (r *failingCompositionRepository) WithTx(tx *gorm.DB) CompositionRepository {
	return &failingCompositionRepository{CompositionRepository: r.CompositionRepository.WithTx(tx), failAt: r.failAt}
}

func (r *failingCompositionRepository) Link(ctx context.Context, recipeID, ingredientID uuid.UUID, quantity string, position int) error {
	if position == r.failAt {
		return errors.New("connection reset")
	}
	return r.CompositionRepository.Link(ctx, recipeID, ingredientID, quantity, position)
}

func TestCreateRecipeRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDatabase(t)
	service := NewRecipeService(
		db,
		NewRecipeRepository(db),
		&failingCompositionRepository{CompositionRepository: NewCompositionRepository(db), failAt: 1},
		ingredient.NewIngredientRepository(db),
	)

	_, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:    "Half Baked",
		Category: domain.CategoryDesserts,
		Ingredients: []domain.RecipeIngredient{
			{Name: "Sugar", Quantity: "1 cup"},
			{Name: "Butter", Quantity: "100g"},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	var recipes, links, ingredients int64
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&recipes).Error)
	require.NoError(t, db.Model(&entities.RecipeIngredient{}).Count(&links).Error)
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&ingredients).Error)
	assert.Zero(t, recipes)
	assert.Zero(t, links)
	assert.Zero(t, ingredients)
}

func TestDeleteRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted recipe is no longer listed", func(t *testing.T) {
		service, db := newTestService(t)

		created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
			Title:       "Caesar Salad",
			Category:    domain.CategorySalads,
			Ingredients: []domain.RecipeIngredient{{Name: "Lettuce", Quantity: "1 head"}},
		})
		require.NoError(t, err)

		require.NoError(t, service.DeleteRecipe(ctx, created.ID))

		recipes, err := service.GetRecipes(ctx, domain.RecipeFilter{})
		require.NoError(t, err)
		_, ok := findRecipe(recipes, created.ID)
		assert.False(t, ok)

		var links, ingredients int64
		require.NoError(t, db.Model(&entities.RecipeIngredient{}).Count(&links).Error)
		require.NoError(t, db.Model(&entities.Ingredient{}).Count(&ingredients).Error)
		assert.Zero(t, links)
		assert.Equal(t, int64(1), ingredients, "ingredients outlive their recipes")
	})

	t.Run("deleting twice succeeds", func(t *testing.T) {
		service, _ := newTestService(t)

		created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
			Title:       "Brownies",
			Category:    domain.CategoryDesserts,
			Ingredients: []domain.RecipeIngredient{},
		})
		require.NoError(t, err)

		require.NoError(t, service.DeleteRecipe(ctx, created.ID))
		require.NoError(t, service.DeleteRecipe(ctx, created.ID))
	})

	t.Run("unknown id succeeds", func(t *testing.T) {
		service, _ := newTestService(t)
		assert.NoError(t, service.DeleteRecipe(ctx, uuid.NewString()))
	})

	t.Run("malformed id is invalid input", func(t *testing.T) {
		service, _ := newTestService(t)
		assert.ErrorIs(t, service.DeleteRecipe(ctx, "not-a-uuid"), domain.ErrInvalidInput)
	})
}

func TestGetRecipesFilters(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	seed := []domain.CreateRecipeRequest{
		{
			Title:       "Chocolate Cake",
			Category:    domain.CategoryDesserts,
			Ingredients: []domain.RecipeIngredient{{Name: "Flour", Quantity: "200g"}, {Name: "Cocoa", Quantity: "50g"}},
		},
		{
			Title:       "Macarons",
			Category:    domain.CategoryDesserts,
			Ingredients: []domain.RecipeIngredient{{Name: "almond flour", Quantity: "100g"}},
		},
		{
			Title:       "Fruit Salad",
			Category:    domain.CategorySalads,
			Ingredients: []domain.RecipeIngredient{{Name: "Apple", Quantity: "2"}},
		},
		{
			Title:       "Fried Fish",
			Category:    domain.CategoryMainCourse,
			Ingredients: []domain.RecipeIngredient{{Name: "Fish", Quantity: "1"}, {Name: "Flour", Quantity: "2 tbsp"}},
		},
		{
			Title:       "Percent Pie",
			Category:    domain.CategoryDesserts,
			Ingredients: []domain.RecipeIngredient{{Name: "100% cocoa", Quantity: "20g"}},
		},
		{
			Title:       "Apfelsalat",
			Category:    domain.CategorySalads,
			Ingredients: []domain.RecipeIngredient{{Name: "Äpfel", Quantity: "3"}},
		},
	}
	for _, req := range seed {
		_, err := service.CreateRecipe(ctx, req)
		require.NoError(t, err)
	}

	titles := func(recipes []domain.Recipe) []string {
		out := make([]string, 0, len(recipes))
		for _, r := range recipes {
			out = append(out, r.Title)
		}
		return out
	}

	t.Run("category matches exactly", func(t *testing.T) {
		recipes, err := service.GetRecipes(ctx, domain.RecipeFilter{Kind: domain.FilterCategory, Value: domain.CategoryDesserts})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Chocolate Cake", "Macarons", "Percent Pie"}, titles(recipes))
		for _, r := range recipes {
			assert.Equal(t, domain.CategoryDesserts, r.Category)
		}

		none, err := service.GetRecipes(ctx, domain.RecipeFilter{Kind: domain.FilterCategory, Value: "desserts"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("ingredient matches case-insensitive substring", func(t *testing.T) {
		recipes, err := service.GetRecipes(ctx, domain.RecipeFilter{Kind: domain.FilterIngredient, Value: "flour"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Chocolate Cake", "Macarons", "Fried Fish"}, titles(recipes))
	})

	t.Run("ingredient filter returns each recipe once with its full ingredient list", func(t *testing.T) {
		recipes, err := service.GetRecipes(ctx, domain.RecipeFilter{Kind: domain.FilterIngredient, Value: "FISH"})
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Len(t, recipes[0].Ingredients, 2)
	})

	t.Run("wildcards in the ingredient filter are literal", func(t *testing.T) {
		recipes, err := service.GetRecipes(ctx, domain.RecipeFilter{Kind: domain.FilterIngredient, Value: "%"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Percent Pie"}, titles(recipes))
	})

	t.Run("non-ASCII ingredient names match", func(t *testing.T) {
		recipes, err := service.GetRecipes(ctx, domain.RecipeFilter{Kind: domain.FilterIngredient, Value: "Äpf"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Apfelsalat"}, titles(recipes))

		recipes, err = service.GetRecipes(ctx, domain.RecipeFilter{Kind: domain.FilterIngredient, Value: "PFEL"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Apfelsalat"}, titles(recipes))
	})

	t.Run("no filter returns everything with ingredients attached", func(t *testing.T) {
		recipes, err := service.GetRecipes(ctx, domain.RecipeFilter{})
		require.NoError(t, err)
		assert.Len(t, recipes, len(seed))
		for _, r := range recipes {
			assert.NotEmpty(t, r.Ingredients)
		}
	})
}

func TestGetIngredients(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	_, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:       "Omelette",
		Category:    domain.CategoryMainCourse,
		Ingredients: []domain.RecipeIngredient{{Name: "Egg", Quantity: "3"}, {Name: "Cheese", Quantity: "30g"}},
	})
	require.NoError(t, err)

	ingredients, err := service.GetIngredients(ctx)
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "Cheese", ingredients[0].Name)
	assert.Equal(t, "Egg", ingredients[1].Name)
}

func TestIngredientNameMatch(t *testing.T) {
	tests := []struct {
		dialect   string
		condition string
	}{
		{dialect: "postgres", condition: `ingredients.name ILIKE ? ESCAPE '\'`},
		{dialect: "sqlite", condition: `ingredients.name LIKE ? ESCAPE '\'`},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			condition, pattern := ingredientNameMatch(tt.dialect, "Äpfel_100%")
			assert.Equal(t, tt.condition, condition)
			assert.Equal(t, `%Äpfel\_100\%%`, pattern)
		})
	}
}
