package config

import (
	"Recipe-Catalog/internal/api/handlers"
	"Recipe-Catalog/internal/api/routes"
	"Recipe-Catalog/internal/middleware"
	"Recipe-Catalog/internal/utils"
	"Recipe-Catalog/pkg/catalog"
	"Recipe-Catalog/pkg/ingredient"
	"Recipe-Catalog/pkg/recipe"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	file, err := openLogFile(utils.GetConfig("LOG_FILE"))
	if err != nil {
		log.Errorf("error opening log file: %v", err)
		return nil, err
	}
	return newApp(db, file), nil
}

func newApp(db *gorm.DB, accessLog io.Writer) *fiber.App {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware(utils.GetConfig("ALLOWED_ORIGINS"))
	validator := utils.Validate

	// setting up logging and limiter
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("APP_TIMEZONE"),
		Output:     accessLog,
	}))

	maxRequests, err := strconv.Atoi(utils.GetConfig("RATE_LIMIT_MAX"))
	if err != nil || maxRequests < 1 {
		maxRequests = 10
	}
	app.Use(limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: 1 * time.Second,
	}))

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	compositionRepository := recipe.NewCompositionRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)

	// Service
	recipeService := recipe.NewRecipeService(db, recipeRepository, compositionRepository, ingredientRepository)
	catalogService := catalog.NewCatalogService(recipeService)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, catalogService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
}
