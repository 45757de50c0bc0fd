package config

import (
	"Recipe-Book-Backend/internal/api/handlers"
	"Recipe-Book-Backend/internal/api/routes"
	"Recipe-Book-Backend/internal/middleware"
	"Recipe-Book-Backend/internal/utils"
	"Recipe-Book-Backend/internal/utils/storage"
	"Recipe-Book-Backend/pkg/category"
	"Recipe-Book-Backend/pkg/food"
	"Recipe-Book-Backend/pkg/jwt"
	"Recipe-Book-Backend/pkg/recipe"
	"Recipe-Book-Backend/pkg/search"
	"Recipe-Book-Backend/pkg/shoppinglist"
	"Recipe-Book-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Berlin",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	shoppingListRepository := shoppinglist.NewShoppingListRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, foodRepository, s3)
	categoryService := category.NewCategoryService(categoryRepository, s3)
	searchService := search.NewSearchService(recipeRepository, search.NewLikeSearcher(db), s3)
	shoppingListService := shoppinglist.NewShoppingListService(shoppingListRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	searchHandler := handlers.NewSearchHandler(searchService)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		RecipeHandler:       recipeHandler,
		CategoryHandler:     categoryHandler,
		FoodHandler:         foodHandler,
		SearchHandler:       searchHandler,
		ShoppingListHandler: shoppingListHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
