package routes

import (
	"Recipe-Book-Backend/internal/api/handlers"
	"Recipe-Book-Backend/internal/middleware"
	"Recipe-Book-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	RecipeHandler       handlers.RecipeHandler
	CategoryHandler     handlers.CategoryHandler
	FoodHandler         handlers.FoodHandler
	SearchHandler       handlers.SearchHandler
	ShoppingListHandler handlers.ShoppingListHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Categories()
	c.Search()
	c.ShoppingLists()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	// reads work anonymously, the visibility filter decides what shows up
	recipes.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipes)
	recipes.Get("/user/:username", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipesForUser)
	recipes.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeDetail)

	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/images", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories")

	categories.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.CategoryHandler.GetOverview)
	categories.Get("/:title", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.CategoryHandler.GetCategoryRecipes)
	categories.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.CategoryHandler.CreateCategory)
}

func (c *Config) Search() {
	c.App.Get("/api/v1/search", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.SearchHandler.Search)
	// foods feed the search form's include/exclude pickers
	c.App.Get("/api/v1/foods", c.FoodHandler.GetFoods)
}

func (c *Config) ShoppingLists() {
	lists := c.App.Group("/api/v1/shopping-lists", c.Middleware.AuthMiddleware(c.JWTService))

	lists.Get("", c.ShoppingListHandler.GetLists)
	lists.Post("", c.ShoppingListHandler.CreateList)
	lists.Get("/:id", c.ShoppingListHandler.GetList)
	lists.Delete("/:id", c.ShoppingListHandler.DeleteList)
	lists.Post("/:id/recipes", c.ShoppingListHandler.AddRecipeIngredients)
	lists.Patch("/:id/items/:itemID", c.ShoppingListHandler.UpdateItem)
	lists.Delete("/:id/items/:itemID", c.ShoppingListHandler.DeleteItem)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
