package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/foodgram-go/backend/internal/handlers"
	"github.com/foodgram-go/backend/internal/middleware"
	"github.com/foodgram-go/backend/internal/models"
	"github.com/foodgram-go/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.IngredientRecipe{},
		&models.Subscription{},
		&models.Favorite{},
		&models.ShoppingCart{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	tagRepo := repositories.NewPostgresTagRepository(pgdb)
	ingredientRepo := repositories.NewPostgresIngredientRepository(pgdb)
	recipeRepo := repositories.NewPostgresRecipeRepository(pgdb)
	favoriteRepo := repositories.NewFavoriteRepository(pgdb)
	cartRepo := repositories.NewShoppingCartRepository(pgdb)
	subscriptionRepo := repositories.NewPostgresSubscriptionRepository(pgdb)
	shoppingListRepo := repositories.NewPostgresShoppingListRepository(pgdb)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// Tag and ingredient catalogs
	tagHandler := handlers.NewTagHandler(tagRepo)
	tagHandler.RegisterTagRoutes(api)
	ingredientHandler := handlers.NewIngredientHandler(ingredientRepo)
	ingredientHandler.RegisterIngredientRoutes(api)
	log.Println("Catalog routes configured.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo, subscriptionRepo)
	userHandler.RegisterUserRoutes(api)
	log.Println("User profile routes configured.")

	// Recipe routes
	recipeHandler := handlers.NewRecipeHandler(recipeRepo, favoriteRepo, cartRepo, subscriptionRepo)
	recipeHandler.RegisterRecipeRoutes(api)
	log.Println("Recipe routes configured.")

	// Favorite routes
	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo, recipeRepo)
	favoriteHandler.RegisterFavoriteRoutes(api)
	log.Println("Favorite routes configured.")

	// Shopping cart routes
	cartHandler := handlers.NewShoppingCartHandler(cartRepo, shoppingListRepo, recipeRepo)
	cartHandler.RegisterShoppingCartRoutes(api)
	log.Println("Shopping cart routes configured.")

	// Subscription routes
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionRepo, userRepo, recipeRepo)
	subscriptionHandler.RegisterSubscriptionRoutes(api)
	log.Println("Subscription routes configured.")

	log.Println("All routes configured.")
}
