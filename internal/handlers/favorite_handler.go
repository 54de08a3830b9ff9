package handlers

import (
	"net/http"
	"strconv"

	"github.com/foodgram-go/backend/internal/models"
	"github.com/foodgram-go/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FavoriteHandler handles favorite HTTP requests
type FavoriteHandler struct {
	favoriteRepository repositories.RelationRepository
	recipeRepository   repositories.RecipeRepository
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favoriteRepo repositories.RelationRepository, recipeRepo repositories.RecipeRepository) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteRepository: favoriteRepo,
		recipeRepository:   recipeRepo,
	}
}

// RegisterFavoriteRoutes registers favorite routes
func (h *FavoriteHandler) RegisterFavoriteRoutes(g *echo.Group) {
	g.POST("/recipes/:id/favorite", h.AddFavorite)
	g.DELETE("/recipes/:id/favorite", h.RemoveFavorite)
}

// AddFavorite marks a recipe as a favorite of the current user
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}

	recipe, err := h.recipeRepository.GetRecipeByID(uint(recipeID))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
	}

	if err := h.favoriteRepository.Add(currentUserID, recipe.ID); err != nil {
		return relationHTTPError(err, "Recipe is already in favorites", "Recipe is not in favorites")
	}

	return c.JSON(http.StatusCreated, models.RecipeShortResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	})
}

// RemoveFavorite removes a recipe from the current user's favorites
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}

	if err := h.favoriteRepository.Remove(currentUserID, uint(recipeID)); err != nil {
		return relationHTTPError(err, "Recipe is already in favorites", "Recipe is not in favorites")
	}

	return c.NoContent(http.StatusNoContent)
}
