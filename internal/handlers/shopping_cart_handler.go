package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/foodgram-go/backend/internal/models"
	"github.com/foodgram-go/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// shoppingListFilename is the fixed attachment name of the downloaded list
const shoppingListFilename = "List-shop.txt"

// ShoppingCartHandler handles shopping cart and shopping list HTTP requests
type ShoppingCartHandler struct {
	shoppingCartRepository repositories.RelationRepository
	shoppingListRepository repositories.ShoppingListRepository
	recipeRepository       repositories.RecipeRepository
}

// NewShoppingCartHandler creates a new ShoppingCartHandler
func NewShoppingCartHandler(
	cartRepo repositories.RelationRepository,
	listRepo repositories.ShoppingListRepository,
	recipeRepo repositories.RecipeRepository,
) *ShoppingCartHandler {
	return &ShoppingCartHandler{
		shoppingCartRepository: cartRepo,
		shoppingListRepository: listRepo,
		recipeRepository:       recipeRepo,
	}
}

// RegisterShoppingCartRoutes registers shopping cart routes
func (h *ShoppingCartHandler) RegisterShoppingCartRoutes(g *echo.Group) {
	g.GET("/recipes/download_shopping_cart", h.DownloadShoppingList)
	g.POST("/recipes/:id/shopping_cart", h.AddToCart)
	g.DELETE("/recipes/:id/shopping_cart", h.RemoveFromCart)
}

// AddToCart queues a recipe for the current user's shopping list
func (h *ShoppingCartHandler) AddToCart(c echo.Context) error {
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

	if err := h.shoppingCartRepository.Add(currentUserID, recipe.ID); err != nil {
		return relationHTTPError(err, "Recipe is already in the shopping cart", "Recipe is not in the shopping cart")
	}

	return c.JSON(http.StatusCreated, models.RecipeShortResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	})
}

// RemoveFromCart removes a recipe from the current user's shopping cart
func (h *ShoppingCartHandler) RemoveFromCart(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}

	if err := h.shoppingCartRepository.Remove(currentUserID, uint(recipeID)); err != nil {
		return relationHTTPError(err, "Recipe is already in the shopping cart", "Recipe is not in the shopping cart")
	}

	return c.NoContent(http.StatusNoContent)
}

// renderShoppingList renders aggregated items as the downloadable text blob,
// one "<name>(<unit>) - <amount>" line per group
func renderShoppingList(items []models.ShoppingListItem) string {
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "%s(%s) - %d\n", item.Name, item.MeasurementUnit, item.Amount)
	}
	return sb.String()
}

// DownloadShoppingList serves the aggregated shopping list as a text
// attachment. An empty cart yields an empty file, not an error.
func (h *ShoppingCartHandler) DownloadShoppingList(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	items, err := h.shoppingListRepository.Aggregate(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", shoppingListFilename))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(renderShoppingList(items)))
}
