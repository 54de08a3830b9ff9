package handlers

import (
	"net/http"
	"strconv"

	"github.com/foodgram-go/backend/internal/models"
	"github.com/foodgram-go/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// SubscriptionHandler handles subscribe/unsubscribe HTTP requests
type SubscriptionHandler struct {
	subscriptionRepository repositories.SubscriptionRepository
	userRepository         repositories.UserRepository
	recipeRepository       repositories.RecipeRepository
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(
	subscriptionRepo repositories.SubscriptionRepository,
	userRepo repositories.UserRepository,
	recipeRepo repositories.RecipeRepository,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionRepository: subscriptionRepo,
		userRepository:         userRepo,
		recipeRepository:       recipeRepo,
	}
}

// RegisterSubscriptionRoutes registers subscription routes
func (h *SubscriptionHandler) RegisterSubscriptionRoutes(g *echo.Group) {
	g.GET("/users/subscriptions", h.ListSubscriptions)
	g.POST("/users/:id/subscribe", h.Subscribe)
	g.DELETE("/users/:id/subscribe", h.Unsubscribe)
}

// subscriptionResponse summarizes one followed author with their recipes
func (h *SubscriptionHandler) subscriptionResponse(author *models.User, recipesLimit int) (*models.SubscriptionResponse, error) {
	count, err := h.recipeRepository.CountByAuthor(author.ID)
	if err != nil {
		return nil, err
	}
	recipes, err := h.recipeRepository.GetRecipesByAuthor(author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	short := make([]models.RecipeShortResponse, 0, len(recipes))
	for _, recipe := range recipes {
		short = append(short, models.RecipeShortResponse{
			ID:          recipe.ID,
			Name:        recipe.Name,
			Image:       recipe.Image,
			CookingTime: recipe.CookingTime,
		})
	}
	return &models.SubscriptionResponse{
		ID:           author.ID,
		Email:        author.Email,
		Username:     author.Username,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		IsSubscribed: true,
		Recipes:      short,
		RecipesCount: count,
	}, nil
}

// Subscribe follows an author
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	authorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	author, err := h.userRepository.GetUserByID(uint(authorID))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Author not found")
	}

	if err := h.subscriptionRepository.Follow(currentUserID, author.ID); err != nil {
		return relationHTTPError(err, "Already subscribed to this author", "Not subscribed to this author")
	}

	resp, err := h.subscriptionResponse(author, 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, resp)
}

// Unsubscribe stops following an author
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	authorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if _, err := h.userRepository.GetUserByID(uint(authorID)); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Author not found")
	}

	if err := h.subscriptionRepository.Unfollow(currentUserID, uint(authorID)); err != nil {
		return relationHTTPError(err, "Already subscribed to this author", "Not subscribed to this author")
	}

	return c.NoContent(http.StatusNoContent)
}

// ListSubscriptions lists the current user's subscriptions ordered by
// subscription id, each with the author's recipes and recipe count.
// limit/offset page the listing; the optional recipes_limit parameter
// caps the nested recipe list per author.
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	pageLimit, pageOffset := 0, 0
	if limit := c.QueryParam("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			pageLimit = n
		}
	}
	if offset := c.QueryParam("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil && n > 0 {
			pageOffset = n
		}
	}
	recipesLimit := 0
	if limit := c.QueryParam("recipes_limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			recipesLimit = n
		}
	}

	subs, err := h.subscriptionRepository.GetSubscriptions(currentUserID, pageLimit, pageOffset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	responses := make([]models.SubscriptionResponse, 0, len(subs))
	for i := range subs {
		resp, err := h.subscriptionResponse(&subs[i].Author, recipesLimit)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		responses = append(responses, *resp)
	}
	return c.JSON(http.StatusOK, responses)
}
