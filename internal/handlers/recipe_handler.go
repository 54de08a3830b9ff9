package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/foodgram-go/backend/internal/apperrors"
	"github.com/foodgram-go/backend/internal/models"
	"github.com/foodgram-go/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// RecipeHandler handles recipe HTTP requests
type RecipeHandler struct {
	recipeRepository       repositories.RecipeRepository
	favoriteRepository     repositories.RelationRepository
	shoppingCartRepository repositories.RelationRepository
	subscriptionRepository repositories.SubscriptionRepository
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(
	recipeRepo repositories.RecipeRepository,
	favoriteRepo repositories.RelationRepository,
	cartRepo repositories.RelationRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) *RecipeHandler {
	return &RecipeHandler{
		recipeRepository:       recipeRepo,
		favoriteRepository:     favoriteRepo,
		shoppingCartRepository: cartRepo,
		subscriptionRepository: subscriptionRepo,
	}
}

// RegisterRecipeRoutes registers recipe CRUD routes
func (h *RecipeHandler) RegisterRecipeRoutes(g *echo.Group) {
	g.GET("/recipes", h.ListRecipes)
	g.POST("/recipes", h.CreateRecipe)
	g.GET("/recipes/:id", h.GetRecipe)
	g.PATCH("/recipes/:id", h.UpdateRecipe)
	g.DELETE("/recipes/:id", h.DeleteRecipe)
}

// recipeWriteHTTPError maps recipe write-path validation failures to HTTP errors
func recipeWriteHTTPError(err error) error {
	switch {
	case errors.Is(err, apperrors.ErrEmptyTagSet),
		errors.Is(err, apperrors.ErrUnknownTag),
		errors.Is(err, apperrors.ErrEmptyIngredientSet),
		errors.Is(err, apperrors.ErrDuplicateIngredient):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case repositories.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, "Ingredient not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// recipeResponse assembles the full read form with the per-user flags
func (h *RecipeHandler) recipeResponse(recipe *models.Recipe, currentUserID uint) (*models.RecipeResponse, error) {
	resp := &models.RecipeResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Text:        recipe.Text,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
		Tags:        recipe.Tags,
		Ingredients: make([]models.RecipeIngredientResponse, 0, len(recipe.Ingredients)),
	}
	if resp.Tags == nil {
		resp.Tags = []models.Tag{}
	}
	for _, row := range recipe.Ingredients {
		resp.Ingredients = append(resp.Ingredients, models.RecipeIngredientResponse{
			ID:              row.IngredientID,
			Name:            row.Ingredient.Name,
			MeasurementUnit: row.Ingredient.MeasurementUnit,
			Amount:          row.Amount,
		})
	}

	isSubscribed := false
	if currentUserID != 0 {
		var err error
		if resp.IsFavorited, err = h.favoriteRepository.Exists(currentUserID, recipe.ID); err != nil {
			return nil, err
		}
		if resp.IsInShoppingCart, err = h.shoppingCartRepository.Exists(currentUserID, recipe.ID); err != nil {
			return nil, err
		}
		if isSubscribed, err = h.subscriptionRepository.IsFollowing(currentUserID, recipe.AuthorID); err != nil {
			return nil, err
		}
	}
	resp.Author = models.UserResponse{
		ID:           recipe.Author.ID,
		Email:        recipe.Author.Email,
		Username:     recipe.Author.Username,
		FirstName:    recipe.Author.FirstName,
		LastName:     recipe.Author.LastName,
		IsSubscribed: isSubscribed,
	}
	return resp, nil
}

// ListRecipes lists recipes filtered by author, tag slugs, favorited and
// shopping cart membership; everything runs as query-layer filters
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	filter := models.RecipeFilter{
		TagSlugs: c.QueryParams()["tags"],
	}
	if author := c.QueryParam("author"); author != "" {
		id, err := strconv.ParseUint(author, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid author ID")
		}
		filter.AuthorID = uint(id)
	}
	if c.QueryParam("is_favorited") == "1" && currentUserID != 0 {
		filter.FavoritedBy = currentUserID
	}
	if c.QueryParam("is_in_shopping_cart") == "1" && currentUserID != 0 {
		filter.InCartOf = currentUserID
	}
	if limit := c.QueryParam("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if offset := c.QueryParam("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil && n > 0 {
			filter.Offset = n
		}
	}

	recipes, err := h.recipeRepository.GetRecipes(filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	responses := make([]models.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		resp, err := h.recipeResponse(&recipes[i], currentUserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		responses = append(responses, *resp)
	}
	return c.JSON(http.StatusOK, responses)
}

// GetRecipe retrieves a single recipe
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}
	recipe, err := h.recipeRepository.GetRecipeByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp, err := h.recipeResponse(recipe, getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateRecipe publishes a recipe after validating its tag and ingredient sets
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	recipe := &models.Recipe{
		AuthorID:    currentUserID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
	}
	if err := h.recipeRepository.CreateRecipe(recipe, req.Ingredients, req.Tags); err != nil {
		return recipeWriteHTTPError(err)
	}

	created, err := h.recipeRepository.GetRecipeByID(recipe.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp, err := h.recipeResponse(created, currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, resp)
}

// UpdateRecipe edits a recipe; tag and ingredient sets present in the payload
// are fully replaced, omitted ones are left untouched. Authors only.
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}
	recipe, err := h.recipeRepository.GetRecipeByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if recipe.AuthorID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the author can edit this recipe")
	}

	var req models.UpdateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Text != nil {
		recipe.Text = *req.Text
	}
	if req.Image != nil {
		recipe.Image = *req.Image
	}
	if req.CookingTime != nil {
		recipe.CookingTime = *req.CookingTime
	}

	if err := h.recipeRepository.UpdateRecipe(recipe, req.Ingredients, req.Tags); err != nil {
		return recipeWriteHTTPError(err)
	}

	updated, err := h.recipeRepository.GetRecipeByID(recipe.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp, err := h.recipeResponse(updated, currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteRecipe removes a recipe. Authors only.
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}
	recipe, err := h.recipeRepository.GetRecipeByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if recipe.AuthorID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the author can delete this recipe")
	}

	if err := h.recipeRepository.DeleteRecipe(recipe.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
