package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foodgram-go/backend/internal/models"
	"github.com/foodgram-go/backend/internal/validators"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv bundles an Echo instance and an isolated in-memory database so
// handlers can be exercised directly without a running server.
type testEnv struct {
	db   *gorm.DB
	echo *echo.Echo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	err = db.AutoMigrate(
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
		t.Fatalf("failed to migrate schema: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	e := echo.New()
	e.Validator = validators.NewValidator()
	return &testEnv{db: db, echo: e}
}

// newContext builds an Echo context around an httptest request. A non-zero
// userID installs JWT claims the way the auth middleware would.
func (env *testEnv) newContext(t *testing.T, method, target, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	if userID != 0 {
		c.Set("user", &models.JwtCustomClaims{UserID: userID})
	}
	return c, rec
}

func assertHTTPError(t *testing.T, err error, wantStatus int) {
	t.Helper()
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTP error with status %d, got %v", wantStatus, err)
	}
	if httpErr.Code != wantStatus {
		t.Fatalf("expected status %d, got %d (%v)", wantStatus, httpErr.Code, httpErr.Message)
	}
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func createRecipe(t *testing.T, db *gorm.DB, authorID uint, name string) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Text:        "test recipe",
		CookingTime: 15,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create recipe %s: %v", name, err)
	}
	return recipe
}

func createIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := db.Create(ingredient).Error; err != nil {
		t.Fatalf("failed to create ingredient %s: %v", name, err)
	}
	return ingredient
}

func createTag(t *testing.T, db *gorm.DB, name, slug string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, Color: "#" + slug, Slug: slug}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("failed to create tag %s: %v", name, err)
	}
	return tag
}

func addIngredientRow(t *testing.T, db *gorm.DB, recipeID, ingredientID uint, amount int) {
	t.Helper()
	row := &models.IngredientRecipe{RecipeID: recipeID, IngredientID: ingredientID, Amount: amount}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create ingredient row: %v", err)
	}
}
