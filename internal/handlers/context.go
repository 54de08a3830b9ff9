package handlers

import (
	"errors"
	"net/http"

	"github.com/foodgram-go/backend/internal/apperrors"
	"github.com/foodgram-go/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext extracts the authenticated user's ID from the JWT
// claims stored by the auth middleware. Returns 0 when unauthenticated.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// relationHTTPError maps relation store failures to HTTP errors. A storage
// constraint violation means a concurrent add won the race, so it surfaces
// exactly like an application-level duplicate.
func relationHTTPError(err error, duplicateMsg, missingMsg string) error {
	switch {
	case errors.Is(err, apperrors.ErrAlreadyExists), errors.Is(err, apperrors.ErrConstraintViolation):
		return echo.NewHTTPError(http.StatusConflict, duplicateMsg)
	case errors.Is(err, apperrors.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, missingMsg)
	case errors.Is(err, apperrors.ErrSelfFollow):
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot subscribe to yourself")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
