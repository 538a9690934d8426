package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Catalog errors
	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrCocktailNotFound    = errors.New("cocktail not found")
	ErrCocktailUnavailable = errors.New("cocktail unavailable")

	// Order errors
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrdersPaused      = errors.New("orders paused")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderNotRatable   = errors.New("order not ratable")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
