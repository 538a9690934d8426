package httperr

import (
	"errors"
	"net/http"

	"barkeep/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps usecase sentinels onto the HTTP surface. Anything
// unrecognized is a storage or programming failure and surfaces as a bare 500.
func AbortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrSessionNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Session not found", nil)
	case errors.Is(err, errs.ErrSessionExpired):
		AbortWithError(c, http.StatusGone, err, "Session expired", nil)
	case errors.Is(err, errs.ErrIngredientNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Ingredient not found", nil)
	case errors.Is(err, errs.ErrCocktailNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Cocktail not found", nil)
	case errors.Is(err, errs.ErrCocktailUnavailable):
		AbortWithError(c, http.StatusBadRequest, err, "Cocktail is not available", nil)
	case errors.Is(err, errs.ErrOrdersPaused):
		AbortWithError(c, http.StatusServiceUnavailable, err, "Orders are paused", nil)
	case errors.Is(err, errs.ErrOrderNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
	case errors.Is(err, errs.ErrInvalidTransition):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid status transition", nil)
	case errors.Is(err, errs.ErrOrderNotRatable):
		AbortWithError(c, http.StatusBadRequest, err, "Order cannot be rated", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
