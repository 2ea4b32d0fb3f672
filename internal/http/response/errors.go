package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/platewise-backend/internal/platform/apierr"
	"github.com/platewise/platewise-backend/internal/services"
)

// RespondServiceError maps the three service failure kinds onto transport
// status codes: missing recipe is the client's problem, a generator failure
// is a bad upstream, and a failed write is ours.
func RespondServiceError(c *gin.Context, err error) {
	ae := classify(err)
	RespondError(c, ae.Status, ae.Code, ae.Err)
}

func classify(err error) *apierr.Error {
	var genErr *services.GenerationError
	var persistErr *services.PersistenceError
	switch {
	case errors.Is(err, services.ErrRecipeNotFound):
		return apierr.New(http.StatusNotFound, "recipe_not_found", err)
	case errors.As(err, &genErr):
		return apierr.New(http.StatusBadGateway, "generation_failed", err)
	case errors.As(err, &persistErr):
		return apierr.New(http.StatusInternalServerError, "persistence_failed", err)
	default:
		return apierr.New(http.StatusInternalServerError, "internal_error", err)
	}
}
