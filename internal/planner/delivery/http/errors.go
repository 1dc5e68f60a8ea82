package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"globetrek/internal/planner"
	"globetrek/pkg/response"
)

// respondError translates domain errors into the HTTP envelope. Validation
// failures are client errors, missing credentials are 503, everything else
// is an opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrMissingDestination),
		errors.Is(err, planner.ErrMissingDates),
		errors.Is(err, planner.ErrEmptyMessage),
		errors.Is(err, planner.ErrNoPlanToExport):
		response.Error(c, err, nil)
	case errors.Is(err, planner.ErrPlannerUnavailable),
		errors.Is(err, planner.ErrChatUnavailable):
		response.ServiceUnavailable(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
