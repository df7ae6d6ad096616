package routing

import (
	"net/http"

	"majestyxpress_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the route estimation endpoint.
type Handler struct {
	estimator *Estimator
}

// NewHandler creates the routing handler.
func NewHandler(estimator *Estimator) *Handler {
	return &Handler{estimator: estimator}
}

// EstimateRoute handles POST /api/v1/routes.
func (h *Handler) EstimateRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "origin and destination are required (min 3 chars)", nil)
		return
	}

	estimate, err := h.estimator.Estimate(c.Request.Context(), req.Origin, req.Destination, req.Mode)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, estimate)
}
