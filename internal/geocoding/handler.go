package geocoding

import (
	"net/http"

	"majestyxpress_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the geocoding endpoint.
type Handler struct {
	resolver *Resolver
}

// NewHandler creates the geocoding handler.
func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// Geocode handles POST /api/v1/geocode.
func (h *Handler) Geocode(c *gin.Context) {
	var req GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "address is required (min 3 chars)", nil)
		return
	}

	location, err := h.resolver.Resolve(c.Request.Context(), req.Address)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, location)
}
