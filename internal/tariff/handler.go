package tariff

import (
	"majestyxpress_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the read-only tariff endpoint.
type Handler struct {
	store Store
}

// NewHandler creates the tariff handler.
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// GetActive handles GET /api/v1/tariffs/active.
func (h *Handler) GetActive(c *gin.Context) {
	cfg, err := h.store.GetActive(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, cfg)
}
