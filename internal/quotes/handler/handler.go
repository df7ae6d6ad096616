// Package handler exposes the quote endpoint.
package handler

import (
	"net/http"

	"majestyxpress_backend/internal/quotes/service"
	"majestyxpress_backend/internal/quotes/transport"
	"majestyxpress_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles quote HTTP requests.
type Handler struct {
	service *service.Service
}

// New creates the quotes handler.
func New(svc *service.Service) *Handler {
	return &Handler{service: svc}
}

// CreateQuote handles POST /api/v1/quotes.
func (h *Handler) CreateQuote(c *gin.Context) {
	var req transport.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "origin and destination are required (min 3 chars)", nil)
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, quote)
}
