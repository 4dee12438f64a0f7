package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/service"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/httputil"
)

// CartHandler handles HTTP requests for the server-side cart.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{service: svc, logger: logger}
}

// ReplaceCartRequest is the JSON request body for saving the cart.
type ReplaceCartRequest struct {
	Items []domain.CartItem `json:"items"`
}

// GetCart handles GET /api/cart/{id}
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.GetCart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, cart)
}

// ReplaceCart handles PUT /api/cart/{id}
func (h *CartHandler) ReplaceCart(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req ReplaceCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.service.ReplaceCart(r.Context(), chi.URLParam(r, "id"), req.Items)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, cart)
}

// ClearCart handles DELETE /api/cart/{id}
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearCart(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Cart cleared")
}
