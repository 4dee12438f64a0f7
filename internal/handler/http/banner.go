package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/repository"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/service"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/httputil"
)

// BannerHandler handles HTTP requests for banner endpoints.
type BannerHandler struct {
	service *service.BannerService
	logger  *slog.Logger
}

// NewBannerHandler creates a new banner HTTP handler.
func NewBannerHandler(svc *service.BannerService, logger *slog.Logger) *BannerHandler {
	return &BannerHandler{service: svc, logger: logger}
}

// ListBanners handles GET /api/banners
func (h *BannerHandler) ListBanners(w http.ResponseWriter, r *http.Request) {
	var filter repository.BannerFilter
	if v := r.URL.Query().Get("position"); v != "" {
		filter.Position = &v
	}
	if v := r.URL.Query().Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			httputil.WriteMessage(w, http.StatusBadRequest, "Invalid active filter")
			return
		}
		filter.Active = &active
	}

	banners, err := h.service.ListBanners(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, banners)
}

// CreateBanner handles POST /api/banners
func (h *BannerHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req service.BannerInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	banner, err := h.service.CreateBanner(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, banner)
}

// UpdateBanner handles PUT /api/banners/{id}
func (h *BannerHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req service.BannerInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	banner, err := h.service.UpdateBanner(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, banner)
}

// DeleteBanner handles DELETE /api/banners/{id}
func (h *BannerHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBanner(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Banner deleted successfully")
}
