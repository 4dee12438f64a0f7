package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/repository"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/service"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/httputil"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/pagination"
)

// BlogHandler handles HTTP requests for blog endpoints.
type BlogHandler struct {
	service *service.BlogService
	logger  *slog.Logger
}

// NewBlogHandler creates a new blog HTTP handler.
func NewBlogHandler(svc *service.BlogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{service: svc, logger: logger}
}

// ListPosts handles GET /api/blog. The storefront sees published posts only.
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	filter := repository.PostFilter{
		PublishedOnly: true,
		Page:          params.Page,
		Limit:         params.Limit,
	}
	if v := r.URL.Query().Get("tag"); v != "" {
		filter.Tag = &v
	}

	posts, total, err := h.service.ListPosts(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.NewListResponse(posts, total, params.Page, params.Limit))
}

// GetPost handles GET /api/blog/{slug}
func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetPost(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}

// CreatePost handles POST /api/blog
func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req service.PostInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, post)
}

// UpdatePost handles PATCH /api/blog/{slug}
func (h *BlogHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req service.PostInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.service.UpdatePost(r.Context(), chi.URLParam(r, "slug"), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}

// DeletePost handles DELETE /api/blog/{slug}
func (h *BlogHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePost(r.Context(), chi.URLParam(r, "slug")); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Post deleted successfully")
}
