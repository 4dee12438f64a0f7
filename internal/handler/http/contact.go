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

// ContactHandler handles HTTP requests for the contact form and its admin
// inbox.
type ContactHandler struct {
	service *service.ContactService
	logger  *slog.Logger
}

// NewContactHandler creates a new contact HTTP handler.
func NewContactHandler(svc *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{service: svc, logger: logger}
}

// ContactStatusRequest is the JSON request body for updating message status.
type ContactStatusRequest struct {
	Status string `json:"status"`
}

// SubmitMessage handles POST /api/contact
func (h *ContactHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req service.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.service.SubmitMessage(r.Context(), req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteMessage(w, http.StatusCreated, "Message sent successfully")
}

// ListMessages handles GET /api/admin/contacts
func (h *ContactHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	filter := repository.ContactFilter{
		Page:  params.Page,
		Limit: params.Limit,
	}
	if v := r.URL.Query().Get("status"); v != "" && v != "all" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("search"); v != "" {
		filter.Search = &v
	}

	messages, total, err := h.service.ListMessages(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.NewListResponse(messages, total, params.Page, params.Limit))
}

// UpdateMessageStatus handles PATCH /api/admin/contacts/{id}
func (h *ContactHandler) UpdateMessageStatus(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req ContactStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateMessageStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Status updated")
}

// DeleteMessage handles DELETE /api/admin/contacts/{id}
func (h *ContactHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMessage(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Contact deleted")
}
