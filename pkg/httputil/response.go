package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/errors"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/logger"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/validator"
)

// MessageResponse is the simple `{"message": ...}` body used by the storefront
// API for confirmations and every error case.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status code.
// If encoding fails, headers are already sent so nothing can be done.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes a `{"message": ...}` response with the given status code.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, MessageResponse{Message: message})
}

// WriteError writes a `{"message": ...}` error response based on the error
// type. AppError carries its own status and caller-facing message; sentinel
// errors map to their conventional statuses. Internal errors are logged with
// the request-scoped logger (set by the RequestLogger middleware) when
// available, falling back to the given logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() {
		l = fallback
	}

	status := apperrors.HTTPStatus(err)
	message := "Internal server error"

	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		message = appErr.Message
	case errors.Is(err, apperrors.ErrNotFound):
		message = "Not found"
	case errors.Is(err, apperrors.ErrInvalidInput):
		message = err.Error()
	case errors.Is(err, apperrors.ErrAlreadyExists):
		message = "Already exists"
	}

	if status == http.StatusInternalServerError {
		l.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}

	WriteJSON(w, status, MessageResponse{Message: message})
}

// WriteValidationError writes a 400 `{"message": ...}` response for a request
// validation failure, flattening field errors into a single message.
func WriteValidationError(w http.ResponseWriter, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		WriteMessage(w, http.StatusBadRequest, valErr.Error())
		return
	}
	WriteMessage(w, http.StatusBadRequest, err.Error())
}

// Pagination is the metadata block attached to paginated list responses.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// ListResponse is the `{data, pagination}` envelope for paginated lists.
type ListResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewListResponse constructs a ListResponse from the given data, total count,
// page, and limit values. It computes TotalPages and the has-next/has-prev flags.
func NewListResponse[T any](data []T, total, page, limit int) ListResponse[T] {
	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{
		Data: data,
		Pagination: Pagination{
			Page:        page,
			Limit:       limit,
			Total:       total,
			TotalPages:  totalPages,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
	}
}
