package http

import (
	"log/slog"
	"net/http"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/service"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/httputil"
)

// MediaHandler handles image uploads from the admin panel.
type MediaHandler struct {
	service *service.MediaService
	logger  *slog.Logger
}

// NewMediaHandler creates a new media HTTP handler.
func NewMediaHandler(svc *service.MediaService, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{service: svc, logger: logger}
}

// UploadResponse is the body returned for a stored upload.
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/upload. The image is sent as the multipart form
// field "file".
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadSize+1<<20)

	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	result, err := h.service.UploadImage(r.Context(), &service.UploadImageInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        file,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, UploadResponse{URL: result.URL})
}
