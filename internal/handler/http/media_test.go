package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/service"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/storage/memory"
)

func setupMediaRouter(t *testing.T) *chi.Mux {
	t.Helper()

	logger := testLogger()
	handler := NewMediaHandler(service.NewMediaService(memory.New("http://localhost:8080"), logger), logger)

	r := chi.NewRouter()
	r.Post("/api/upload", handler.Upload)
	return r
}

func multipartFileRequest(t *testing.T, field, filename, contentType string, data io.Reader) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = io.Copy(part, data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUpload(t *testing.T) {
	router := setupMediaRouter(t)

	req := multipartFileRequest(t, "file", "cucumber.jpg", "image/jpeg", strings.NewReader("jpeg bytes"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	url := body["url"].(string)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestUpload_WrongField(t *testing.T) {
	router := setupMediaRouter(t)

	req := multipartFileRequest(t, "image", "cucumber.jpg", "image/jpeg", strings.NewReader("jpeg bytes"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "File is required", body["message"])
}

func TestUpload_DisallowedType(t *testing.T) {
	router := setupMediaRouter(t)

	req := multipartFileRequest(t, "file", "report.pdf", "application/pdf", strings.NewReader("%PDF-"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
