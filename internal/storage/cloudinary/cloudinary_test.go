package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/storage"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/httpclient"
)

func newTestStorage(t *testing.T, serverURL string) *Storage {
	t.Helper()

	cfg := httpclient.DefaultConfig()
	cfg.MaxRetries = 0

	s := New(Config{
		CloudName: "demo",
		APIKey:    "key123",
		APISecret: "secret456",
		Folder:    "mangaiyar",
	}, httpclient.New(cfg))
	s.apiBase = serverURL
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	return s
}

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/demo/image/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "key123", r.FormValue("api_key"))
		assert.Equal(t, "mangaiyar", r.FormValue("folder"))
		assert.Equal(t, "1700000000", r.FormValue("timestamp"))

		sum := sha1.Sum([]byte("folder=mangaiyar&timestamp=1700000000secret456"))
		assert.Equal(t, hex.EncodeToString(sum[:]), r.FormValue("signature"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "products/jaggery.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"public_id":"mangaiyar/abc123","secure_url":"https://res.cloudinary.com/demo/image/upload/mangaiyar/abc123.jpg"}`))
	}))
	defer server.Close()

	s := newTestStorage(t, server.URL)

	result, err := s.Upload(context.Background(), &storage.UploadInput{
		Key:         "products/jaggery.jpg",
		ContentType: "image/jpeg",
		Data:        strings.NewReader("jpeg bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, "mangaiyar/abc123", result.Key)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/mangaiyar/abc123.jpg", result.URL)
}

func TestUploadAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid Signature"}}`))
	}))
	defer server.Close()

	s := newTestStorage(t, server.URL)

	_, err := s.Upload(context.Background(), &storage.UploadInput{
		Key:  "products/jaggery.jpg",
		Data: strings.NewReader("jpeg bytes"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Signature")
}

func TestDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/image/destroy", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "mangaiyar/abc123", r.FormValue("public_id"))
		assert.Equal(t, "key123", r.FormValue("api_key"))

		sum := sha1.Sum([]byte("public_id=mangaiyar/abc123&timestamp=1700000000secret456"))
		assert.Equal(t, hex.EncodeToString(sum[:]), r.FormValue("signature"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	s := newTestStorage(t, server.URL)

	require.NoError(t, s.Delete(context.Background(), "mangaiyar/abc123"))
}
