package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/storage"
	apperrors "github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/errors"
)

// MaxUploadSize is the largest accepted upload, 5 MiB.
const MaxUploadSize = 5 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// MediaService uploads storefront images (product shots, banners, blog
// covers) to the configured storage backend.
type MediaService struct {
	storage storage.Storage
	logger  *slog.Logger
}

// NewMediaService creates a new media service.
func NewMediaService(store storage.Storage, logger *slog.Logger) *MediaService {
	return &MediaService{storage: store, logger: logger}
}

// UploadImageInput holds the parameters for an image upload.
type UploadImageInput struct {
	FileName    string
	ContentType string
	Size        int64
	Data        io.Reader
}

// UploadImage validates and stores an uploaded image, returning its public
// URL.
func (s *MediaService) UploadImage(ctx context.Context, input *UploadImageInput) (*storage.UploadResult, error) {
	if input.FileName == "" {
		return nil, apperrors.InvalidInput("File is required")
	}
	if input.Size <= 0 {
		return nil, apperrors.InvalidInput("File is empty")
	}
	if input.Size > MaxUploadSize {
		return nil, apperrors.InvalidInput(fmt.Sprintf("File exceeds the %d MB upload limit", MaxUploadSize>>20))
	}

	ext, ok := allowedImageTypes[strings.ToLower(input.ContentType)]
	if !ok {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Unsupported file type %q", input.ContentType))
	}
	if e := strings.ToLower(path.Ext(input.FileName)); e != "" {
		ext = e
	}

	key := fmt.Sprintf("%s/%s%s", time.Now().UTC().Format("2006/01"), uuid.New().String(), ext)

	result, err := s.storage.Upload(ctx, &storage.UploadInput{
		Key:         key,
		ContentType: input.ContentType,
		Size:        input.Size,
		Data:        input.Data,
	})
	if err != nil {
		return nil, apperrors.Internal("Error uploading file", err)
	}

	s.logger.InfoContext(ctx, "image uploaded",
		slog.String("key", result.Key),
		slog.Int64("size", input.Size),
	)

	return result, nil
}
