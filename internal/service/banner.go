package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/repository"
	apperrors "github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/errors"
)

// BannerService manages storefront promotional banners.
type BannerService struct {
	repo   repository.BannerRepository
	logger *slog.Logger
}

// NewBannerService creates a new banner service.
func NewBannerService(repo repository.BannerRepository, logger *slog.Logger) *BannerService {
	return &BannerService{repo: repo, logger: logger}
}

// BannerInput holds the parameters for creating or updating a banner.
type BannerInput struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `json:"imageUrl"`
	LinkURL   string `json:"linkUrl"`
	Position  string `json:"position"`
	SortOrder int    `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

// CreateBanner adds a banner. New banners are active unless the payload says
// otherwise.
func (s *BannerService) CreateBanner(ctx context.Context, input BannerInput) (*domain.Banner, error) {
	if input.Title == "" {
		return nil, apperrors.InvalidInput("Title is required")
	}
	if input.ImageURL == "" {
		return nil, apperrors.InvalidInput("Image is required")
	}
	if !domain.IsValidBannerPosition(input.Position) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid banner position %q", input.Position))
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	now := time.Now().UTC()
	banner := &domain.Banner{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Subtitle:  input.Subtitle,
		ImageURL:  input.ImageURL,
		LinkURL:   input.LinkURL,
		Position:  input.Position,
		SortOrder: input.SortOrder,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}

	s.logger.InfoContext(ctx, "banner created",
		slog.String("banner_id", banner.ID),
		slog.String("position", banner.Position),
	)

	return banner, nil
}

// ListBanners returns banners in display order, optionally filtered by
// position and active state.
func (s *BannerService) ListBanners(ctx context.Context, filter repository.BannerFilter) ([]domain.Banner, error) {
	banners, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	return banners, nil
}

// UpdateBanner replaces a banner's editable fields.
func (s *BannerService) UpdateBanner(ctx context.Context, id string, input BannerInput) (*domain.Banner, error) {
	banner, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get banner for update: %w", err)
	}

	if input.Position != "" && !domain.IsValidBannerPosition(input.Position) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid banner position %q", input.Position))
	}

	if input.Title != "" {
		banner.Title = input.Title
	}
	banner.Subtitle = input.Subtitle
	if input.ImageURL != "" {
		banner.ImageURL = input.ImageURL
	}
	banner.LinkURL = input.LinkURL
	if input.Position != "" {
		banner.Position = input.Position
	}
	banner.SortOrder = input.SortOrder
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	banner.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, banner); err != nil {
		return nil, fmt.Errorf("update banner: %w", err)
	}

	s.logger.InfoContext(ctx, "banner updated", slog.String("banner_id", id))
	return banner, nil
}

// DeleteBanner removes a banner.
func (s *BannerService) DeleteBanner(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}

	s.logger.InfoContext(ctx, "banner deleted", slog.String("banner_id", id))
	return nil
}
