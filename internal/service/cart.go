package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/repository"
	apperrors "github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/errors"
)

// MaxItemsPerCart bounds the number of distinct cart lines.
const MaxItemsPerCart = 50

// CartService implements the server-side shopping cart.
type CartService struct {
	repo   repository.CartRepository
	logger *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, logger *slog.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

// GetCart retrieves the cart with the given id. An unknown or expired cart id
// returns an empty cart rather than an error.
func (s *CartService) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	if cartID == "" {
		return nil, apperrors.InvalidInput("Cart id is required")
	}

	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(cartID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// ReplaceCart overwrites the cart's items with the storefront's current
// state. Saving resets the cart TTL.
func (s *CartService) ReplaceCart(ctx context.Context, cartID string, items []domain.CartItem) (*domain.Cart, error) {
	if cartID == "" {
		return nil, apperrors.InvalidInput("Cart id is required")
	}
	if len(items) > MaxItemsPerCart {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Cart must not exceed %d items", MaxItemsPerCart))
	}
	for _, item := range items {
		if item.ProductID == "" {
			return nil, apperrors.InvalidInput("Product id is required for every cart item")
		}
		if item.Qty <= 0 {
			return nil, apperrors.InvalidInput("Quantity must be greater than 0")
		}
	}

	now := time.Now().UTC()
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("get cart for replace: %w", err)
		}
		cart = s.newEmptyCart(cartID)
	}

	cart.Items = items
	cart.UpdatedAt = now

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.logger.DebugContext(ctx, "cart saved",
		slog.String("cart_id", cartID),
		slog.Int("items", len(items)),
	)

	return cart, nil
}

// ClearCart deletes the cart. Clearing a missing cart is not an error.
func (s *CartService) ClearCart(ctx context.Context, cartID string) error {
	if cartID == "" {
		return apperrors.InvalidInput("Cart id is required")
	}

	if err := s.repo.Delete(ctx, cartID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	s.logger.DebugContext(ctx, "cart cleared", slog.String("cart_id", cartID))
	return nil
}

func (s *CartService) newEmptyCart(cartID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		ID:        cartID,
		Items:     []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
