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
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/slug"
)

// ProductService implements catalog management.
type ProductService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// CreateProductInput holds the parameters for creating a catalog product.
type CreateProductInput struct {
	Title          string                 `json:"title"`
	Slug           string                 `json:"slug"`
	Description    string                 `json:"description"`
	Price          float64                `json:"price"`
	MRP            float64                `json:"mrp"`
	Stock          int                    `json:"stock"`
	Weight         string                 `json:"weight"`
	WeightVariants []domain.WeightVariant `json:"weightVariants"`
	Images         []string               `json:"images"`
	Categories     []string               `json:"categories"`
}

// CreateProduct adds a product to the catalog, slugifying the title when no
// slug is supplied.
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if input.Title == "" {
		return nil, apperrors.InvalidInput("Title is required")
	}
	if input.Price <= 0 && len(input.WeightVariants) == 0 {
		return nil, apperrors.InvalidInput("Price is required")
	}

	productSlug := input.Slug
	if productSlug == "" {
		productSlug = slug.Generate(input.Title)
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:             uuid.New().String(),
		Title:          input.Title,
		Slug:           productSlug,
		Description:    input.Description,
		Price:          input.Price,
		MRP:            input.MRP,
		Stock:          input.Stock,
		Weight:         input.Weight,
		WeightVariants: input.WeightVariants,
		Images:         input.Images,
		Categories:     input.Categories,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("slug", product.Slug),
	)

	return product, nil
}

// GetProduct retrieves a product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return product, nil
}

// GetProductBySlug retrieves a product by its storefront slug.
func (s *ProductService) GetProductBySlug(ctx context.Context, productSlug string) (*domain.Product, error) {
	product, err := s.repo.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return product, nil
}

// ListProducts returns a filtered, paginated catalog page.
func (s *ProductService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

// UpdateProduct replaces a product's editable fields.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input CreateProductInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product for update: %w", err)
	}

	if input.Title != "" {
		product.Title = input.Title
	}
	if input.Slug != "" {
		product.Slug = input.Slug
	}
	product.Description = input.Description
	product.Price = input.Price
	product.MRP = input.MRP
	product.Stock = input.Stock
	product.Weight = input.Weight
	product.WeightVariants = input.WeightVariants
	product.Images = input.Images
	product.Categories = input.Categories
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.logger.InfoContext(ctx, "product updated", slog.String("product_id", id))
	return product, nil
}

// DeleteProduct removes a product from the catalog. Existing orders keep
// their denormalized snapshots.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.logger.InfoContext(ctx, "product deleted", slog.String("product_id", id))
	return nil
}
