package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/repository"
	apperrors "github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/errors"
)

func TestCreateProduct_SlugGenerated(t *testing.T) {
	repo := new(mockProductRepository)
	svc := NewProductService(repo, newTestLogger())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(nil).Once()

	product, err := svc.CreateProduct(ctx, CreateProductInput{
		Title: "Cold Pressed Groundnut Oil (1L)",
		Price: 320,
		WeightVariants: []domain.WeightVariant{
			{Weight: "1 L", Price: 320, MRP: 350, Stock: 12},
		},
		Categories: []string{"oils-ghee"},
	})
	require.NoError(t, err)

	assert.Equal(t, "cold-pressed-groundnut-oil-1l", product.Slug)
	assert.NotEmpty(t, product.ID)
	repo.AssertExpectations(t)
}

func TestCreateProduct_ExplicitSlugKept(t *testing.T) {
	repo := new(mockProductRepository)
	svc := NewProductService(repo, newTestLogger())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(nil).Once()

	product, err := svc.CreateProduct(ctx, CreateProductInput{
		Title: "Farm Eggs",
		Slug:  "farm-fresh-eggs",
		Price: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, "farm-fresh-eggs", product.Slug)
}

func TestCreateProduct_Validation(t *testing.T) {
	repo := new(mockProductRepository)
	svc := NewProductService(repo, newTestLogger())

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{Price: 40})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.CreateProduct(context.Background(), CreateProductInput{Title: "Country Cucumber"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	repo.AssertNotCalled(t, "Create")
}

func TestCreateProduct_VariantsOnlyPricing(t *testing.T) {
	repo := new(mockProductRepository)
	svc := NewProductService(repo, newTestLogger())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(nil).Once()

	// No base price; variant pricing carries the product.
	product, err := svc.CreateProduct(ctx, CreateProductInput{
		Title: "Organic Jaggery Powder",
		WeightVariants: []domain.WeightVariant{
			{Weight: "250 g", Price: 60, Stock: 20},
			{Weight: "500 g", Price: 110, Stock: 15},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 60.0, product.EffectivePrice(0))
}

func TestUpdateProduct_NotFound(t *testing.T) {
	repo := new(mockProductRepository)
	svc := NewProductService(repo, newTestLogger())
	ctx := context.Background()

	repo.On("GetByID", ctx, "missing").Return(nil, apperrors.NotFound("Product", "missing")).Once()

	_, err := svc.UpdateProduct(ctx, "missing", CreateProductInput{Title: "X"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListProducts_PassesFilter(t *testing.T) {
	repo := new(mockProductRepository)
	svc := NewProductService(repo, newTestLogger())
	ctx := context.Background()

	category := "fruits-vegetables"
	filter := repository.ProductFilter{Category: &category, Page: 2, Limit: 10}
	repo.On("List", ctx, filter).Return([]domain.Product{{ID: "p1"}}, 11, nil).Once()

	products, total, err := svc.ListProducts(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 11, total)
}
