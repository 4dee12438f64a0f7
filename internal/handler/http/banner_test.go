package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/repository"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/service"
)

type mockBannerRepository struct {
	mock.Mock
}

func (m *mockBannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	args := m.Called(ctx, banner)
	return args.Error(0)
}

func (m *mockBannerRepository) GetByID(ctx context.Context, id string) (*domain.Banner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Banner), args.Error(1)
}

func (m *mockBannerRepository) List(ctx context.Context, filter repository.BannerFilter) ([]domain.Banner, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Banner), args.Error(1)
}

func (m *mockBannerRepository) Update(ctx context.Context, banner *domain.Banner) error {
	args := m.Called(ctx, banner)
	return args.Error(0)
}

func (m *mockBannerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupBannerRouter(repo *mockBannerRepository) *chi.Mux {
	logger := testLogger()
	handler := NewBannerHandler(service.NewBannerService(repo, logger), logger)

	r := chi.NewRouter()
	r.Route("/api/banners", func(r chi.Router) {
		r.Get("/", handler.ListBanners)
		r.Post("/", handler.CreateBanner)
		r.Put("/{id}", handler.UpdateBanner)
		r.Delete("/{id}", handler.DeleteBanner)
	})
	return r
}

func TestListBanners_PositionFilter(t *testing.T) {
	repo := new(mockBannerRepository)
	router := setupBannerRouter(repo)

	position := domain.BannerPositionHeroSlider
	active := true
	repo.On("List", mock.Anything, repository.BannerFilter{Position: &position, Active: &active}).
		Return([]domain.Banner{
			{ID: "b1", Title: "Fresh Vegetables Daily", Position: position, IsActive: true},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/banners?position=hero_slider&active=true", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestCreateBanner(t *testing.T) {
	repo := new(mockBannerRepository)
	router := setupBannerRouter(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Banner")).Return(nil)

	payload := `{"title":"Festive Sweets Offer","imageUrl":"https://cdn.example.com/sweets.jpg","position":"mid_banner","sortOrder":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/banners", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["isActive"])
}

func TestCreateBanner_InvalidPosition(t *testing.T) {
	repo := new(mockBannerRepository)
	router := setupBannerRouter(repo)

	payload := `{"title":"X","imageUrl":"https://cdn.example.com/x.jpg","position":"footer"}`
	req := httptest.NewRequest(http.MethodPost, "/api/banners", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Create")
}
