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

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/repository"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/service"
)

type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockContactRepository) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *mockContactRepository) List(ctx context.Context, filter repository.ContactFilter) ([]domain.ContactMessage, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.ContactMessage), args.Int(1), args.Error(2)
}

func (m *mockContactRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockContactRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupContactRouter(repo *mockContactRepository) *chi.Mux {
	logger := testLogger()
	handler := NewContactHandler(service.NewContactService(repo, logger), logger)

	r := chi.NewRouter()
	r.Post("/api/contact", handler.SubmitMessage)
	r.Route("/api/admin/contacts", func(r chi.Router) {
		r.Get("/", handler.ListMessages)
		r.Patch("/{id}", handler.UpdateMessageStatus)
		r.Delete("/{id}", handler.DeleteMessage)
	})
	return r
}

func TestSubmitContact(t *testing.T) {
	repo := new(mockContactRepository)
	router := setupContactRouter(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ContactMessage")).Return(nil)

	payload := `{"name":"Priya","email":"priya@example.com","subject":"Delivery areas","message":"Do you deliver to Tambaram?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Message sent successfully", body["message"])
}

func TestSubmitContact_Invalid(t *testing.T) {
	repo := new(mockContactRepository)
	router := setupContactRouter(repo)

	tests := []struct {
		payload string
		message string
	}{
		{`{"name":"Priya","subject":"s","message":"m"}`, "All fields are required"},
		{`{"name":"Priya","email":"not-an-email","subject":"s","message":"m"}`, "Invalid email format"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(tt.payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, tt.message, body["message"])
	}

	repo.AssertNotCalled(t, "Create")
}

func TestListContacts_AllStatusBypassesFilter(t *testing.T) {
	repo := new(mockContactRepository)
	router := setupContactRouter(repo)

	// "all" means no status filter, matching the admin inbox dropdown.
	repo.On("List", mock.Anything, repository.ContactFilter{Page: 1, Limit: 10}).
		Return([]domain.ContactMessage{}, 0, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts?status=all", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestUpdateContactStatus(t *testing.T) {
	repo := new(mockContactRepository)
	router := setupContactRouter(repo)

	repo.On("UpdateStatus", mock.Anything, "msg-1", "read").Return(nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/contacts/msg-1", bytes.NewBufferString(`{"status":"read"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Status updated", body["message"])
}

func TestDeleteContact(t *testing.T) {
	repo := new(mockContactRepository)
	router := setupContactRouter(repo)

	repo.On("Delete", mock.Anything, "msg-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/contacts/msg-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Contact deleted", body["message"])
}
