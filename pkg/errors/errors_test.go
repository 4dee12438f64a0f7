package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("product", "abc-123")

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "product not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.True(t, stderrors.Is(err, ErrNotFound))
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("Items are required")

	assert.Equal(t, "Items are required", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.True(t, stderrors.Is(err, ErrInvalidInput))
}

func TestInternal_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("pq: connection refused")
	err := Internal("Error creating order", cause)

	assert.Equal(t, "Error creating order", err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error carries own status", Forbidden("admin only"), http.StatusForbidden},
		{"wrapped not found sentinel", fmt.Errorf("get order: %w", ErrNotFound), http.StatusNotFound},
		{"wrapped invalid input", fmt.Errorf("parse body: %w", ErrInvalidInput), http.StatusBadRequest},
		{"already exists", ErrAlreadyExists, http.StatusConflict},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"service unavailable", ErrServiceUnavail, http.StatusServiceUnavailable},
		{"unknown error defaults to 500", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrNotFound, "fetch banner")

	assert.True(t, stderrors.Is(err, ErrNotFound))
	assert.Equal(t, "fetch banner: resource not found", err.Error())
}
