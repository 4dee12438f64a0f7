package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/products", nil)

	p := FromRequest(req)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestFromRequest_ExplicitValues(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/products?page=3&limit=25", nil)

	p := FromRequest(req)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 50, p.Offset)
}

func TestFromRequest_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"non-numeric page", "page=abc&limit=5", 1, 5},
		{"zero page", "page=0", 1, DefaultLimit},
		{"negative page", "page=-2", 1, DefaultLimit},
		{"zero limit", "limit=0", 1, DefaultLimit},
		{"limit over cap", "limit=5000", 1, DefaultLimit},
		{"limit at cap", "limit=100", 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/orders?"+tt.query, nil)
			p := FromRequest(req)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}
