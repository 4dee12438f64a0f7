package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_ShortID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"uuid tail", "71b8a3e4-1f2c-4d5e-9a0b-3c4d5e6f7a8b", "6F7A8B"},
		{"already short", "ab12", "AB12"},
		{"exactly six", "abc123", "ABC123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{ID: tt.id}
			assert.Equal(t, tt.want, o.ShortID())
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range ValidStatuses() {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("shipped"))
	assert.False(t, IsValidStatus("Pending"))
	assert.False(t, IsValidStatus(""))
}

func TestOrderItem_DisplayName(t *testing.T) {
	title := "Organic Tomatoes"

	tests := []struct {
		name string
		item OrderItem
		want string
	}{
		{"denormalized title wins", OrderItem{ProductTitle: &title, Name: "tomatoes"}, "Organic Tomatoes"},
		{"client name fallback", OrderItem{Name: "tomatoes"}, "tomatoes"},
		{"nothing left", OrderItem{}, "Product (Deleted)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.DisplayName())
		})
	}
}

func TestOrderItem_LineTotal(t *testing.T) {
	i := OrderItem{Price: 45.5, Qty: 3}
	assert.InDelta(t, 136.5, i.LineTotal(), 0.001)
}
