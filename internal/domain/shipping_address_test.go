package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingAddress_Accessors(t *testing.T) {
	addr := ShippingAddress{
		"name":    "Priya",
		"email":   "priya@example.com",
		"phone":   "9876543210",
		"address": "12 Gandhi Street",
		"city":    "Chennai",
		"state":   "TN",
		"pin":     "600001",
	}

	assert.Equal(t, "Priya", addr.Name())
	assert.Equal(t, "priya@example.com", addr.Email())
	assert.Equal(t, "9876543210", addr.Phone())
	assert.Equal(t, "12 Gandhi Street", addr.Address())
	assert.Equal(t, "Chennai", addr.City())
	assert.Equal(t, "TN", addr.State())
	assert.Equal(t, "600001", addr.Pin())
}

func TestShippingAddress_FallbackKeys(t *testing.T) {
	addr := ShippingAddress{
		"firstName":    "Arun",
		"emailAddress": "arun@example.com",
	}

	assert.Equal(t, "Arun", addr.Name())
	assert.Equal(t, "arun@example.com", addr.Email())
}

func TestShippingAddress_PrimaryKeyWinsOverFallback(t *testing.T) {
	addr := ShippingAddress{
		"name":      "Priya",
		"firstName": "P",
	}

	assert.Equal(t, "Priya", addr.Name())
}

func TestShippingAddress_MissingAndNonString(t *testing.T) {
	addr := ShippingAddress{
		"pin": 600001, // sent as a number by an old client
	}

	assert.Equal(t, "", addr.Name())
	assert.Equal(t, "", addr.Email())
	assert.Equal(t, "", addr.Pin())
}
