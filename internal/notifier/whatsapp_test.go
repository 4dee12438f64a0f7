package notifier

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/httpclient"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGatewayClient(t *testing.T) *httpclient.CircuitBreakerClient {
	t.Helper()
	cfg := httpclient.DefaultConfig()
	cfg.MaxRetries = 0
	cfg.Timeout = 5 * time.Second
	return httpclient.NewCircuitBreakerClient(
		httpclient.New(cfg),
		httpclient.DefaultCircuitBreakerConfig("whatsapp-test-"+t.Name()),
		testLogger(),
	)
}

func testOrder() *domain.Order {
	title := "Cucumber"
	return &domain.Order{
		ID: "order-abc123",
		ShippingAddress: domain.ShippingAddress{
			"name":    "Priya",
			"phone":   "98765 43210",
			"address": "12 Gandhi Street",
			"city":    "Chennai",
			"pin":     "600001",
		},
		Total:         285,
		PaymentMethod: "cod",
		Status:        domain.OrderStatusPending,
		Items: []domain.OrderItem{
			{ProductTitle: &title, Qty: 2, Price: 15},
			{Name: "Eggs", Qty: 3, Price: 85},
		},
	}
}

func TestWhatsAppNotifier_SendsAdminMessage(t *testing.T) {
	var requests []url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "secret", pass)
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		requests = append(requests, r.PostForm)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM123"}`))
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier(WhatsAppConfig{
		AccountSID:  "AC123",
		AuthToken:   "secret",
		FromNumber:  "+14155238886",
		AdminNumber: "9000090000",
	}, newGatewayClient(t), testLogger())
	n.apiBase = srv.URL

	err := n.Notify(context.Background(), testOrder())
	require.NoError(t, err)

	require.Len(t, requests, 1)
	form := requests[0]
	assert.Equal(t, "whatsapp:+14155238886", form.Get("From"))
	assert.Equal(t, "whatsapp:+919000090000", form.Get("To"))
	body := form.Get("Body")
	assert.Contains(t, body, "New Order Received")
	assert.Contains(t, body, "#ABC123")
	assert.Contains(t, body, "Priya")
	assert.Contains(t, body, "1. Cucumber - Qty: 2 @ ₹15")
	assert.Contains(t, body, "2. Eggs - Qty: 3 @ ₹85")
	assert.Contains(t, body, "₹285")
	assert.Contains(t, body, "Chennai - 600001")
}

func TestWhatsAppNotifier_CustomerMessageOnlyWhenEnabled(t *testing.T) {
	var bodies []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		bodies = append(bodies, r.PostForm.Get("To"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	cfg := WhatsAppConfig{
		AccountSID:     "AC123",
		AuthToken:      "secret",
		FromNumber:     "+14155238886",
		AdminNumber:    "9000090000",
		SendToCustomer: true,
	}

	n := NewWhatsAppNotifier(cfg, newGatewayClient(t), testLogger())
	n.apiBase = srv.URL

	require.NoError(t, n.Notify(context.Background(), testOrder()))
	assert.Equal(t, []string{"whatsapp:+919000090000", "whatsapp:+919876543210"}, bodies)

	// Flag off: only the admin message goes out.
	bodies = nil
	cfg.SendToCustomer = false
	n = NewWhatsAppNotifier(cfg, newGatewayClient(t), testLogger())
	n.apiBase = srv.URL

	require.NoError(t, n.Notify(context.Background(), testOrder()))
	assert.Equal(t, []string{"whatsapp:+919000090000"}, bodies)
}

func TestWhatsAppNotifier_SkipsWithoutNumbers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier(WhatsAppConfig{
		AccountSID: "AC123",
		AuthToken:  "secret",
		FromNumber: "+14155238886",
	}, newGatewayClient(t), testLogger())
	n.apiBase = srv.URL

	order := testOrder()
	delete(order.ShippingAddress, "phone")

	assert.ErrorIs(t, n.Notify(context.Background(), order), ErrSkipped)
}

func TestWhatsAppNotifier_SkipsWithoutCredentials(t *testing.T) {
	n := NewWhatsAppNotifier(WhatsAppConfig{
		AdminNumber: "9000090000",
	}, newGatewayClient(t), testLogger())

	assert.ErrorIs(t, n.Notify(context.Background(), testOrder()), ErrSkipped)
}

func TestWhatsAppNotifier_GatewayErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Authenticate"}`))
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier(WhatsAppConfig{
		AccountSID:  "AC123",
		AuthToken:   "bad",
		FromNumber:  "+14155238886",
		AdminNumber: "9000090000",
	}, newGatewayClient(t), testLogger())
	n.apiBase = srv.URL

	err := n.Notify(context.Background(), testOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"bare ten digits", "9876543210", "+919876543210"},
		{"spaces and dashes", "98765-43 210", "+919876543210"},
		{"already e164", "+919876543210", "+919876543210"},
		{"foreign number", "+14155238886", "+14155238886"},
		{"short", "12345", "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.phone))
		})
	}
}
