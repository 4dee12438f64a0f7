package notifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/httpclient"
)

func newAPIClient() *httpclient.Client {
	cfg := httpclient.DefaultConfig()
	cfg.MaxRetries = 0
	cfg.Timeout = 5 * time.Second
	return httpclient.New(cfg)
}

func TestEmailConfig_Configured(t *testing.T) {
	tests := []struct {
		name string
		cfg  EmailConfig
		want bool
	}{
		{"all set", EmailConfig{Host: "smtp.example.com", User: "u", Pass: "p"}, true},
		{"missing host", EmailConfig{User: "u", Pass: "p"}, false},
		{"missing user", EmailConfig{Host: "smtp.example.com", Pass: "p"}, false},
		{"missing pass", EmailConfig{Host: "smtp.example.com", User: "u"}, false},
		{"empty", EmailConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.configured())
		})
	}
}

func TestEmailNotifier_SkipsWithoutAddress(t *testing.T) {
	n := NewEmailNotifier(EmailConfig{}, newAPIClient(), testLogger())

	order := testOrder() // testOrder has no email key
	assert.ErrorIs(t, n.Notify(context.Background(), order), ErrSkipped)
}

func TestEmailNotifier_TransportUsesConfiguredSMTP(t *testing.T) {
	n := NewEmailNotifier(EmailConfig{
		Host:   "smtp.example.com",
		Port:   465,
		Secure: true,
		User:   "orders@example.com",
		Pass:   "secret",
	}, newAPIClient(), testLogger())

	smtp, usingTest, err := n.transport(context.Background())
	require.NoError(t, err)
	assert.False(t, usingTest)
	assert.Equal(t, "smtp.example.com", smtp.host)
	assert.Equal(t, 465, smtp.port)
	assert.True(t, smtp.secure)
	assert.Equal(t, "orders@example.com", smtp.user)
}

func TestEmailNotifier_TransportDefaultsPort(t *testing.T) {
	n := NewEmailNotifier(EmailConfig{
		Host: "smtp.example.com",
		User: "u",
		Pass: "p",
	}, newAPIClient(), testLogger())

	smtp, _, err := n.transport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 587, smtp.port)
}

func TestEmailNotifier_TransportProvisionsEtherealAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"user": "test@ethereal.email",
			"pass": "generated",
			"smtp": {"host": "smtp.ethereal.email", "port": 587, "secure": false}
		}`))
	}))
	defer srv.Close()

	n := NewEmailNotifier(EmailConfig{}, newAPIClient(), testLogger())
	n.apiURL = srv.URL

	smtp, usingTest, err := n.transport(context.Background())
	require.NoError(t, err)
	assert.True(t, usingTest)
	assert.Equal(t, "smtp.ethereal.email", smtp.host)
	assert.Equal(t, 587, smtp.port)
	assert.Equal(t, "test@ethereal.email", smtp.user)
	assert.Equal(t, "generated", smtp.pass)
}

func TestEmailNotifier_TransportEtherealFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewEmailNotifier(EmailConfig{}, newAPIClient(), testLogger())
	n.apiURL = srv.URL

	_, _, err := n.transport(context.Background())
	assert.Error(t, err)
}

func TestRenderOrderEmail(t *testing.T) {
	order := testOrder()
	order.ShippingAddress["email"] = "priya@example.com"

	html, err := renderOrderEmail(order)
	require.NoError(t, err)

	assert.Contains(t, html, "Hi Priya,")
	assert.Contains(t, html, "#ABC123")
	assert.Contains(t, html, "Cucumber")
	assert.Contains(t, html, "Eggs")
	assert.Contains(t, html, "Total: ₹285")
	assert.Contains(t, html, "12 Gandhi Street")
	assert.Contains(t, html, "600001")
}

func TestRenderOrderEmail_EscapesHTML(t *testing.T) {
	order := testOrder()
	order.ShippingAddress["name"] = `<script>alert("x")</script>`

	html, err := renderOrderEmail(order)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderOrderEmail_DeletedProductPlaceholder(t *testing.T) {
	order := testOrder()
	order.Items = []domain.OrderItem{{Qty: 1, Price: 10}}

	html, err := renderOrderEmail(order)
	require.NoError(t, err)
	assert.Contains(t, html, "Product (Deleted)")
}
