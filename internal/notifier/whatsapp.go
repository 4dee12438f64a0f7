package notifier

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/httpclient"
)

// TwilioAPIBase is the Twilio REST API base URL.
const TwilioAPIBase = "https://api.twilio.com"

// WhatsAppConfig holds Twilio WhatsApp gateway configuration.
type WhatsAppConfig struct {
	AccountSID     string
	AuthToken      string
	FromNumber     string
	AdminNumber    string
	SendToCustomer bool
}

// credentialsConfigured reports whether the Twilio gateway can be called.
func (c WhatsAppConfig) credentialsConfigured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// WhatsAppNotifier sends order notifications over WhatsApp via the Twilio
// Messages API. The admin always gets a new-order message when an admin
// number is configured; the customer gets a confirmation only when the
// send-to-customer flag is enabled.
type WhatsAppNotifier struct {
	cfg     WhatsAppConfig
	client  *httpclient.CircuitBreakerClient
	apiBase string
	logger  *slog.Logger
}

// NewWhatsAppNotifier creates a WhatsApp channel. The client should be
// configured without retries; message sends must not be replayed.
func NewWhatsAppNotifier(cfg WhatsAppConfig, client *httpclient.CircuitBreakerClient, logger *slog.Logger) *WhatsAppNotifier {
	return &WhatsAppNotifier{
		cfg:     cfg,
		client:  client,
		apiBase: TwilioAPIBase,
		logger:  logger,
	}
}

// Name returns the channel name.
func (n *WhatsAppNotifier) Name() string {
	return "whatsapp"
}

// Notify sends the admin and (optionally) customer WhatsApp messages for the
// order. Orders with no customer phone and no admin number are skipped
// silently, as are sends with unconfigured Twilio credentials.
func (n *WhatsAppNotifier) Notify(ctx context.Context, order *domain.Order) error {
	customerPhone := order.ShippingAddress.Phone()
	adminPhone := n.cfg.AdminNumber

	if customerPhone == "" && adminPhone == "" {
		n.logger.DebugContext(ctx, "no whatsapp numbers for order, skipping",
			slog.String("order_id", order.ID),
		)
		return ErrSkipped
	}

	if !n.cfg.credentialsConfigured() {
		n.logger.WarnContext(ctx, "twilio credentials not configured, skipping whatsapp",
			slog.String("order_id", order.ID),
		)
		return ErrSkipped
	}

	if adminPhone != "" {
		if err := n.sendMessage(ctx, adminPhone, adminOrderMessage(order, customerPhone)); err != nil {
			return fmt.Errorf("send admin whatsapp: %w", err)
		}
	}

	if customerPhone != "" && n.cfg.SendToCustomer {
		if err := n.sendMessage(ctx, customerPhone, customerOrderMessage(order)); err != nil {
			return fmt.Errorf("send customer whatsapp: %w", err)
		}
	}

	return nil
}

// sendMessage posts one message to the Twilio Messages API.
func (n *WhatsAppNotifier) sendMessage(ctx context.Context, phone, body string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", n.apiBase, n.cfg.AccountSID)

	form := url.Values{}
	form.Set("From", "whatsapp:"+n.cfg.FromNumber)
	form.Set("To", "whatsapp:"+NormalizePhone(phone))
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create twilio request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(n.cfg.AccountSID, n.cfg.AuthToken)

	resp, err := n.client.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("twilio request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("twilio api error: status %d: %s", resp.StatusCode, string(snippet))
	}

	return nil
}

// NormalizePhone strips everything but digits and prefixes bare Indian
// 10-digit numbers with +91. Longer numbers keep their country code.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) == 10 {
		return "+91" + digits
	}
	if len(digits) > 10 {
		return "+" + digits
	}
	return digits
}

// adminOrderMessage builds the new-order alert sent to the store admin.
func adminOrderMessage(order *domain.Order, customerPhone string) string {
	addr := order.ShippingAddress

	var items []string
	for i, item := range order.Items {
		items = append(items, fmt.Sprintf("%d. %s - Qty: %d @ ₹%s", i+1, item.DisplayName(), item.Qty, FormatINR(item.Price)))
	}

	name := addr.Name()
	if name == "" {
		name = "N/A"
	}
	phone := customerPhone
	if phone == "" {
		phone = "N/A"
	}

	return fmt.Sprintf(
		"🎉 *New Order Received!*\n\n*Order ID:* #%s\n*Customer:* %s\n*Phone:* %s\n*Total:* ₹%s\n\n*Items:*\n%s\n\n*Address:*\n%s\n%s - %s",
		order.ShortID(), name, phone, FormatINR(order.Total),
		strings.Join(items, "\n"),
		addr.Address(), addr.City(), addr.Pin(),
	)
}

// customerOrderMessage builds the confirmation sent to the customer.
func customerOrderMessage(order *domain.Order) string {
	name := order.ShippingAddress.Name()
	if name == "" {
		name = "there"
	}

	return fmt.Sprintf(
		"👋 Hi %s!\n\nYour order #%s has been placed successfully! 🎉\n\nTotal: ₹%s\n\nWe'll notify you once it's dispatched. Thank you for your order! 😊",
		name, order.ShortID(), FormatINR(order.Total),
	)
}
