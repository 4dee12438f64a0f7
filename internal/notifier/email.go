package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
	"github.com/happydigitalmarketings/MangaiyarFreshFoods/pkg/httpclient"
)

// EtherealAPIURL is the account provisioning endpoint of the Ethereal test
// mailbox service. Accounts created there capture mail without delivering it.
const EtherealAPIURL = "https://api.nodemailer.com/user"

const etherealSMTPHost = "smtp.ethereal.email"

// EmailConfig holds SMTP and mail content configuration.
type EmailConfig struct {
	Host       string
	Port       int
	Secure     bool
	User       string
	Pass       string
	FromEmail  string
	AdminEmail string
	SiteName   string
}

// configured reports whether a real SMTP transport is fully configured.
// Anything less falls back to a disposable Ethereal test account.
func (c EmailConfig) configured() bool {
	return c.Host != "" && c.User != "" && c.Pass != ""
}

// EmailNotifier sends the order confirmation email to the customer, BCCing
// the store admin when configured.
type EmailNotifier struct {
	cfg    EmailConfig
	api    *httpclient.Client
	apiURL string
	logger *slog.Logger
}

// NewEmailNotifier creates an email channel. The http client is used only for
// Ethereal test account provisioning.
func NewEmailNotifier(cfg EmailConfig, api *httpclient.Client, logger *slog.Logger) *EmailNotifier {
	return &EmailNotifier{
		cfg:    cfg,
		api:    api,
		apiURL: EtherealAPIURL,
		logger: logger,
	}
}

// Name returns the channel name.
func (n *EmailNotifier) Name() string {
	return "email"
}

// Notify sends the confirmation email for the order. Orders without an email
// address in the shipping address are skipped silently. The SMTP connection
// is dialed and verified before the message is handed over; a verification
// failure aborts the send.
func (n *EmailNotifier) Notify(ctx context.Context, order *domain.Order) error {
	toEmail := order.ShippingAddress.Email()
	if toEmail == "" {
		n.logger.DebugContext(ctx, "no customer email on order, skipping email",
			slog.String("order_id", order.ID),
		)
		return ErrSkipped
	}

	smtp, usingTestAccount, err := n.transport(ctx)
	if err != nil {
		return fmt.Errorf("resolve smtp transport: %w", err)
	}

	fromEmail := n.cfg.FromEmail
	if fromEmail == "" {
		fromEmail = smtp.user
	}

	siteName := n.cfg.SiteName
	if siteName == "" {
		siteName = "Mangaiyar Fresh Foods"
	}

	msg := mail.NewMsg()
	if err := msg.From(fromEmail); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	if n.cfg.AdminEmail != "" {
		if err := msg.Bcc(n.cfg.AdminEmail); err != nil {
			return fmt.Errorf("set bcc address: %w", err)
		}
	}
	msg.Subject("Order confirmation — " + siteName)

	body, err := renderOrderEmail(order)
	if err != nil {
		return fmt.Errorf("render order email: %w", err)
	}
	msg.SetBodyString(mail.TypeTextHTML, body)

	opts := []mail.Option{
		mail.WithPort(smtp.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(smtp.user),
		mail.WithPassword(smtp.pass),
	}
	if smtp.secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(smtp.host, opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	// Dial first to surface DNS/auth problems before attempting delivery.
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("verify smtp connection: %w", err)
	}
	defer client.Close()

	if err := client.Send(msg); err != nil {
		return fmt.Errorf("send order email: %w", err)
	}

	if usingTestAccount {
		n.logger.InfoContext(ctx, "order email captured by ethereal test mailbox",
			slog.String("order_id", order.ID),
			slog.String("mailbox_user", smtp.user),
		)
	}

	return nil
}

type smtpTransport struct {
	host   string
	port   int
	secure bool
	user   string
	pass   string
}

// transport returns the configured SMTP transport, provisioning a disposable
// Ethereal account when no real SMTP is configured.
func (n *EmailNotifier) transport(ctx context.Context) (smtpTransport, bool, error) {
	if n.cfg.configured() {
		port := n.cfg.Port
		if port == 0 {
			port = 587
		}
		return smtpTransport{
			host:   n.cfg.Host,
			port:   port,
			secure: n.cfg.Secure,
			user:   n.cfg.User,
			pass:   n.cfg.Pass,
		}, false, nil
	}

	account, err := n.createTestAccount(ctx)
	if err != nil {
		return smtpTransport{}, false, err
	}
	return account, true, nil
}

type etherealAccount struct {
	User string `json:"user"`
	Pass string `json:"pass"`
	SMTP struct {
		Host   string `json:"host"`
		Port   int    `json:"port"`
		Secure bool   `json:"secure"`
	} `json:"smtp"`
}

// createTestAccount requests a fresh Ethereal mailbox.
func (n *EmailNotifier) createTestAccount(ctx context.Context) (smtpTransport, error) {
	payload := strings.NewReader(`{"requestor":"nodemailer","version":"6.9.0"}`)

	resp, err := n.api.Post(ctx, n.apiURL, "application/json", payload)
	if err != nil {
		return smtpTransport{}, fmt.Errorf("create ethereal account: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return smtpTransport{}, fmt.Errorf("create ethereal account: unexpected status %d", resp.StatusCode)
	}

	var account etherealAccount
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return smtpTransport{}, fmt.Errorf("decode ethereal account: %w", err)
	}
	if account.User == "" || account.Pass == "" {
		return smtpTransport{}, fmt.Errorf("ethereal account response missing credentials")
	}

	host := account.SMTP.Host
	if host == "" {
		host = etherealSMTPHost
	}
	port := account.SMTP.Port
	if port == 0 {
		port = 587
	}

	return smtpTransport{
		host:   host,
		port:   port,
		secure: account.SMTP.Secure,
		user:   account.User,
		pass:   account.Pass,
	}, nil
}

var orderEmailTmpl = template.Must(template.New("order-email").Parse(`
<h2>Thank you for your order</h2>
<p>Hi {{.Name}},</p>
<p>We have received your order. Order ID: <strong>#{{.ShortID}}</strong></p>
<table style="border-collapse:collapse;width:100%;margin-top:12px">
  <thead>
    <tr>
      <th style="padding:8px;border:1px solid #eee;text-align:left">Product</th>
      <th style="padding:8px;border:1px solid #eee;text-align:center">Qty</th>
      <th style="padding:8px;border:1px solid #eee;text-align:right">Price</th>
    </tr>
  </thead>
  <tbody>
    {{range .Items}}<tr>
      <td style="padding:8px;border:1px solid #eee">{{.Name}}</td>
      <td style="padding:8px;border:1px solid #eee;text-align:center">{{.Qty}}</td>
      <td style="padding:8px;border:1px solid #eee;text-align:right">₹{{.Price}}</td>
    </tr>
    {{end}}
  </tbody>
</table>
<p style="text-align:right;font-weight:700">Total: ₹{{.Total}}</p>
<p>Shipping Address:</p>
<p>{{.Address}} {{.City}} {{.State}} {{.Pin}}</p>
<p>If you have any questions, reply to this email.</p>
`))

type orderEmailItem struct {
	Name  string
	Qty   int
	Price string
}

type orderEmailData struct {
	Name    string
	ShortID string
	Items   []orderEmailItem
	Total   string
	Address string
	City    string
	State   string
	Pin     string
}

// renderOrderEmail builds the HTML body of the confirmation email.
func renderOrderEmail(order *domain.Order) (string, error) {
	addr := order.ShippingAddress

	items := make([]orderEmailItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderEmailItem{
			Name:  item.DisplayName(),
			Qty:   item.Qty,
			Price: FormatINR(item.Price),
		})
	}

	data := orderEmailData{
		Name:    addr.Name(),
		ShortID: order.ShortID(),
		Items:   items,
		Total:   FormatINR(order.Total),
		Address: addr.Address(),
		City:    addr.City(),
		State:   addr.State(),
		Pin:     addr.Pin(),
	}

	var buf bytes.Buffer
	if err := orderEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
