package notify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	brevo "github.com/getbrevo/brevo-go/lib"
	"golang.org/x/time/rate"
)

const (
	// DefaultBrevoBaseURL is Brevo's v3 API root.
	DefaultBrevoBaseURL = "https://api.brevo.com/v3"
)

// BrevoConfig configures the Brevo transport.
type BrevoConfig struct {
	APIKey        string
	BaseURL       string
	SenderEmail   string
	SenderName    string
	Timeout       time.Duration
	RatePerSecond float64
}

// BrevoTransport delivers messages through Brevo's transactional email API.
type BrevoTransport struct {
	client      *brevo.APIClient
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	cfg         BrevoConfig
	logger      *slog.Logger
}

var _ Transport = (*BrevoTransport)(nil)

// NewBrevoTransport creates a Brevo transport.
// Requests are paced to cfg.RatePerSecond with a burst of one second's worth.
func NewBrevoTransport(cfg BrevoConfig, logger *slog.Logger) *BrevoTransport {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBrevoBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	limit, burst := rate.Inf, 1
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
		burst = max(1, int(cfg.RatePerSecond))
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	sdkCfg := brevo.NewConfiguration()
	sdkCfg.BasePath = cfg.BaseURL
	sdkCfg.HTTPClient = httpClient
	sdkCfg.AddDefaultHeader("api-key", cfg.APIKey)

	return &BrevoTransport{
		client:      brevo.NewAPIClient(sdkCfg),
		httpClient:  httpClient,
		rateLimiter: rate.NewLimiter(limit, burst),
		cfg:         cfg,
		logger:      logger,
	}
}

// Deliver sends one message. Any non-2xx response is an error.
func (t *BrevoTransport) Deliver(ctx context.Context, msg *Message) error {
	if err := t.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	email := brevo.SendSmtpEmail{
		Sender:      &brevo.SendSmtpEmailSender{Name: t.cfg.SenderName, Email: t.cfg.SenderEmail},
		To:          []brevo.SendSmtpEmailTo{{Email: msg.To}},
		Subject:     msg.Subject,
		HtmlContent: msg.HTML,
		TextContent: msg.Text,
	}
	for _, a := range msg.Attachments {
		email.Attachment = append(email.Attachment, brevo.SendSmtpEmailAttachment{
			Name:    a.Name,
			Content: base64.StdEncoding.EncodeToString(a.Content),
		})
	}

	sent, resp, err := t.client.TransactionalEmailsApi.SendTransacEmail(ctx, email)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return brevoError(resp, err)
	}

	t.logger.Debug("brevo accepted email",
		"message_id", sent.MessageId,
		"subject", msg.Subject,
	)
	return nil
}

// brevoError folds the status and Brevo's error message into err.
func brevoError(resp *http.Response, err error) error {
	var apiErr brevo.GenericSwaggerError
	if resp == nil || !errors.As(err, &apiErr) {
		return fmt.Errorf("send request: %w", err)
	}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(apiErr.Body(), &body) == nil && body.Message != "" {
		return fmt.Errorf("brevo: status %d: %s: %s", resp.StatusCode, body.Code, body.Message)
	}
	return fmt.Errorf("brevo: status %d", resp.StatusCode)
}
