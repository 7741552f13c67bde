package providers

import (
	"github.com/samber/do/v2"

	"github.com/askyourcrush/askyourcrush-server/internal/config"
	"github.com/askyourcrush/askyourcrush-server/internal/logger"
	"github.com/askyourcrush/askyourcrush-server/internal/notify"
)

// ProvideMailer provides the notification mailer.
// Without a Brevo API key, messages are logged instead of sent.
func ProvideMailer(i do.Injector) (*notify.Mailer, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	renderer, err := notify.NewRenderer()
	if err != nil {
		return nil, err
	}

	var transport notify.Transport
	if cfg.Mail.DeliveryEnabled() {
		transport = notify.NewBrevoTransport(notify.BrevoConfig{
			APIKey:        cfg.Mail.APIKey,
			BaseURL:       cfg.Mail.BaseURL,
			SenderEmail:   cfg.Mail.SenderEmail,
			SenderName:    cfg.Mail.SenderName,
			Timeout:       cfg.Mail.Timeout,
			RatePerSecond: cfg.Mail.RatePerSecond,
		}, log.Logger)
		log.Info("Email delivery enabled", "provider", "brevo", "sender", cfg.Mail.SenderEmail)
	} else {
		transport = notify.NewLogTransport(log.Logger)
		log.Warn("BREVO_API_KEY not set, emails will be logged instead of sent")
	}

	return notify.NewMailer(renderer, transport, log.Logger), nil
}
