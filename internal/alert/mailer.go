package alert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/thomad99/lab007-scraper/internal/logging"
)

// Notifier delivers a change alert for a monitored URL.
type Notifier interface {
	NotifyChange(ctx context.Context, toEmail, url string) error
}

// Config holds SMTP submission settings. Credentials come from the
// environment, never from source.
type Config struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

// Configured reports whether enough settings are present to send mail.
func (c Config) Configured() bool {
	return c.Host != "" && c.Sender != ""
}

// Mailer sends change alerts over SMTP with STARTTLS.
type Mailer struct {
	config Config
}

// NewMailer creates a Mailer for the given SMTP configuration.
func NewMailer(config Config) (*Mailer, error) {
	if !config.Configured() {
		return nil, fmt.Errorf("smtp host and sender are required")
	}
	return &Mailer{config: config}, nil
}

// NotifyChange emails the site contact that the content of url has changed.
func (m *Mailer) NotifyChange(ctx context.Context, toEmail, url string) error {
	msg, err := m.buildMessage(toEmail, url)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.config.Host,
		mail.WithPort(m.config.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.config.Sender),
		mail.WithPassword(m.config.Password),
	)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending alert email: %w", err)
	}

	logging.LogOperation(logging.FromContext(ctx).With(slog.String("component", "alert")),
		"email_alert_sent",
		slog.String("to", toEmail),
		slog.String("url", url))

	return nil
}

func (m *Mailer) buildMessage(toEmail, url string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.config.Sender); err != nil {
		return nil, fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return nil, fmt.Errorf("setting recipient: %w", err)
	}
	msg.Subject(AlertSubject(url))
	msg.SetBodyString(mail.TypeTextPlain, AlertBody(url))
	return msg, nil
}

// AlertSubject returns the subject line for a change alert.
func AlertSubject(url string) string {
	return fmt.Sprintf("Website Change Alert: %s", url)
}

// AlertBody returns the plain-text body for a change alert.
func AlertBody(url string) string {
	return fmt.Sprintf("The content of %s has changed!", url)
}

// NoopNotifier logs alerts instead of sending them. Used when SMTP is not
// configured so monitoring still runs in development.
type NoopNotifier struct{}

func (NoopNotifier) NotifyChange(ctx context.Context, toEmail, url string) error {
	logging.LogOperation(logging.FromContext(ctx).With(slog.String("component", "alert")),
		"email_alert_skipped_smtp_not_configured",
		slog.String("to", toEmail),
		slog.String("url", url))
	return nil
}
