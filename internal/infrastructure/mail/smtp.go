package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"

	"github.com/corphunt/corphunt-api/internal/api/metrics"
)

const senderName = "CorpHunt Support"

// Config captures the SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer renders and delivers transactional mail over SMTP. It is the
// only component that knows transport details and message markup; the core
// talks to it through the ports.Mailer interface.
type SMTPMailer struct {
	client *mail.Client
	from   string
	logger zerolog.Logger
}

func NewSMTPMailer(cfg Config, logger zerolog.Logger) (*SMTPMailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.From, logger: logger}, nil
}

func (m *SMTPMailer) SendVerificationCode(ctx context.Context, to, name, code string) error {
	text, html, err := renderVerification(name, code)
	if err != nil {
		return err
	}
	return m.send(ctx, "verification", to, "CorpHunt - Email Verification", text, html)
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, to, name string) error {
	text, html, err := renderWelcome(name)
	if err != nil {
		return err
	}
	return m.send(ctx, "welcome", to, "Welcome to CorpHunt", text, html)
}

func (m *SMTPMailer) send(ctx context.Context, kind, to, subject, text, html string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(senderName, m.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	start := time.Now()
	err := m.client.DialAndSendWithContext(ctx, msg)
	metrics.MailSendDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("send %s mail: %w", kind, err)
	}

	m.logger.Debug().Str("to", to).Str("kind", kind).Msg("mail sent")
	return nil
}
