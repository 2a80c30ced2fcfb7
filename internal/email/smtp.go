// Package email sends the welcome message after registration.
package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"html"

	mail "github.com/go-mail/mail"

	"github.com/dropDatabas3/postwall/internal/observability/logger"
)

// Sender delivers transactional mail.
type Sender interface {
	SendWelcome(ctx context.Context, to, name string) error
}

type SMTPConfig struct {
	Host string
	Port int
	From string
	User string
	Pass string
	// TLSMode is "auto" (STARTTLS when offered), "ssl" or "none".
	TLSMode            string
	InsecureSkipVerify bool
}

type SMTPSender struct {
	cfg    SMTPConfig
	dialer *mail.Dialer
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host, InsecureSkipVerify: cfg.InsecureSkipVerify}
	switch cfg.TLSMode {
	case "ssl":
		d.SSL = true
	case "none":
		d.StartTLSPolicy = mail.NoStartTLS
	}
	return &SMTPSender{cfg: cfg, dialer: d}
}

func (s *SMTPSender) SendWelcome(ctx context.Context, to, name string) error {
	log := logger.From(ctx).With(logger.Component("email.smtp"), logger.Op("SendWelcome"))

	if err := s.dialer.DialAndSend(buildWelcome(s.cfg.From, to, name)); err != nil {
		log.Warn("smtp send failed", logger.Err(err))
		return fmt.Errorf("smtp send: %w", err)
	}
	log.Debug("welcome mail sent")
	return nil
}

func buildWelcome(from, to, name string) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to postwall")
	m.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nYour account is ready. See you on the wall!\n", name))
	m.AddAlternative("text/html", fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. See you on the wall!</p>", html.EscapeString(name)))
	return m
}

// NoopSender is used when no SMTP host is configured.
type NoopSender struct{}

func (NoopSender) SendWelcome(context.Context, string, string) error { return nil }
