package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/crm/backend/internal/infrastructure/config"
)

// Message is an outbound email
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers account emails (confirmation links, password resets)
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender returns the sender selected by mail.mode
func NewSender(cfg config.MailConfig, logger *zap.Logger) Sender {
	if cfg.Mode == "smtp" {
		return NewSMTPSender(cfg)
	}
	return NewLogSender(logger)
}

// SMTPSender delivers mail over plain SMTP
type SMTPSender struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPSender creates a sender backed by the configured SMTP server
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
	}
}

// Send delivers the message, honoring context cancellation before dialing
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	return nil
}

var _ Sender = (*SMTPSender)(nil)

// LogSender writes mail to the log instead of delivering it. Used in
// development so confirmation and reset links show up in server output.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a log-backed sender
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger.Named("mail")}
}

// Send logs the message at info level
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("outbound mail",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)
	return nil
}

var _ Sender = (*LogSender)(nil)
