package notification

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

var ErrNoRecipient = errors.New("notification: message has no recipient")

type Attachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

type Message struct {
	To          []string
	Subject     string
	Body        string
	HTMLBody    string
	Attachments []Attachment
}

//go:generate mockgen -source=notification.go -destination=mock/notification_mock.go -package=mock
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type SMTPSender struct {
	dialer dialer
	from   string
	logger *zap.Logger
}

func NewSMTPSender(cfg SMTPConfig, logger ...*zap.Logger) *SMTPSender {
	return newSMTPSender(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From, logger...)
}

func newSMTPSender(d dialer, from string, logger ...*zap.Logger) *SMTPSender {
	l := zap.L().Named("notification.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &SMTPSender{dialer: d, from: from, logger: l}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	to := make([]string, 0, len(msg.To))
	for _, addr := range msg.To {
		if addr = strings.TrimSpace(addr); addr != "" {
			to = append(to, addr)
		}
	}
	if len(to) == 0 {
		return ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}
	for _, a := range msg.Attachments {
		content := a.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}))
		}
		m.Attach(a.FileName, settings...)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("send email failed", zap.Strings("to", to), zap.String("subject", msg.Subject), zap.Error(err))
		return err
	}

	s.logger.Info("email sent", zap.Strings("to", to), zap.String("subject", msg.Subject))
	return nil
}

// LogSender only logs outgoing mail. Used when SMTP is not configured.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger ...*zap.Logger) *LogSender {
	l := zap.L().Named("notification.log")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &LogSender{logger: l}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipient
	}
	s.logger.Info("email skipped, smtp disabled",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("attachments", len(msg.Attachments)),
	)
	return nil
}
