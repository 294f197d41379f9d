package email

import (
	"gopkg.in/gomail.v2"

	"github.com/neumorstudio/plantillas-api/internal/config"
)

// Sender delivers a single plain-text message.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends mail through a configured SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	from := cfg.From
	if from == "" {
		from = "no-reply@plantillas.local"
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}
