package main

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// Mailer speaks plain SMTP to the relay named in config. Credentials come
// from the environment so they stay out of config.json.
type Mailer struct {
	cfg MailConfig
}

func NewMailer(cfg MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

type MailMessage struct {
	To      string
	Subject string
	Body    string
}

func (m *Mailer) Send(msg MailMessage) error {
	var buf strings.Builder
	fmt.Fprintf(&buf, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	buf.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	buf.WriteString(msg.Body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, os.Getenv("HAVEN_SMTP_PASSWORD"), m.cfg.Host)
	}
	return smtp.SendMail(addr, auth, m.cfg.From, []string{msg.To}, []byte(buf.String()))
}
