package notifyinfra

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/ajcportal/careerhub/recruitment/notification"
)

// SMTPConfig holds the outbound mail transport settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	UseTLS   bool
}

// SMTPMailer implements notification.Mailer over plain SMTP, with an
// optional implicit-TLS connection for port 465 style servers
type SMTPMailer struct {
	config SMTPConfig
	auth   smtp.Auth
}

func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	return &SMTPMailer{
		config: config,
		auth:   auth,
	}
}

// Send delivers one message. The context bounds the dial, the SMTP
// conversation itself runs to completion once connected.
func (m *SMTPMailer) Send(ctx context.Context, msg notification.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	payload := m.buildMessage(msg)

	if m.config.UseTLS {
		return m.sendTLS(addr, msg.To, payload)
	}

	return smtp.SendMail(addr, m.auth, m.config.From, []string{msg.To}, payload)
}

func (m *SMTPMailer) sendTLS(addr, to string, payload []byte) error {
	tlsConfig := &tls.Config{ServerName: m.config.Host}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to dial TLS: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	if m.auth != nil {
		if err := client.Auth(m.auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := client.Mail(m.config.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

// buildMessage assembles the MIME headers and HTML body
func (m *SMTPMailer) buildMessage(msg notification.Message) []byte {
	builder := &strings.Builder{}

	builder.WriteString(fmt.Sprintf("From: %s\r\n", m.config.From))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(msg.HTMLBody)
	builder.WriteString("\r\n")

	return []byte(builder.String())
}

var _ notification.Mailer = (*SMTPMailer)(nil)
