package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/ProTechPh/GeoPulse/internal/config"
	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/internal/notify"
)

// EmailChannel delivers HTML mail over SMTP. Each send dials fresh with the
// configured timeout; the dispatcher treats a timeout like any other failure.
type EmailChannel struct {
	cfg      config.SMTPConfig
	renderer *Renderer
	logger   *slog.Logger
}

func NewEmailChannel(cfg config.SMTPConfig, logger *slog.Logger) (*EmailChannel, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}
	return &EmailChannel{cfg: cfg, renderer: renderer, logger: logger}, nil
}

func (c *EmailChannel) Kind() domain.Channel {
	return domain.ChannelEmail
}

func (c *EmailChannel) Send(ctx context.Context, msg notify.Message) domain.DeliveryResult {
	if err := ctx.Err(); err != nil {
		return domain.DeliveryResult{Success: false, Error: err.Error()}
	}
	if msg.To == "" {
		return domain.DeliveryResult{Success: false, Error: "recipient address is empty"}
	}

	body, err := c.renderer.Render(msg)
	if err != nil {
		return domain.DeliveryResult{Success: false, Error: "render template: " + err.Error()}
	}

	if err := c.send(msg.To, Subject(msg), body); err != nil {
		return domain.DeliveryResult{Success: false, Error: err.Error()}
	}
	return domain.DeliveryResult{Success: true}
}

func (c *EmailChannel) send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)

	conn, err := net.DialTimeout("tcp", addr, c.cfg.Timeout)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	if c.cfg.Timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(c.cfg.Timeout))
	}

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: c.cfg.Host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	if c.cfg.User != "" {
		auth := smtp.PlainAuth("", c.cfg.User, c.cfg.Password, c.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(envelopeFrom(c.cfg.From)); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}

	var b strings.Builder
	b.WriteString("From: " + c.cfg.From + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	if _, err := w.Write([]byte(b.String())); err != nil {
		return fmt.Errorf("smtp write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close body: %w", err)
	}

	return client.Quit()
}

// envelopeFrom strips a display name, "GeoPulse <a@b>" -> "a@b".
func envelopeFrom(from string) string {
	if i := strings.LastIndex(from, "<"); i >= 0 {
		if j := strings.LastIndex(from, ">"); j > i {
			return from[i+1 : j]
		}
	}
	return from
}
