package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"
)

type IMailService interface {
	SendPasswordReset(to, token string) error
}

// SMTPConfig holds SMTP plus branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // 587 (STARTTLS)
	Username string
	Password string
	From     string
	FromName string

	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg      SMTPConfig
	resetTpl *template.Template
}

const resetMailTemplate = `<html><body>
<h2>{{.AppName}} password reset</h2>
<p>We received a request to reset your password. Use the token below within one hour:</p>
<p><b>{{.Token}}</b></p>
<p>Or follow <a href="{{.AppBaseURL}}/reset-password?token={{.Token}}">this link</a>.
If you did not request a reset, you can ignore this mail.</p>
</body></html>`

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	tpl, err := template.New("reset").Parse(resetMailTemplate)
	if err != nil {
		return nil, err
	}
	return &smtpMailService{cfg: cfg, resetTpl: tpl}, nil
}

func (m *smtpMailService) SendPasswordReset(to, token string) error {
	var body bytes.Buffer
	err := m.resetTpl.Execute(&body, map[string]string{
		"AppName":    m.cfg.AppName,
		"AppBaseURL": m.cfg.AppBaseURL,
		"Token":      token,
	})
	if err != nil {
		return err
	}

	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", m.cfg.FromName, m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s password reset\r\n", m.cfg.AppName)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n")
	msg.Write(body.Bytes())

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(m.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg.Bytes()); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
