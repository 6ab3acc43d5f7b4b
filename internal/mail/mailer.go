package mail

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/spec-kit/hospital-record-service/internal/config"
)

// Mailer delivers account emails. Implementations are best-effort; callers
// never block a request on delivery.
type Mailer interface {
	SendVerificationLink(to, token string) error
	SendResetLink(to, token string) error
	Enabled() bool
}

// NewMailer returns an SMTP mailer when a host is configured, otherwise a
// noop that only logs.
func NewMailer(cfg config.SMTPConfig, baseURL string, logger *zap.Logger) Mailer {
	if cfg.Host == "" {
		logger.Warn("SMTP_HOST not set; outbound mail disabled")
		return &noopMailer{logger: logger}
	}
	return &smtpMailer{cfg: cfg, baseURL: baseURL}
}

type noopMailer struct {
	logger *zap.Logger
}

func (m *noopMailer) Enabled() bool { return false }

func (m *noopMailer) SendVerificationLink(to, token string) error {
	m.logger.Info("verification mail suppressed", zap.String("to", to))
	return nil
}

func (m *noopMailer) SendResetLink(to, token string) error {
	m.logger.Info("reset mail suppressed", zap.String("to", to))
	return nil
}

type smtpMailer struct {
	cfg     config.SMTPConfig
	baseURL string
}

func (m *smtpMailer) Enabled() bool { return true }

func (m *smtpMailer) SendVerificationLink(to, token string) error {
	link := fmt.Sprintf("%s/auth/verify-email?token=%s", m.baseURL, token)
	body := fmt.Sprintf("Please click the following link to verify your email: %s", link)
	return m.send(to, "Email Verification", body)
}

func (m *smtpMailer) SendResetLink(to, token string) error {
	link := fmt.Sprintf("%s/password-reset/confirm?token=%s", m.baseURL, token)
	body := fmt.Sprintf("Please click the following link to reset your password: %s", link)
	return m.send(to, "Password Reset", body)
}

func (m *smtpMailer) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.cfg.From, to, subject, body))

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	if m.cfg.User != "" {
		authn := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(authn); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
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
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
