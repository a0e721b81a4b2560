package email

import (
	"fmt"

	"gigboard_backend/internal/config"
	"gigboard_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// Provider sends transactional mail. Handlers never call it directly;
// services decide when an event is worth an email.
type Provider interface {
	SendVerificationEmail(to, name, token string) error
	SendPasswordResetEmail(to, name, token string) error
	SendAccountRestoredEmail(to, name string) error
}

type SMTPProvider struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
	baseURL   string
}

func NewSMTPProvider(cfg *config.Config, baseURL string) *SMTPProvider {
	return &SMTPProvider{
		dialer:    gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUsername, cfg.Email.SMTPPassword),
		fromEmail: cfg.Email.FromEmail,
		fromName:  cfg.Email.FromName,
		baseURL:   baseURL,
	}
}

func (p *SMTPProvider) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.fromEmail, p.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		logger.WithError(err).Error("failed to send email", "to", to, "subject", subject)
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendVerificationEmail(to, name, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", p.baseURL, token)
	body := fmt.Sprintf(`
		<h2>Welcome to GigBoard, %s!</h2>
		<p>Please confirm your email address to activate your account.</p>
		<p><a href="%s">Verify email</a></p>
		<p>If you did not create this account, you can ignore this message.</p>`, name, link)
	return p.send(to, "Confirm your GigBoard account", body)
}

func (p *SMTPProvider) SendPasswordResetEmail(to, name, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", p.baseURL, token)
	body := fmt.Sprintf(`
		<h2>Password reset</h2>
		<p>Hi %s, we received a request to reset your password.</p>
		<p><a href="%s">Choose a new password</a></p>
		<p>The link is valid for one hour. If you did not request this, ignore this message.</p>`, name, link)
	return p.send(to, "Reset your GigBoard password", body)
}

func (p *SMTPProvider) SendAccountRestoredEmail(to, name string) error {
	body := fmt.Sprintf(`
		<h2>Your account is back</h2>
		<p>Hi %s, your GigBoard account has been restored by an administrator.</p>
		<p>You can sign in with your previous credentials.</p>`, name)
	return p.send(to, "Your GigBoard account has been restored", body)
}
