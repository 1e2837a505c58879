package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"servimarket_backend/internal/config"
	"servimarket_backend/internal/logger"
)

type SMTPProvider struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{
		dialer: gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUsername, cfg.Email.SMTPPassword),
		from:   cfg.Email.FromEmail,
	}
}

func (p *SMTPProvider) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := p.dialer.DialAndSend(m); err != nil {
		logger.WithError(err).Error("failed to send email", "to", to, "subject", subject)
		return err
	}
	return nil
}

func (p *SMTPProvider) SendVerificationEmail(to, name, token string) error {
	body := fmt.Sprintf(verificationTemplate, name, token)
	return p.send(to, "Verifica tu cuenta de ServiMarket", body)
}

func (p *SMTPProvider) SendPasswordResetEmail(to, name, token string) error {
	body := fmt.Sprintf(passwordResetTemplate, name, token)
	return p.send(to, "Restablece tu contraseña", body)
}

func (p *SMTPProvider) SendWithdrawalProcessedEmail(to, name string, amount float64, status string) error {
	body := fmt.Sprintf(withdrawalTemplate, name, amount, status)
	return p.send(to, "Actualización de tu retiro", body)
}
