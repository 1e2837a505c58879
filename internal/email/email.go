package email

import "servimarket_backend/internal/config"

// Provider sends transactional mail. The SMTP implementation is used in
// production; tests swap in a no-op.
type Provider interface {
	SendVerificationEmail(to, name, token string) error
	SendPasswordResetEmail(to, name, token string) error
	SendWithdrawalProcessedEmail(to, name string, amount float64, status string) error
}

// NewProvider returns the SMTP provider, or a no-op sender when SMTP is not
// configured.
func NewProvider(cfg *config.Config) Provider {
	if cfg.Email.SMTPHost == "" {
		return &NoopProvider{}
	}
	return NewSMTPProvider(cfg)
}

type NoopProvider struct{}

func (p *NoopProvider) SendVerificationEmail(to, name, token string) error   { return nil }
func (p *NoopProvider) SendPasswordResetEmail(to, name, token string) error  { return nil }
func (p *NoopProvider) SendWithdrawalProcessedEmail(to, name string, amount float64, status string) error {
	return nil
}
