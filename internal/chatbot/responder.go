package chatbot

import (
	"context"

	"servimarket_backend/internal/config"
	"servimarket_backend/internal/logger"
)

// Responder produces the bot's reply to a user message while a support
// conversation is still in automated handling.
type Responder interface {
	Reply(ctx context.Context, history []string, message string) (string, error)
}

// NewResponder picks the provider from configuration. Gemini needs an API
// key; anything else falls back to the rule-based responder.
func NewResponder(cfg *config.Config) Responder {
	if cfg.Chatbot.Provider == "gemini" && cfg.Chatbot.GeminiAPIKey != "" {
		responder, err := NewGeminiResponder(context.Background(), cfg.Chatbot.GeminiAPIKey, cfg.Chatbot.GeminiModel)
		if err != nil {
			logger.WithError(err).Error("gemini init failed, using rule-based responder")
			return NewRuleResponder()
		}
		return responder
	}
	return NewRuleResponder()
}
