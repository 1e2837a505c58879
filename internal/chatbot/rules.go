package chatbot

import (
	"context"
	"strings"
)

// RuleResponder answers from a small keyword table. It is the default
// provider and the one the tests exercise.
type RuleResponder struct {
	rules []rule
}

type rule struct {
	keywords []string
	answer   string
}

func NewRuleResponder() *RuleResponder {
	return &RuleResponder{
		rules: []rule{
			{
				keywords: []string{"pago", "payment", "cobrar"},
				answer:   "Los pagos se procesan cuando el cliente acepta una oferta. El monto queda pendiente hasta que el servicio se complete.",
			},
			{
				keywords: []string{"retiro", "withdrawal", "retirar"},
				answer:   "Puedes solicitar un retiro desde tu perfil. El monto se descuenta de tu saldo y un administrador lo procesa.",
			},
			{
				keywords: []string{"oferta", "offer"},
				answer:   "Como profesional puedes enviar una oferta por publicación. El cliente decide cuál aceptar.",
			},
			{
				keywords: []string{"promo", "descuento", "discount"},
				answer:   "Los códigos promocionales se aplican a una transacción antes de completarla y descuentan el monto final.",
			},
			{
				keywords: []string{"cuenta", "registro", "password", "contraseña"},
				answer:   "Puedes restablecer tu contraseña desde la pantalla de inicio de sesión con la opción de contraseña olvidada.",
			},
		},
	}
}

const fallbackAnswer = "No estoy seguro de cómo ayudarte con eso. Escribe \"agente\" para hablar con una persona del equipo de soporte."

func (r *RuleResponder) Reply(ctx context.Context, history []string, message string) (string, error) {
	lower := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.answer, nil
			}
		}
	}
	return fallbackAnswer, nil
}
