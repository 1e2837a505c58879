package chatbot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleResponderKeywords(t *testing.T) {
	r := NewRuleResponder()

	cases := map[string]string{
		"¿Cómo funciona el PAGO?":       "Los pagos se procesan",
		"quiero retirar mi dinero":      "retiro",
		"hice una oferta y no responde": "oferta",
		"tengo un código de descuento":  "promocionales",
		"olvidé mi contraseña":          "contraseña",
	}
	for message, fragment := range cases {
		reply, err := r.Reply(context.Background(), nil, message)
		require.NoError(t, err)
		assert.Contains(t, reply, fragment, message)
	}
}

func TestRuleResponderFallback(t *testing.T) {
	r := NewRuleResponder()

	reply, err := r.Reply(context.Background(), nil, "asdf qwerty")
	require.NoError(t, err)
	assert.Equal(t, fallbackAnswer, reply)
	assert.Contains(t, reply, "agente")
}
