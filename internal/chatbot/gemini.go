package chatbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemPrompt = `Eres el asistente de soporte de ServiMarket, un marketplace de servicios.
Responde en español, de forma breve y útil, solo sobre el uso de la plataforma:
publicaciones, ofertas, transacciones, pagos, retiros, reseñas y códigos promocionales.
Si el usuario pide hablar con una persona, indícale que escriba "agente".`

// GeminiResponder answers through the Gemini API.
type GeminiResponder struct {
	client *genai.Client
	model  string
}

func NewGeminiResponder(ctx context.Context, apiKey, model string) (*GeminiResponder, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiResponder{client: client, model: model}, nil
}

func (g *GeminiResponder) Reply(ctx context.Context, history []string, message string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	var prompt strings.Builder
	for _, line := range history {
		prompt.WriteString(line)
		prompt.WriteString("\n")
	}
	prompt.WriteString("Usuario: ")
	prompt.WriteString(message)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fallbackAnswer, nil
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	if out.Len() == 0 {
		return fallbackAnswer, nil
	}
	return out.String(), nil
}

func (g *GeminiResponder) Close() error {
	return g.client.Close()
}
