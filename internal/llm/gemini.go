// Package llm wraps the external generation collaborators: the Gemini chat
// client behind the content provider's chat boundary, and the curated
// image picker used for final-turn portraits.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/talgya/crisis-sim/internal/content"
)

const (
	defaultModel   = "gemini-2.5-pro"
	requestTimeout = 60 * time.Second
)

// Gemini adapts the Google generative AI client to the chat-client
// boundary. Every call carries an upper-bound timeout; a timeout, error,
// and malformed reply all surface the same way to the caller.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini chat client. An empty model selects the
// default.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Gemini{client: client, model: model}, nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

// Chat sends the system prompt and ordered conversation to Gemini and
// returns the generated text. The final message is submitted as the live
// turn; everything before it becomes chat history.
func (g *Gemini) Chat(ctx context.Context, system string, messages []content.Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages to send")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	model := g.client.GenerativeModel(g.model)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	chat := model.StartChat()
	for _, m := range messages[:len(messages)-1] {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(messages[len(messages)-1].Text))
	if err != nil {
		return "", fmt.Errorf("gemini call: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("empty gemini response")
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, part := range c.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(b.String())
}
