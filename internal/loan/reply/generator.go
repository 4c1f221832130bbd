// Package reply wraps the language-generation collaborator. Generation is
// used only for phrasing; routing and underwriting decisions never depend
// on it, and every caller has a deterministic fallback.
package reply

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	errx "github.com/loanassist-poc/server/internal/core/error"
	"github.com/loanassist-poc/server/internal/loan/model"
	logx "github.com/loanassist-poc/server/pkg/logger"
)

// Generator produces a natural-language reply from a persona prompt, the
// recent transcript and the current message.
type Generator interface {
	Generate(ctx context.Context, system string, history []model.ChatTurn, message string) (string, error)
}

// GeminiGenerator backs Generator with a Gemini chat model.
type GeminiGenerator struct {
	cm       *gemini.ChatModel
	timeout  time.Duration
	maxTurns int
}

// NewGeminiGenerator builds the Gemini client and chat model.
func NewGeminiGenerator(ctx context.Context, apiKey, baseURL string, cfg model.GenerationModelConfig, maxTurns int) (*GeminiGenerator, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientCfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	cm, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model,
		Temperature: &cfg.Temperature,
		MaxTokens:   &cfg.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating generation model")
		return nil, fmt.Errorf("error creating generation model: %w", err)
	}

	return &GeminiGenerator{
		cm:       cm,
		timeout:  time.Duration(cfg.TimeoutSeconds) * time.Second,
		maxTurns: maxTurns,
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, system string, history []model.ChatTurn, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	messages := []*schema.Message{schema.SystemMessage(system)}
	for _, turn := range trimTail(history, g.maxTurns) {
		switch turn.Role {
		case model.RoleUser:
			messages = append(messages, schema.UserMessage(turn.Text))
		case model.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(turn.Text, nil))
		}
	}
	messages = append(messages, schema.UserMessage(message))

	out, err := g.cm.Generate(ctx, messages)
	if err != nil {
		return "", err
	}
	if out == nil || out.Content == "" {
		return "", fmt.Errorf("empty generation result")
	}
	return out.Content, nil
}

// Disabled is the Generator used when no API key is configured. It always
// errors so callers take their deterministic fallback path.
type Disabled struct{}

func (Disabled) Generate(context.Context, string, []model.ChatTurn, string) (string, error) {
	return "", errx.ErrCollaboratorUnavailable
}

func trimTail(turns []model.ChatTurn, maxTurns int) []model.ChatTurn {
	if maxTurns <= 0 || len(turns) <= maxTurns {
		return turns
	}
	return turns[len(turns)-maxTurns:]
}

var (
	_ Generator = (*GeminiGenerator)(nil)
	_ Generator = Disabled{}
)
