package llm

import (
	"context"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicBackend uses the Anthropic API via the official SDK.
type AnthropicBackend struct {
	client    anthropic.Client
	apiKey    string
	model     string
	maxTokens int
}

// NewAnthropicBackend creates an Anthropic backend.
func NewAnthropicBackend(config Config) *AnthropicBackend {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	model := config.Model
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}

	maxTokens := config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 8192
	}

	return &AnthropicBackend{
		client:    anthropic.NewClient(opts...),
		apiKey:    apiKey,
		model:     model,
		maxTokens: maxTokens,
	}
}

func (b *AnthropicBackend) Name() string {
	return "anthropic"
}

func (b *AnthropicBackend) IsAvailable() bool {
	return b.apiKey != ""
}

func (b *AnthropicBackend) Generate(ctx context.Context, prompt string) (string, error) {
	log := logCall(b.Name(), b.model, prompt)

	resp, err := b.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(b.model),
		MaxTokens: int64(b.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		berr := &BackendError{Backend: b.Name(), Body: err.Error()}
		log.fail(berr)
		return "", berr
	}

	var output string
	for _, block := range resp.Content {
		if block.Type == "text" {
			output += block.Text
		}
	}

	if output == "" {
		berr := &BackendError{Backend: b.Name(), Body: "response has no text blocks"}
		log.fail(berr)
		return "", berr
	}

	log.done(output)
	return output, nil
}
