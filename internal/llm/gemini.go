package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiBackend calls the Gemini generateContent endpoint over raw
// HTTP. The API key travels as a query parameter.
type GeminiBackend struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
}

// NewGeminiBackend creates a Gemini backend.
func NewGeminiBackend(config Config) *GeminiBackend {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiURL
	}

	model := config.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}

	return &GeminiBackend{
		baseURL:     baseURL,
		apiKey:      apiKey,
		model:       model,
		temperature: config.Temperature,
		maxTokens:   config.MaxTokens,
		client:      &http.Client{Timeout: config.Timeout},
	}
}

func (b *GeminiBackend) Name() string {
	return "gemini"
}

// IsAvailable checks if an API key is configured.
func (b *GeminiBackend) IsAvailable() bool {
	return b.apiKey != ""
}

// geminiRequest is the generateContent envelope.
type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig *geminiGenConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// geminiResponse carries the raw text at candidates[0].content.parts[*].text.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (b *GeminiBackend) Generate(ctx context.Context, prompt string) (string, error) {
	log := logCall(b.Name(), b.model, prompt)

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	if b.temperature != 0 || b.maxTokens != 0 {
		reqBody.GenerationConfig = &geminiGenConfig{
			Temperature:     b.temperature,
			MaxOutputTokens: b.maxTokens,
		}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s",
		strings.TrimSuffix(b.baseURL, "/"), b.model, url.QueryEscape(b.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		berr := &BackendError{Backend: b.Name(), Body: err.Error()}
		log.fail(berr)
		return "", berr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		berr := &BackendError{Backend: b.Name(), Status: resp.StatusCode, Body: err.Error()}
		log.fail(berr)
		return "", berr
	}

	if resp.StatusCode != http.StatusOK {
		berr := &BackendError{Backend: b.Name(), Status: resp.StatusCode, Body: string(body)}
		log.fail(berr)
		return "", berr
	}

	var envelope geminiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		berr := &BackendError{Backend: b.Name(), Status: resp.StatusCode, Body: "unparseable response envelope: " + err.Error()}
		log.fail(berr)
		return "", berr
	}

	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		berr := &BackendError{Backend: b.Name(), Status: resp.StatusCode, Body: "response has no candidates"}
		log.fail(berr)
		return "", berr
	}

	var text strings.Builder
	for _, part := range envelope.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	out := text.String()
	log.done(out)
	return out, nil
}
