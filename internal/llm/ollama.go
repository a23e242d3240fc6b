package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultOllamaURL = "http://127.0.0.1:11434"

// OllamaBackend calls a local Ollama server. No authentication; the
// request is a flat prompt/model envelope with streaming disabled so
// the full response is materialized before parsing.
type OllamaBackend struct {
	baseURL     string
	model       string
	temperature float64
	client      *http.Client
}

// NewOllamaBackend creates an Ollama backend.
func NewOllamaBackend(config Config) *OllamaBackend {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}

	model := config.Model
	if model == "" {
		model = "deepseek-coder-v2"
	}

	return &OllamaBackend{
		baseURL:     baseURL,
		model:       model,
		temperature: config.Temperature,
		client:      &http.Client{Timeout: config.Timeout},
	}
}

func (b *OllamaBackend) Name() string {
	return "ollama"
}

// IsAvailable probes the local server.
func (b *OllamaBackend) IsAvailable() bool {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(strings.TrimSuffix(b.baseURL, "/") + "/api/tags")
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

type ollamaRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options *ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (b *OllamaBackend) Generate(ctx context.Context, prompt string) (string, error) {
	log := logCall(b.Name(), b.model, prompt)

	reqBody := ollamaRequest{
		Model:  b.model,
		Prompt: prompt,
		Stream: false,
	}
	if b.temperature != 0 {
		reqBody.Options = &ollamaOptions{Temperature: b.temperature}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := strings.TrimSuffix(b.baseURL, "/") + "/api/generate"
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

	var envelope ollamaResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		berr := &BackendError{Backend: b.Name(), Status: resp.StatusCode, Body: "unparseable response envelope: " + err.Error()}
		log.fail(berr)
		return "", berr
	}

	if envelope.Response == "" {
		berr := &BackendError{Backend: b.Name(), Status: resp.StatusCode, Body: "response field is empty"}
		log.fail(berr)
		return "", berr
	}

	log.done(envelope.Response)
	return envelope.Response, nil
}
