package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// Backend is the interface all LLM backends must implement.
// Generate returns the backend's raw text response; structured
// extraction and parsing happen downstream in core.
type Backend interface {
	// Name returns the backend identifier for logging.
	Name() string

	// IsAvailable checks if this backend can be used (API key set,
	// local server reachable, etc.)
	IsAvailable() bool

	// Generate sends a prompt to the LLM and returns the raw text
	// response. A single request/response round-trip per call; no
	// retries.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds configuration for LLM backends. It is constructed once
// at startup and injected; pipeline code never reads ambient globals.
type Config struct {
	// BaseURL overrides the backend's default endpoint.
	BaseURL string `yaml:"base_url"`

	// APIKey for the hosted backends (Gemini, Anthropic).
	APIKey string `yaml:"api_key"`

	// Model specifies which model to use (optional, backend chooses default).
	Model string `yaml:"model"`

	// MaxTokens limits response length.
	MaxTokens int `yaml:"max_tokens"`

	// Temperature for generation. Zero means backend default.
	Temperature float64 `yaml:"temperature"`

	// Timeout bounds each round-trip. The backend is an untrusted,
	// potentially slow external dependency.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 8192,
		Timeout:   120 * time.Second,
	}
}

// BackendError is a terminal failure from the LLM service: non-2xx
// status, malformed response envelope, or a network-level error.
type BackendError struct {
	Backend string
	Status  int
	Body    string
}

func (e *BackendError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s backend error: status %d: %s", e.Backend, e.Status, truncate(e.Body, 200))
	}
	return fmt.Sprintf("%s backend error: %s", e.Backend, truncate(e.Body, 200))
}

// callLogger logs one backend round-trip. Advisory only, not part of
// the contract.
type callLogger struct {
	backend string
	model   string
	id      string
	start   time.Time
}

func logCall(backend, model, prompt string) *callLogger {
	l := &callLogger{
		backend: backend,
		model:   model,
		id:      uuid.NewString()[:8],
		start:   time.Now(),
	}
	klog.V(2).Infof("[%s] %s request model=%s prompt=%q", l.id, backend, model, truncate(prompt, 160))
	return l
}

func (l *callLogger) done(response string) {
	klog.V(2).Infof("[%s] %s response in %s (%d chars)", l.id, l.backend, time.Since(l.start).Truncate(time.Millisecond), len(response))
	klog.V(6).Infof("[%s] %s response body: %s", l.id, l.backend, response)
}

func (l *callLogger) fail(err error) {
	klog.V(1).Infof("[%s] %s failed after %s: %v", l.id, l.backend, time.Since(l.start).Truncate(time.Millisecond), err)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
