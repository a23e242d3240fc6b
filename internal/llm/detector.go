package llm

import (
	"fmt"
)

// BackendInfo describes a selectable backend.
type BackendInfo struct {
	ID           string // Backend identifier (e.g., "gemini")
	Description  string // Brief description
	DefaultModel string
}

// KnownBackends lists the backends this tool can drive, in preference
// order for auto-detection.
var KnownBackends = []BackendInfo{
	{ID: "gemini", Description: "Google Gemini API (GEMINI_API_KEY)", DefaultModel: "gemini-1.5-flash"},
	{ID: "anthropic", Description: "Anthropic API (ANTHROPIC_API_KEY)", DefaultModel: "claude-sonnet-4-20250514"},
	{ID: "ollama", Description: "Local Ollama server", DefaultModel: "deepseek-coder-v2"},
}

// NewBackend creates the named backend. Name "auto" picks the first
// available one.
func NewBackend(name string, config Config) (Backend, error) {
	switch name {
	case "gemini":
		return NewGeminiBackend(config), nil
	case "ollama":
		return NewOllamaBackend(config), nil
	case "anthropic":
		return NewAnthropicBackend(config), nil
	case "auto", "":
		return DetectBackend(config)
	}
	return nil, fmt.Errorf("unknown backend %q (want gemini, ollama, anthropic, or auto)", name)
}

// DetectBackend finds the best available backend.
// Priority: Gemini API > Anthropic API > local Ollama.
func DetectBackend(config Config) (Backend, error) {
	gemini := NewGeminiBackend(config)
	if gemini.IsAvailable() {
		return gemini, nil
	}

	anthropic := NewAnthropicBackend(config)
	if anthropic.IsAvailable() {
		return anthropic, nil
	}

	ollama := NewOllamaBackend(config)
	if ollama.IsAvailable() {
		return ollama, nil
	}

	return nil, fmt.Errorf("no LLM backend available - set GEMINI_API_KEY or ANTHROPIC_API_KEY, or start an Ollama server")
}

// ListAvailableBackends returns all backends that could be used.
func ListAvailableBackends(config Config) []string {
	available := []string{}

	if NewGeminiBackend(config).IsAvailable() {
		available = append(available, "gemini")
	}
	if NewAnthropicBackend(config).IsAvailable() {
		available = append(available, "anthropic")
	}
	if NewOllamaBackend(config).IsAvailable() {
		available = append(available, "ollama")
	}

	return available
}
