package llm

import "testing"

func TestNewBackend(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		wantName string
		wantErr  bool
	}{
		{name: "gemini", backend: "gemini", wantName: "gemini"},
		{name: "ollama", backend: "ollama", wantName: "ollama"},
		{name: "anthropic", backend: "anthropic", wantName: "anthropic"},
		{name: "unknown", backend: "gpt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBackend(tt.backend, DefaultConfig())
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBackend() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if b.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", b.Name(), tt.wantName)
			}
		})
	}
}

func TestDetectBackendPrefersGemini(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")

	b, err := DetectBackend(DefaultConfig())
	if err != nil {
		t.Fatalf("DetectBackend() error = %v", err)
	}
	if b.Name() != "gemini" {
		t.Errorf("detected %q, want gemini first", b.Name())
	}
}

func TestDetectBackendFallsBackToAnthropic(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")

	b, err := DetectBackend(DefaultConfig())
	if err != nil {
		t.Fatalf("DetectBackend() error = %v", err)
	}
	if b.Name() != "anthropic" {
		t.Errorf("detected %q, want anthropic", b.Name())
	}
}

func TestKnownBackendsHaveDefaults(t *testing.T) {
	for _, info := range KnownBackends {
		if info.ID == "" || info.DefaultModel == "" {
			t.Errorf("backend info incomplete: %+v", info)
		}
	}
}
