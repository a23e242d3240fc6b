package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeWireframe(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "valid payload",
			payload: `{"screens": [{"name": "Home", "components": [{"type": "Button", "label": "Go"}]}], "edges": [{"from": 0, "to": 0}]}`,
			wantErr: false,
		},
		{
			name:    "empty screens is valid",
			payload: `{"screens": []}`,
			wantErr: false,
		},
		{
			name:    "missing screens key",
			payload: `{"edges": []}`,
			wantErr: true,
		},
		{
			name:    "screen without components",
			payload: `{"screens": [{"name": "Home"}]}`,
			wantErr: true,
		},
		{
			name:    "component without type",
			payload: `{"screens": [{"name": "Home", "components": [{"label": "Go"}]}]}`,
			wantErr: true,
		},
		{
			name:    "non-integer edge index",
			payload: `{"screens": [{"name": "Home", "components": []}], "edges": [{"from": "zero", "to": 0}]}`,
			wantErr: true,
		},
		{
			name:    "top level is not an object",
			payload: `["screens"]`,
			wantErr: true,
		},
		{
			name:    "edge index out of range fails structural check",
			payload: `{"screens": [{"name": "Home", "components": []}], "edges": [{"from": 0, "to": 9}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := DecodeWireframe(json.RawMessage(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeWireframe() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("error = %v, want ValidationError", err)
				}
				return
			}
			if model == nil {
				t.Fatal("model = nil")
			}
		})
	}
}

func TestDecodeWireframeAlternativePaths(t *testing.T) {
	payload := `{
		"screens": [{"name": "Login", "components": [{"type": "TextField", "label": "Email"}]}],
		"alternative_paths": [{"name": "Forgot password", "flow": "User requests a reset link"}]
	}`

	model, err := DecodeWireframe(json.RawMessage(payload))
	if err != nil {
		t.Fatalf("DecodeWireframe() error = %v", err)
	}
	if len(model.AlternativePaths) != 1 {
		t.Fatalf("AlternativePaths = %d, want 1", len(model.AlternativePaths))
	}
	if model.AlternativePaths[0].Name != "Forgot password" {
		t.Errorf("path name = %q", model.AlternativePaths[0].Name)
	}
}
