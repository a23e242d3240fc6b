package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhabedank/prd-analyzer/internal/core"
)

func TestRunWireframeEmptyFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero bytes", content: ""},
		{name: "whitespace only", content: "  \n\t \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prd.md")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			err := runWireframe(WireframeCmd, []string{path})
			var inputErr *core.InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("runWireframe() error = %v, want InputError", err)
			}
		})
	}
}

func TestRunWireframeHeuristic(t *testing.T) {
	dir := t.TempDir()
	prdPath := filepath.Join(dir, "prd.md")
	outPath := filepath.Join(dir, "wireframes.json")
	if err := os.WriteFile(prdPath, []byte("Users login before anything else."), 0644); err != nil {
		t.Fatal(err)
	}

	wfHeuristic = true
	wfOutputPath = outPath
	defer func() {
		wfHeuristic = false
		wfOutputPath = ""
	}()

	if err := runWireframe(WireframeCmd, []string{prdPath}); err != nil {
		t.Fatalf("runWireframe() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var payload struct {
		Wireframes   *core.WireframeModel `json:"wireframes"`
		UIComponents []string             `json:"ui_components"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if payload.Wireframes == nil || len(payload.Wireframes.Screens) != 1 {
		t.Fatalf("wireframes = %+v", payload.Wireframes)
	}
	if payload.Wireframes.Screens[0].Name != "Login Screen" {
		t.Errorf("screen = %q", payload.Wireframes.Screens[0].Name)
	}
	if len(payload.UIComponents) != 1 || payload.UIComponents[0] != "login" {
		t.Errorf("ui_components = %v", payload.UIComponents)
	}
}
