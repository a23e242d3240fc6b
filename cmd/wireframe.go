package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dhabedank/prd-analyzer/internal/core"
	"github.com/dhabedank/prd-analyzer/internal/llm"
	"github.com/spf13/cobra"
)

var (
	wfBackend    string
	wfModel      string
	wfHeuristic  bool
	wfOutputPath string
)

// WireframeCmd represents the wireframe command.
var WireframeCmd = &cobra.Command{
	Use:   "wireframe <prd-file>",
	Short: "Generate wireframes for a PRD without running the full pipeline",
	Long: `Generate a wireframe model (screens, components, navigation) from a
Product Requirements Document.

By default the wireframes come from the LLM backend and are
schema-checked, with one repair round for malformed JSON. With
--heuristic the screens come from keyword templates instead; that mode
needs no backend and never fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runWireframe,
}

func init() {
	WireframeCmd.Flags().StringVarP(&wfBackend, "backend", "b", "auto", "LLM backend (auto/gemini/anthropic/ollama)")
	WireframeCmd.Flags().StringVarP(&wfModel, "model", "m", "", "Model to use (backend-specific)")
	WireframeCmd.Flags().BoolVar(&wfHeuristic, "heuristic", false, "Generate from keyword templates instead of the LLM")
	WireframeCmd.Flags().StringVar(&wfOutputPath, "output-path", "", "Output file (default: stdout)")
}

func runWireframe(cmd *cobra.Command, args []string) error {
	prdContent, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read PRD: %w", err)
	}
	if strings.TrimSpace(string(prdContent)) == "" {
		return &core.InputError{Message: "no text provided"}
	}

	var model *core.WireframeModel
	var matched []string

	if wfHeuristic {
		model, matched = core.GenerateHeuristicWireframe(string(prdContent))
	} else {
		config := llm.DefaultConfig()
		config.Model = wfModel
		backend, err := llm.NewBackend(wfBackend, config)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Using backend: %s\n", backend.Name())

		analyzer := core.NewAnalyzer(backend, core.DefaultAnalyzeConfig())
		model, err = analyzer.GenerateWireframe(context.Background(), string(prdContent))
		if err != nil {
			return fmt.Errorf("wireframe generation failed: %w", err)
		}
	}

	payload := struct {
		Wireframes   *core.WireframeModel `json:"wireframes"`
		UIComponents []string             `json:"ui_components,omitempty"`
	}{Wireframes: model, UIComponents: matched}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal wireframes: %w", err)
	}

	if wfOutputPath != "" {
		if err := os.WriteFile(wfOutputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote wireframes to: %s\n", wfOutputPath)
		return nil
	}

	fmt.Println(string(data))
	return nil
}
