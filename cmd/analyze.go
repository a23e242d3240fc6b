package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dhabedank/prd-analyzer/internal/core"
	"github.com/dhabedank/prd-analyzer/internal/llm"
	"github.com/dhabedank/prd-analyzer/internal/output"
	"github.com/dhabedank/prd-analyzer/internal/tui"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	llmBackend           string
	llmModel             string
	baseURL              string
	temperature          float64
	maxTokens            int
	timeoutSecs          int
	heuristicWireframe   bool
	wireframeFromSummary bool
	outputAdapter        string
	outputPath           string
	dryRun               bool
	quiet                bool
	configFile           string
)

// AnalyzeCmd represents the analyze command.
var AnalyzeCmd = &cobra.Command{
	Use:   "analyze <prd-file>",
	Short: "Analyze a PRD into a summary, user flows, a diagram, and wireframes",
	Long: `Analyze a Product Requirements Document with an LLM backend.

The analyzer runs a staged pipeline:
- Summary: condense the PRD into core features and goals
- Flows: derive the primary user journeys from the summary
- Diagram: render the journeys as a Mermaid flowchart
- Wireframes: propose screens and navigation as structured JSON

The wireframe stage runs concurrently with the summary chain and its
JSON output is schema-checked, with one repair round for malformed
payloads.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	// LLM options
	AnalyzeCmd.Flags().StringVarP(&llmBackend, "backend", "b", "auto", "LLM backend (auto/gemini/anthropic/ollama)")
	AnalyzeCmd.Flags().StringVarP(&llmModel, "model", "m", "", "Model to use (backend-specific)")
	AnalyzeCmd.Flags().StringVar(&baseURL, "base-url", "", "Override the backend endpoint URL")
	AnalyzeCmd.Flags().Float64Var(&temperature, "temperature", 0, "Sampling temperature (0 = backend default)")
	AnalyzeCmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "Response token limit (0 = default)")
	AnalyzeCmd.Flags().IntVar(&timeoutSecs, "timeout", 0, "Per-call timeout in seconds (0 = default)")

	// Pipeline options
	AnalyzeCmd.Flags().BoolVar(&heuristicWireframe, "heuristic", false, "Generate wireframes from keyword templates instead of the LLM")
	AnalyzeCmd.Flags().BoolVar(&wireframeFromSummary, "wireframe-from-summary", false, "Feed the wireframe stage the summary instead of the raw PRD")

	// Output options
	AnalyzeCmd.Flags().StringVarP(&outputAdapter, "output", "o", "json", "Output adapter (json/markdown)")
	AnalyzeCmd.Flags().StringVar(&outputPath, "output-path", "", "Output file (default: stdout)")
	AnalyzeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview without writing files")
	AnalyzeCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress stage progress output")

	// Config file
	AnalyzeCmd.Flags().StringVar(&configFile, "config", "", "Config file (default: .prd-analyzer.yaml)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	prdPath := args[0]

	// Load config file (flags override config file values)
	if err := loadConfig(cmd); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	prdContent, err := os.ReadFile(prdPath)
	if err != nil {
		return fmt.Errorf("failed to read PRD: %w", err)
	}

	backend, err := createBackend()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Using backend: %s\n", backend.Name())

	outAdapter, err := output.NewAdapter(outputAdapter, output.Config{
		Path:   outputPath,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	analyzeConfig := core.AnalyzeConfig{
		HeuristicWireframe:   heuristicWireframe,
		WireframeFromSummary: wireframeFromSummary,
	}

	var tracker *tui.StageTracker
	if !quiet {
		tracker = tui.NewStageTracker(os.Stderr, llmModel)
		analyzeConfig.Progress = tracker
	}

	analyzer := core.NewAnalyzer(backend, analyzeConfig)
	result, err := analyzer.Analyze(context.Background(), string(prdContent))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := outAdapter.Write(result); err != nil {
		return fmt.Errorf("writing result failed: %w", err)
	}

	if tracker != nil {
		fmt.Fprintln(os.Stderr, tracker.Summary())
	}

	return nil
}

// Config file structure
type configFileData struct {
	Backend     string  `yaml:"backend"`
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	Timeout     int     `yaml:"timeout"`
	Output      string  `yaml:"output"`
}

func loadConfig(cmd *cobra.Command) error {
	// Pick up API keys from a local .env if present.
	_ = godotenv.Load()

	// Find config file
	configPath := configFile
	if configPath == "" {
		// Check .prd-analyzer.yaml in current dir
		if _, err := os.Stat(".prd-analyzer.yaml"); err == nil {
			configPath = ".prd-analyzer.yaml"
		} else if home, err := os.UserHomeDir(); err == nil {
			// Check ~/.prd-analyzer.yaml
			homePath := filepath.Join(home, ".prd-analyzer.yaml")
			if _, err := os.Stat(homePath); err == nil {
				configPath = homePath
			}
		}
	}

	if configPath == "" {
		return nil // No config file, use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg configFileData
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Loaded config from: %s\n", configPath)

	// Apply config values only if flags weren't explicitly set
	if !cmd.Flags().Changed("backend") && cfg.Backend != "" {
		llmBackend = cfg.Backend
	}
	if !cmd.Flags().Changed("model") && cfg.Model != "" {
		llmModel = cfg.Model
	}
	if !cmd.Flags().Changed("base-url") && cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	if !cmd.Flags().Changed("temperature") && cfg.Temperature != 0 {
		temperature = cfg.Temperature
	}
	if !cmd.Flags().Changed("max-tokens") && cfg.MaxTokens > 0 {
		maxTokens = cfg.MaxTokens
	}
	if !cmd.Flags().Changed("timeout") && cfg.Timeout > 0 {
		timeoutSecs = cfg.Timeout
	}
	if !cmd.Flags().Changed("output") && cfg.Output != "" {
		outputAdapter = cfg.Output
	}

	return nil
}

func createBackend() (llm.Backend, error) {
	config := llm.DefaultConfig()
	config.BaseURL = baseURL
	config.Model = llmModel
	config.Temperature = temperature
	if maxTokens > 0 {
		config.MaxTokens = maxTokens
	}
	if timeoutSecs > 0 {
		config.Timeout = time.Duration(timeoutSecs) * time.Second
	}
	return llm.NewBackend(llmBackend, config)
}
