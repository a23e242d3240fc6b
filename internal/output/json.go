package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dhabedank/prd-analyzer/internal/core"
)

// JSONAdapter writes the pipeline result as indented JSON.
type JSONAdapter struct {
	path   string
	dryRun bool
}

// NewJSONAdapter creates a JSON adapter.
func NewJSONAdapter(config Config) *JSONAdapter {
	return &JSONAdapter{
		path:   config.Path,
		dryRun: config.DryRun,
	}
}

func (a *JSONAdapter) Name() string {
	return "json"
}

func (a *JSONAdapter) Write(result *core.PipelineResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if a.dryRun {
		fmt.Println("[dry-run] Would write:")
		fmt.Println(string(data))
		return nil
	}

	if a.path != "" {
		if err := os.WriteFile(a.path, data, 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Printf("Result written to %s\n", a.path)
		return nil
	}

	fmt.Println(string(data))
	return nil
}
