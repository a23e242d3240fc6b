package output

import (
	"fmt"

	"github.com/dhabedank/prd-analyzer/internal/core"
)

// Adapter is the interface all result writers must implement.
type Adapter interface {
	// Name returns the adapter identifier for logging.
	Name() string

	// Write renders the pipeline result to its destination.
	Write(result *core.PipelineResult) error
}

// Config configures output adapter behavior.
type Config struct {
	// Path is the destination file. Empty writes to stdout.
	Path string

	// DryRun previews without writing files.
	DryRun bool
}

// NewAdapter creates the named adapter.
func NewAdapter(name string, config Config) (Adapter, error) {
	switch name {
	case "json", "":
		return NewJSONAdapter(config), nil
	case "markdown", "md":
		return NewMarkdownAdapter(config), nil
	}
	return nil, fmt.Errorf("unknown output adapter %q (want json or markdown)", name)
}
