package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhabedank/prd-analyzer/internal/core"
)

// MarkdownAdapter renders the pipeline result as a human-readable
// report: summary, user flows, the diagram in a fenced mermaid block,
// and the wireframe screen listing.
type MarkdownAdapter struct {
	path   string
	dryRun bool
}

// NewMarkdownAdapter creates a markdown adapter.
func NewMarkdownAdapter(config Config) *MarkdownAdapter {
	return &MarkdownAdapter{
		path:   config.Path,
		dryRun: config.DryRun,
	}
}

func (a *MarkdownAdapter) Name() string {
	return "markdown"
}

func (a *MarkdownAdapter) Write(result *core.PipelineResult) error {
	report := Render(result)

	if a.dryRun {
		fmt.Println("[dry-run] Would write:")
		fmt.Println(report)
		return nil
	}

	if a.path != "" {
		if err := os.WriteFile(a.path, []byte(report), 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Printf("Report written to %s\n", a.path)
		return nil
	}

	fmt.Println(report)
	return nil
}

// Render builds the markdown report for a pipeline result.
func Render(result *core.PipelineResult) string {
	var sb strings.Builder

	sb.WriteString("# PRD Analysis\n\n")

	if result.SummarizedText != "" {
		sb.WriteString("## Summary\n\n")
		sb.WriteString(result.SummarizedText)
		sb.WriteString("\n\n")
	}

	if result.UserFlows != "" {
		sb.WriteString("## User Flows\n\n")
		sb.WriteString(result.UserFlows)
		sb.WriteString("\n\n")
	}

	if result.MermaidCode != "" {
		sb.WriteString("## Flow Diagram\n\n")
		sb.WriteString("```mermaid\n")
		sb.WriteString(result.MermaidCode)
		sb.WriteString("\n```\n\n")
	}

	if result.Wireframes != nil {
		sb.WriteString("## Wireframes\n\n")
		if len(result.Wireframes.Screens) == 0 {
			sb.WriteString("No screens inferred.\n")
		}
		for i, screen := range result.Wireframes.Screens {
			sb.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, screen.Name))
			for _, comp := range screen.Components {
				label := comp.Label
				if label == "" && len(comp.Options) > 0 {
					label = strings.Join(comp.Options, " | ")
				}
				if label != "" {
					sb.WriteString(fmt.Sprintf("- **%s** — %s\n", comp.Type, label))
				} else {
					sb.WriteString(fmt.Sprintf("- **%s**\n", comp.Type))
				}
			}
			sb.WriteString("\n")
		}

		if len(result.Wireframes.Edges) > 0 {
			sb.WriteString("### Navigation\n\n")
			for _, edge := range result.Wireframes.Edges {
				from := screenName(result.Wireframes, edge.From)
				to := screenName(result.Wireframes, edge.To)
				sb.WriteString(fmt.Sprintf("- %s → %s\n", from, to))
			}
			sb.WriteString("\n")
		}

		if len(result.Wireframes.AlternativePaths) > 0 {
			sb.WriteString("### Alternative Paths\n\n")
			for _, alt := range result.Wireframes.AlternativePaths {
				sb.WriteString(fmt.Sprintf("- **%s**: %s\n", alt.Name, alt.Flow))
			}
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func screenName(model *core.WireframeModel, idx int) string {
	if idx >= 0 && idx < len(model.Screens) {
		return model.Screens[idx].Name
	}
	return fmt.Sprintf("screen %d", idx)
}
