package core

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"k8s.io/klog/v2"

	"github.com/dhabedank/prd-analyzer/internal/llm"
)

// Analyzer runs the PRD derivation pipeline: summary, user flow,
// Mermaid diagram, and wireframes. One Analyzer is safe for concurrent
// use across requests; all per-request state lives on the stack.
type Analyzer struct {
	backend llm.Backend
	config  AnalyzeConfig
}

// NewAnalyzer creates an analyzer bound to one backend.
func NewAnalyzer(backend llm.Backend, config AnalyzeConfig) *Analyzer {
	return &Analyzer{backend: backend, config: config}
}

// Analyze derives all artifacts from raw PRD text. The summary, flow
// and diagram stages are strictly sequential; the wireframe branch has
// no data dependency on them and runs concurrently unless configured
// to consume the summary. The first failure aborts the request; no
// partial results are returned.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*PipelineResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &InputError{Message: "no text provided"}
	}

	result := &PipelineResult{UIComponents: []string{}}

	runChain := func() error {
		summary, err := a.Summarize(ctx, text)
		if err != nil {
			return err
		}
		result.SummarizedText = summary

		flows, err := a.ExtractFlows(ctx, summary)
		if err != nil {
			return err
		}
		result.UserFlows = flows

		mermaid, err := a.GenerateDiagram(ctx, flows)
		if err != nil {
			return err
		}
		result.MermaidCode = mermaid
		return nil
	}

	runWireframe := func(input string) error {
		if a.config.HeuristicWireframe {
			model, matched := GenerateHeuristicWireframe(input)
			result.Wireframes = model
			if matched != nil {
				result.UIComponents = matched
			}
			return nil
		}

		model, err := a.GenerateWireframe(ctx, input)
		if err != nil {
			return err
		}
		result.Wireframes = model
		return nil
	}

	if a.config.WireframeFromSummary {
		// Wireframe consumes the summary, so the chain must finish first.
		if err := runChain(); err != nil {
			return nil, err
		}
		if err := runWireframe(result.SummarizedText); err != nil {
			return nil, err
		}
		return result, nil
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = runChain()
	}()
	go func() {
		defer wg.Done()
		errs[1] = runWireframe(text)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Summarize condenses raw PRD text. Free-text passthrough after trim;
// the length ceiling is enforced by instruction only.
func (a *Analyzer) Summarize(ctx context.Context, text string) (string, error) {
	a.stageStart("summarize", len(text))

	raw, err := a.backend.Generate(ctx, BuildSummaryPrompt(text))
	if err != nil {
		return "", fmt.Errorf("summarize stage: %w", err)
	}

	summary := strings.TrimSpace(raw)
	a.stageDone("summarize", len(summary))
	return summary, nil
}

// ExtractFlows derives the user-flow narrative from the summary, the
// most refined context available at that point.
func (a *Analyzer) ExtractFlows(ctx context.Context, summary string) (string, error) {
	a.stageStart("user-flows", len(summary))

	raw, err := a.backend.Generate(ctx, BuildFlowPrompt(summary))
	if err != nil {
		return "", fmt.Errorf("user-flow stage: %w", err)
	}

	flows := strings.TrimSpace(raw)
	a.stageDone("user-flows", len(flows))
	return flows, nil
}

// GenerateDiagram turns the flow narrative into Mermaid code. The
// payload is opaque text, never JSON-validated; an empty diagram after
// extraction is a hard failure, never silently substituted.
func (a *Analyzer) GenerateDiagram(ctx context.Context, flows string) (string, error) {
	a.stageStart("diagram", len(flows))

	raw, err := a.backend.Generate(ctx, BuildMermaidPrompt(flows))
	if err != nil {
		return "", fmt.Errorf("diagram stage: %w", err)
	}

	mermaid := ExtractFenced(raw, FenceMermaid)
	if mermaid == "" {
		return "", &MalformedPayloadError{Stage: "diagram", LastPayload: raw}
	}

	a.stageDone("diagram", len(mermaid))
	return mermaid, nil
}

// GenerateWireframe derives a validated WireframeModel from the input
// text via the LLM: prompt, fence extraction, parse with one repair
// round, schema check, structural validation.
func (a *Analyzer) GenerateWireframe(ctx context.Context, text string) (*WireframeModel, error) {
	a.stageStart("wireframe", len(text))

	raw, err := a.backend.Generate(ctx, BuildWireframePrompt(text))
	if err != nil {
		return nil, fmt.Errorf("wireframe stage: %w", err)
	}

	payload, err := ParseOrRepair(ctx, ExtractFenced(raw, FenceJSON), a.backend)
	if err != nil {
		return nil, fmt.Errorf("wireframe stage: %w", err)
	}

	model, err := DecodeWireframe(payload)
	if err != nil {
		return nil, fmt.Errorf("wireframe stage: %w", err)
	}

	a.stageDone("wireframe", len(payload))
	klog.V(4).Infof("wireframe: %d screens, %d edges", len(model.Screens), len(model.Edges))
	return model, nil
}

func (a *Analyzer) stageStart(name string, chars int) {
	klog.V(3).Infof("stage %s start (%d input chars)", name, chars)
	if a.config.Progress != nil {
		a.config.Progress.StageStart(name, chars)
	}
}

func (a *Analyzer) stageDone(name string, chars int) {
	klog.V(3).Infof("stage %s done (%d output chars)", name, chars)
	if a.config.Progress != nil {
		a.config.Progress.StageDone(name, chars)
	}
}
