package tui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// StageInfo holds timing and size information about one pipeline stage.
type StageInfo struct {
	Name        string
	Model       string
	InputChars  int
	OutputChars int
	StartTime   time.Time
	EndTime     time.Time
	IsComplete  bool
}

// StageTracker prints stage progress as the pipeline runs and keeps
// per-stage stats for the final summary. It implements the pipeline's
// stage observer interface.
type StageTracker struct {
	mu     sync.Mutex
	w      io.Writer
	model  string
	stages []StageInfo
}

// NewStageTracker creates a tracker writing to w. The model name is
// used for cost estimation.
func NewStageTracker(w io.Writer, model string) *StageTracker {
	return &StageTracker{w: w, model: model}
}

// StageStart begins tracking a new stage.
func (t *StageTracker) StageStart(name string, inputChars int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stages = append(t.stages, StageInfo{
		Name:       name,
		Model:      t.model,
		InputChars: inputChars,
		StartTime:  time.Now(),
	})

	inputTokens := EstimateTokens(inputChars)
	fmt.Fprintf(t.w, "%s %s  %s  ~%s input tokens\n",
		StageStyle.Render("→"),
		StageStyle.Render(name),
		ModelStyle.Render(t.model),
		FormatTokens(inputTokens),
	)
}

// StageDone marks the most recent stage with the given name complete.
func (t *StageTracker) StageDone(name string, outputChars int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := len(t.stages) - 1; i >= 0; i-- {
		if t.stages[i].Name != name || t.stages[i].IsComplete {
			continue
		}

		t.stages[i].IsComplete = true
		t.stages[i].EndTime = time.Now()
		t.stages[i].OutputChars = outputChars

		stage := t.stages[i]
		duration := stage.EndTime.Sub(stage.StartTime).Truncate(time.Second)
		inputTokens := EstimateTokens(stage.InputChars)
		outputTokens := EstimateTokens(outputChars)
		cost := EstimateCost(stage.Model, inputTokens, outputTokens)

		fmt.Fprintf(t.w, "%s %s  %s  ~%s tokens  %s\n",
			SuccessStyle.Render("✓"),
			StageStyle.Render(name),
			HelpStyle.Render(duration.String()),
			FormatTokens(inputTokens+outputTokens),
			CostStyle.Render(FormatCost(cost)),
		)
		return
	}
}

// Stages returns the tracked stage stats.
func (t *StageTracker) Stages() []StageInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]StageInfo(nil), t.stages...)
}

// Summary renders the final run summary.
func (t *StageTracker) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var totalInputTokens, totalOutputTokens int
	var totalCost float64
	var totalDuration time.Duration

	for _, stage := range t.stages {
		inputTokens := EstimateTokens(stage.InputChars)
		outputTokens := EstimateTokens(stage.OutputChars)
		totalInputTokens += inputTokens
		totalOutputTokens += outputTokens
		totalCost += EstimateCost(stage.Model, inputTokens, outputTokens)
		if stage.IsComplete {
			totalDuration += stage.EndTime.Sub(stage.StartTime)
		}
	}

	return fmt.Sprintf("\n%s\n  Stages: %d  Tokens: ~%s in / ~%s out  Est. cost: %s  Time: %s\n",
		TitleStyle.Render("Analysis Complete"),
		len(t.stages),
		FormatTokens(totalInputTokens),
		FormatTokens(totalOutputTokens),
		CostStyle.Render(FormatCost(totalCost)),
		totalDuration.Truncate(time.Second).String(),
	)
}
