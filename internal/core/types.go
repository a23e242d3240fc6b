package core

import (
	"encoding/json"
	"fmt"
)

// Known component type discriminants. The set is open: anything else
// decodes into an opaque component that keeps its attributes.
const (
	ComponentTextField    = "TextField"
	ComponentButton       = "Button"
	ComponentButtonGroup  = "ButtonGroup"
	ComponentLink         = "Link"
	ComponentText         = "Text"
	ComponentSwitch       = "Switch"
	ComponentDropdown     = "Dropdown"
	ComponentImageView    = "ImageView"
	ComponentVideoView    = "VideoView"
	ComponentAvatar       = "Avatar"
	ComponentProgress     = "Progress"
	ComponentSlider       = "Slider"
	ComponentTabs         = "Tabs"
	ComponentTable        = "Table"
	ComponentCard         = "Card"
	ComponentNotification = "Notification"
)

var knownComponentTypes = map[string]bool{
	ComponentTextField:    true,
	ComponentButton:       true,
	ComponentButtonGroup:  true,
	ComponentLink:         true,
	ComponentText:         true,
	ComponentSwitch:       true,
	ComponentDropdown:     true,
	ComponentImageView:    true,
	ComponentVideoView:    true,
	ComponentAvatar:       true,
	ComponentProgress:     true,
	ComponentSlider:       true,
	ComponentTabs:         true,
	ComponentTable:        true,
	ComponentCard:         true,
	ComponentNotification: true,
}

// IsKnownComponentType reports whether the renderer has a dedicated
// widget for this discriminant.
func IsKnownComponentType(t string) bool {
	return knownComponentTypes[t]
}

// Component is a polymorphic UI element keyed by the "type"
// discriminant. Common attributes get struct fields; everything else
// is preserved in Attrs so unknown component kinds survive a
// decode/encode round trip.
type Component struct {
	Type        string
	Label       string
	Placeholder string
	Secure      bool
	Options     []string
	Style       string
	Action      string

	// Attrs holds attributes with no dedicated field.
	Attrs map[string]interface{}
}

// componentFields are the JSON keys lifted into struct fields.
var componentFields = map[string]bool{
	"type": true, "label": true, "placeholder": true, "secure": true,
	"options": true, "style": true, "action": true,
}

// UnmarshalJSON decodes a component, keeping unrecognized attributes.
func (c *Component) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if t, ok := raw["type"].(string); ok {
		c.Type = t
	}
	if l, ok := raw["label"].(string); ok {
		c.Label = l
	}
	if p, ok := raw["placeholder"].(string); ok {
		c.Placeholder = p
	}
	if s, ok := raw["secure"].(bool); ok {
		c.Secure = s
	}
	if s, ok := raw["style"].(string); ok {
		c.Style = s
	}
	if a, ok := raw["action"].(string); ok {
		c.Action = a
	}
	if v, ok := raw["options"]; ok {
		if strs, ok := stringSlice(v); ok {
			c.Options = strs
		} else {
			// Not a string array; keep the raw value so the
			// round trip stays lossless.
			if c.Attrs == nil {
				c.Attrs = make(map[string]interface{})
			}
			c.Attrs["options"] = v
		}
	}

	for k, v := range raw {
		if componentFields[k] {
			continue
		}
		if c.Attrs == nil {
			c.Attrs = make(map[string]interface{})
		}
		c.Attrs[k] = v
	}

	return nil
}

// stringSlice converts a decoded JSON value to []string, reporting
// whether every element was a string.
func stringSlice(v interface{}) ([]string, bool) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	strs := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		strs = append(strs, s)
	}
	return strs, true
}

// MarshalJSON re-merges the struct fields with the preserved attributes.
func (c Component) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Attrs)+7)
	for k, v := range c.Attrs {
		out[k] = v
	}

	out["type"] = c.Type
	if c.Label != "" {
		out["label"] = c.Label
	}
	if c.Placeholder != "" {
		out["placeholder"] = c.Placeholder
	}
	if c.Secure {
		out["secure"] = true
	}
	if len(c.Options) > 0 {
		out["options"] = c.Options
	}
	if c.Style != "" {
		out["style"] = c.Style
	}
	if c.Action != "" {
		out["action"] = c.Action
	}

	return json.Marshal(out)
}

// Screen is one screen of the inferred UI.
type Screen struct {
	Name       string      `json:"name"`
	Components []Component `json:"components"`
}

// Edge is a directed transition between screens, by screen index.
// Cycles are allowed; out-of-range indices are not.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// AlternativePath is a free-text side flow the generator surfaced.
type AlternativePath struct {
	Name string `json:"name"`
	Flow string `json:"flow"`
}

// WireframeModel is the structured screens/components/edges object
// representing the inferred UI layout.
type WireframeModel struct {
	Screens          []Screen          `json:"screens"`
	Edges            []Edge            `json:"edges,omitempty"`
	AlternativePaths []AlternativePath `json:"alternative_paths,omitempty"`
}

// Validate checks the WireframeModel for consistency. Every edge
// endpoint must reference an existing screen index.
func (m *WireframeModel) Validate() error {
	for i, screen := range m.Screens {
		if screen.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("screens[%d].name", i), Message: "required"}
		}
	}
	for i, edge := range m.Edges {
		if edge.From < 0 || edge.From >= len(m.Screens) {
			return &ValidationError{
				Field:   fmt.Sprintf("edges[%d].from", i),
				Message: fmt.Sprintf("screen index %d out of range (have %d screens)", edge.From, len(m.Screens)),
			}
		}
		if edge.To < 0 || edge.To >= len(m.Screens) {
			return &ValidationError{
				Field:   fmt.Sprintf("edges[%d].to", i),
				Message: fmt.Sprintf("screen index %d out of range (have %d screens)", edge.To, len(m.Screens)),
			}
		}
	}
	return nil
}

// PipelineResult is the aggregate output of one analysis. It is
// constructed once per request and either fully populated or the
// request fails; no partial results.
type PipelineResult struct {
	SummarizedText string          `json:"summarized_text"`
	UserFlows      string          `json:"user_flows"`
	UIComponents   []string        `json:"ui_components"`
	MermaidCode    string          `json:"mermaid_code"`
	Wireframes     *WireframeModel `json:"wireframes"`
}

// AnalyzeConfig configures one Analyzer.
type AnalyzeConfig struct {
	// HeuristicWireframe generates wireframes from keyword templates
	// instead of the LLM (cheaper, never fails).
	HeuristicWireframe bool `yaml:"heuristic_wireframe"`

	// WireframeFromSummary feeds the wireframe prompt the summary
	// instead of the raw PRD text. Forces the wireframe stage to wait
	// for the summarizer.
	WireframeFromSummary bool `yaml:"wireframe_from_summary"`

	// Progress receives stage lifecycle events. Optional.
	Progress StageObserver `yaml:"-"`
}

// StageObserver receives stage lifecycle notifications for display.
type StageObserver interface {
	StageStart(name string, inputChars int)
	StageDone(name string, outputChars int)
}

// DefaultAnalyzeConfig returns sensible defaults.
func DefaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{}
}
