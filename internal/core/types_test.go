package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestWireframeModelValidate(t *testing.T) {
	tests := []struct {
		name    string
		model   WireframeModel
		wantErr bool
	}{
		{
			name: "valid model with edges",
			model: WireframeModel{
				Screens: []Screen{{Name: "A"}, {Name: "B"}},
				Edges:   []Edge{{From: 0, To: 1}},
			},
			wantErr: false,
		},
		{
			name: "self edge is allowed",
			model: WireframeModel{
				Screens: []Screen{{Name: "A"}},
				Edges:   []Edge{{From: 0, To: 0}},
			},
			wantErr: false,
		},
		{
			name: "edge target out of range",
			model: WireframeModel{
				Screens: []Screen{{Name: "A"}},
				Edges:   []Edge{{From: 0, To: 3}},
			},
			wantErr: true,
		},
		{
			name: "negative edge source",
			model: WireframeModel{
				Screens: []Screen{{Name: "A"}},
				Edges:   []Edge{{From: -1, To: 0}},
			},
			wantErr: true,
		},
		{
			name: "empty screen name",
			model: WireframeModel{
				Screens: []Screen{{Name: ""}},
			},
			wantErr: true,
		},
		{
			name:    "empty model",
			model:   WireframeModel{},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("error = %v, want ValidationError", err)
				}
			}
		})
	}
}

func TestComponentRoundTripPreservesUnknownAttrs(t *testing.T) {
	in := `{"type": "Chart", "label": "Revenue", "series": ["q1", "q2"], "stacked": true}`

	var c Component
	if err := json.Unmarshal([]byte(in), &c); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if c.Type != "Chart" {
		t.Errorf("Type = %q", c.Type)
	}
	if c.Label != "Revenue" {
		t.Errorf("Label = %q", c.Label)
	}
	if IsKnownComponentType(c.Type) {
		t.Error("Chart should not be a known component type")
	}
	if c.Attrs["stacked"] != true {
		t.Errorf("Attrs = %v, unknown keys not preserved", c.Attrs)
	}

	out, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back map[string]interface{}
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-Unmarshal() error = %v", err)
	}
	if back["stacked"] != true {
		t.Errorf("round trip dropped stacked: %v", back)
	}
	if _, ok := back["series"]; !ok {
		t.Errorf("round trip dropped series: %v", back)
	}
}

func TestComponentDecodeKnownFields(t *testing.T) {
	in := `{"type": "ButtonGroup", "options": ["Bank", "Paypal"], "style": "primary", "action": "pay", "secure": false}`

	var c Component
	if err := json.Unmarshal([]byte(in), &c); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if c.Type != ComponentButtonGroup {
		t.Errorf("Type = %q", c.Type)
	}
	if len(c.Options) != 2 || c.Options[0] != "Bank" {
		t.Errorf("Options = %v", c.Options)
	}
	if c.Style != "primary" || c.Action != "pay" {
		t.Errorf("Style = %q, Action = %q", c.Style, c.Action)
	}
	if len(c.Attrs) != 0 {
		t.Errorf("Attrs = %v, known keys leaked into attrs", c.Attrs)
	}
}

func TestComponentOptionsNonStringPreserved(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{
			name: "mixed types in options array",
			in:   `{"type": "Dropdown", "options": ["One", 2, "Three"]}`,
		},
		{
			name: "options is an object",
			in:   `{"type": "Dropdown", "options": {"values": ["One"]}}`,
		},
		{
			name: "options is a scalar",
			in:   `{"type": "Dropdown", "options": 7}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Component
			if err := json.Unmarshal([]byte(tt.in), &c); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			if len(c.Options) != 0 {
				t.Errorf("Options = %v, non-string shape must not be lifted", c.Options)
			}
			if _, ok := c.Attrs["options"]; !ok {
				t.Fatalf("Attrs = %v, raw options value not preserved", c.Attrs)
			}

			out, err := json.Marshal(c)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var back map[string]interface{}
			if err := json.Unmarshal(out, &back); err != nil {
				t.Fatalf("re-Unmarshal() error = %v", err)
			}
			if _, ok := back["options"]; !ok {
				t.Errorf("round trip dropped options: %v", back)
			}
		})
	}
}

func TestIsKnownComponentType(t *testing.T) {
	for _, known := range []string{ComponentTextField, ComponentButton, ComponentTable, ComponentNotification} {
		if !IsKnownComponentType(known) {
			t.Errorf("IsKnownComponentType(%q) = false", known)
		}
	}
	for _, unknown := range []string{"textfield", "Chart", ""} {
		if IsKnownComponentType(unknown) {
			t.Errorf("IsKnownComponentType(%q) = true", unknown)
		}
	}
}
