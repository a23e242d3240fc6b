package core

import (
	"reflect"
	"testing"
)

func TestGenerateHeuristicWireframe(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantScreens []string
		wantMatched []string
	}{
		{
			name:        "login only",
			text:        "Users must LOGIN before using the app.",
			wantScreens: []string{"Login Screen"},
			wantMatched: []string{"login"},
		},
		{
			name:        "login and checkout keep trigger order",
			text:        "checkout happens after login",
			wantScreens: []string{"Login Screen", "Payment Screen"},
			wantMatched: []string{"login", "payment"},
		},
		{
			name:        "register triggers signup",
			text:        "New users register with email.",
			wantScreens: []string{"Signup Screen"},
			wantMatched: []string{"signup"},
		},
		{
			name:        "success triggers confirmation",
			text:        "Show a success message at the end.",
			wantScreens: []string{"Confirmation Screen"},
			wantMatched: []string{"confirmation"},
		},
		{
			name:        "all four triggers",
			text:        "login, signup, payment, and a confirmation step",
			wantScreens: []string{"Login Screen", "Signup Screen", "Payment Screen", "Confirmation Screen"},
			wantMatched: []string{"login", "signup", "payment", "confirmation"},
		},
		{
			name:        "no triggers yields empty screens",
			text:        "A dashboard for viewing analytics.",
			wantScreens: []string{},
			wantMatched: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, matched := GenerateHeuristicWireframe(tt.text)

			if model == nil {
				t.Fatal("model = nil")
			}
			if model.Screens == nil {
				t.Fatal("Screens = nil, want empty slice")
			}

			var names []string
			for _, s := range model.Screens {
				names = append(names, s.Name)
			}
			if len(names) != len(tt.wantScreens) {
				t.Fatalf("screens = %v, want %v", names, tt.wantScreens)
			}
			for i, want := range tt.wantScreens {
				if names[i] != want {
					t.Errorf("screen[%d] = %q, want %q", i, names[i], want)
				}
			}

			if !reflect.DeepEqual(matched, tt.wantMatched) {
				t.Errorf("matched = %v, want %v", matched, tt.wantMatched)
			}
		})
	}
}

func TestGenerateHeuristicWireframeIdempotent(t *testing.T) {
	text := "login then payment"

	first, _ := GenerateHeuristicWireframe(text)
	second, _ := GenerateHeuristicWireframe(text)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated calls produced different models")
	}
}

func TestHeuristicLoginScreenComponents(t *testing.T) {
	model, _ := GenerateHeuristicWireframe("login")

	if len(model.Screens) != 1 {
		t.Fatalf("screens = %d, want 1", len(model.Screens))
	}
	comps := model.Screens[0].Components
	if len(comps) != 5 {
		t.Fatalf("components = %d, want 5", len(comps))
	}
	if comps[1].Label != "Password" || !comps[1].Secure {
		t.Errorf("password field = %+v, want secure Password TextField", comps[1])
	}
	if comps[2].Type != ComponentButton || comps[2].Style != "primary" {
		t.Errorf("sign-in button = %+v", comps[2])
	}
}

func TestHeuristicModelValidates(t *testing.T) {
	model, _ := GenerateHeuristicWireframe("login signup payment confirmation")
	if err := model.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
