package version

import "testing"

func TestIsNewerVersion(t *testing.T) {
	tests := []struct {
		name    string
		latest  string
		current string
		want    bool
	}{
		{"equal versions", "0.1.0", "0.1.0", false},
		{"patch bump", "0.1.1", "0.1.0", true},
		{"minor bump resets patch", "0.2.0", "0.1.9", true},
		{"major bump", "2.0.0", "1.9.9", true},
		{"latest older than current", "0.1.0", "0.2.0", false},
		{"double-digit part compared numerically", "0.10.0", "0.9.0", true},
		{"extra trailing part is newer", "0.1.0.1", "0.1.0", true},
		{"prerelease suffix on newer minor", "1.2.0-rc1", "1.1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNewerVersion(tt.latest, tt.current); got != tt.want {
				t.Errorf("isNewerVersion(%q, %q) = %v, want %v", tt.latest, tt.current, got, tt.want)
			}
		})
	}
}

func TestParseVersionPart(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"3", 3},
		{"12", 12},
		{"0", 0},
		{"4-rc2", 4},
		{"beta", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseVersionPart(tt.input); got != tt.want {
				t.Errorf("parseVersionPart(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
