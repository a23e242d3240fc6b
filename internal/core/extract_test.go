package core

import "testing"

func TestExtractFenced(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		lang FenceLang
		want string
	}{
		{
			name: "strict mermaid fence",
			raw:  "Here is the diagram:\n```mermaid\ngraph TD\n  A --> B\n```\nDone.",
			lang: FenceMermaid,
			want: "graph TD\n  A --> B",
		},
		{
			name: "fence with trailing spaces after tag",
			raw:  "```mermaid   \ngraph LR\n  X --> Y\n```",
			lang: FenceMermaid,
			want: "graph LR\n  X --> Y",
		},
		{
			name: "json fence",
			raw:  "```json\n{\"screens\": []}\n```",
			lang: FenceJSON,
			want: `{"screens": []}`,
		},
		{
			name: "no fence falls back to whole trimmed text",
			raw:  "  graph TD\n  A --> B  \n",
			lang: FenceMermaid,
			want: "graph TD\n  A --> B",
		},
		{
			name: "first fence wins",
			raw:  "```json\n{\"a\": 1}\n```\nand also\n```json\n{\"b\": 2}\n```",
			lang: FenceJSON,
			want: `{"a": 1}`,
		},
		{
			name: "wrong language tag falls back",
			raw:  "```python\nprint('hi')\n```",
			lang: FenceJSON,
			want: "```python\nprint('hi')\n```",
		},
		{
			name: "empty input",
			raw:  "",
			lang: FenceJSON,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFenced(tt.raw, tt.lang)
			if got != tt.want {
				t.Errorf("ExtractFenced() = %q, want %q", got, tt.want)
			}
		})
	}
}
