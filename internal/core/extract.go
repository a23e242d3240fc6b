package core

import (
	"regexp"
	"strings"
	"sync"
)

// FenceLang selects which fenced-block language tag to extract.
type FenceLang string

const (
	FenceMermaid FenceLang = "mermaid"
	FenceJSON    FenceLang = "json"
)

var (
	fenceOnce sync.Once
	fenceRe   map[FenceLang]*regexp.Regexp
)

func fencePatterns() map[FenceLang]*regexp.Regexp {
	fenceOnce.Do(func() {
		fenceRe = make(map[FenceLang]*regexp.Regexp)
		for _, lang := range []FenceLang{FenceMermaid, FenceJSON} {
			// Accepts the strict "```lang\n...\n```" form and looser
			// variants where any whitespace follows the language tag.
			fenceRe[lang] = regexp.MustCompile("(?s)```" + string(lang) + `\s+(.*?)\s*` + "```")
		}
	})
	return fenceRe
}

// ExtractFenced locates the first fenced block tagged with the given
// language and returns its inner content, trimmed. When no fence is
// found the whole trimmed text is returned as a best-effort payload;
// failure is deferred to the parse stage.
func ExtractFenced(raw string, lang FenceLang) string {
	if m := fencePatterns()[lang].FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}
