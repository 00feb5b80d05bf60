// Package extract turns raw source text into function, class, and import
// records. Extraction is heuristic: python gets a real parser (with a regex
// fallback when the parse fails), every other language gets one or more
// hand-written regular expression patterns. All operations are pure functions
// of (text, language); there is no I/O and no shared state.
package extract

import (
	"strings"

	"github.com/phobologic/codewiki/internal/model"
)

// Strategy extracts function records for one language family.
type Strategy interface {
	Functions(text string) []model.FunctionRecord
}

// strategies maps language names to their extraction strategy.
// Populated by init() functions in per-language files.
var strategies = map[string]Strategy{}

// register binds a strategy to one or more language names.
func register(s Strategy, languages ...string) {
	for _, l := range languages {
		strategies[l] = s
	}
}

// Functions extracts function declarations from text. Languages without a
// dedicated strategy fall through to a generic keyword heuristic; an unknown
// language yields whatever the generic heuristic finds, never an error.
func Functions(text, language string) []model.FunctionRecord {
	if s, ok := strategies[language]; ok {
		return s.Functions(text)
	}
	return genericStrategy{}.Functions(text)
}

// lineAt returns the 1-based line number of byte offset in text.
func lineAt(text string, offset int) int {
	return 1 + strings.Count(text[:offset], "\n")
}

// splitParams splits a captured argument substring on commas, trims
// whitespace, and drops empty segments.
func splitParams(args string) []string {
	var params []string
	for _, p := range strings.Split(args, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			params = append(params, p)
		}
	}
	return params
}
