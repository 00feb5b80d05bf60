package extract

import (
	"regexp"

	"github.com/phobologic/codewiki/internal/model"
)

func init() {
	register(patternStrategy{patterns: []pattern{
		{re: regexp.MustCompile(`function\s+(\w+)\s*\(([^)]*)\)`), nameGroup: 1, argsGroup: 2, kind: model.Function},
		{re: regexp.MustCompile(`const\s+(\w+)\s*=\s*\(([^)]*)\)\s*=>`), nameGroup: 1, argsGroup: 2, kind: model.Function},
		{re: regexp.MustCompile(`let\s+(\w+)\s*=\s*\(([^)]*)\)\s*=>`), nameGroup: 1, argsGroup: 2, kind: model.Function},
		// Bare name(args) { also matches control flow like if/for; accepted.
		{re: regexp.MustCompile(`(\w+)\s*\(([^)]*)\)\s*\{`), nameGroup: 1, argsGroup: 2, kind: model.Function},
	}}, "javascript", "typescript")
}
