package extract

import (
	"regexp"

	"github.com/phobologic/codewiki/internal/model"
)

func init() {
	// Return-type-prefixed header: `int main(void)`. Coarse on purpose; it
	// also matches calls preceded by an identifier, which is accepted.
	register(patternStrategy{patterns: []pattern{
		{re: regexp.MustCompile(`\w+\s+(\w+)\s*\(([^)]*)\)`), nameGroup: 1, argsGroup: 2, kind: model.Function},
	}}, "c", "cpp")
}
