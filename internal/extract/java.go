package extract

import (
	"regexp"

	"github.com/phobologic/codewiki/internal/model"
)

func init() {
	register(patternStrategy{patterns: []pattern{
		{re: regexp.MustCompile(`(public|private|protected)\s+\w+\s+(\w+)\s*\(([^)]*)\)`), nameGroup: 2, argsGroup: 3, kind: model.Method},
	}}, "java")
}
