package extract

import (
	"regexp"

	"github.com/phobologic/codewiki/internal/model"
)

// pattern is a single regular expression recognizing a function declaration
// shape. nameGroup and argsGroup are 1-based submatch indexes; argsGroup of 0
// means the pattern captures no parameter list.
type pattern struct {
	re        *regexp.Regexp
	nameGroup int
	argsGroup int
	kind      model.FunctionKind
}

// patternStrategy runs each of its patterns independently over the full text
// and concatenates all matches. Overlapping patterns can report the same
// declaration more than once; duplicates are accepted as-is, deliberately.
// Deduplicating would change observable output for no accuracy gain.
type patternStrategy struct {
	patterns []pattern
}

func (s patternStrategy) Functions(text string) []model.FunctionRecord {
	var records []model.FunctionRecord
	for _, p := range s.patterns {
		for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
			rec := model.FunctionRecord{
				Name: text[m[2*p.nameGroup]:m[2*p.nameGroup+1]],
				Line: lineAt(text, m[0]),
				Kind: p.kind,
			}
			if p.argsGroup > 0 && m[2*p.argsGroup] >= 0 {
				rec.Params = splitParams(text[m[2*p.argsGroup]:m[2*p.argsGroup+1]])
			}
			records = append(records, rec)
		}
	}
	return records
}
