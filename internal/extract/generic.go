package extract

import (
	"regexp"

	"github.com/phobologic/codewiki/internal/model"
)

// genericRe matches the function-introducer keywords shared by many
// languages. Exactly one of the four groups captures the name.
var genericRe = regexp.MustCompile(`def\s+(\w+)|function\s+(\w+)|fn\s+(\w+)|fun\s+(\w+)`)

// genericStrategy is the default heuristic for languages with no dedicated
// pattern family (rust, go, php, ruby, and anything unrecognized).
type genericStrategy struct{}

func (genericStrategy) Functions(text string) []model.FunctionRecord {
	var records []model.FunctionRecord
	for _, m := range genericRe.FindAllStringSubmatchIndex(text, -1) {
		name := "unknown"
		for g := 1; g <= 4; g++ {
			if m[2*g] >= 0 {
				name = text[m[2*g]:m[2*g+1]]
				break
			}
		}
		records = append(records, model.FunctionRecord{
			Name: name,
			Line: lineAt(text, m[0]),
			Kind: model.Function,
		})
	}
	return records
}

func init() {
	register(genericStrategy{}, "rust", "go", "php", "ruby")
}
