package extract

import (
	"regexp"

	"github.com/phobologic/codewiki/internal/model"
)

// classRe matches a class-introducer keyword followed by an identifier. The
// same pattern serves every language; there is no per-language class grammar.
var classRe = regexp.MustCompile(`class\s+(\w+)`)

// Classes extracts class declarations from text, in document order.
func Classes(text string) []model.ClassRecord {
	var records []model.ClassRecord
	for _, m := range classRe.FindAllStringSubmatchIndex(text, -1) {
		records = append(records, model.ClassRecord{
			Name: text[m[2]:m[3]],
			Line: lineAt(text, m[0]),
		})
	}
	return records
}
