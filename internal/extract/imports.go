package extract

import (
	"regexp"
	"strings"
)

// importRes holds per-language import patterns, each anchored to line start.
// Languages without an entry yield no imports.
var importRes = map[string]*regexp.Regexp{
	"python":     regexp.MustCompile(`(?m)^(?:import|from)\s+\w+`),
	"javascript": regexp.MustCompile(`(?m)^import\s+.*from\s+['"][^'"]+['"]`),
	"typescript": regexp.MustCompile(`(?m)^import\s+.*from\s+['"][^'"]+['"]`),
	"java":       regexp.MustCompile(`(?m)^import\s+[^;]+;`),
	"go":         regexp.MustCompile(`(?m)^import\s+(?:\w+\s+)?"[^"]+"`),
	"rust":       regexp.MustCompile(`(?m)^use\s+[\w:]+`),
	"ruby":       regexp.MustCompile(`(?m)^require(?:_relative)?\s+['"][^'"]+['"]`),
	"php":        regexp.MustCompile(`(?m)^(?:use|require|include)\s+[^;]+;`),
	"c":          regexp.MustCompile(`(?m)^#include\s+[<"][^>"]+[>"]`),
	"cpp":        regexp.MustCompile(`(?m)^#include\s+[<"][^>"]+[>"]`),
}

// Imports extracts import statements for a language, in document order.
// Each match is the full matched text, trimmed.
func Imports(text, language string) []string {
	re, ok := importRes[language]
	if !ok {
		return nil
	}
	var imports []string
	for _, m := range re.FindAllString(text, -1) {
		imports = append(imports, strings.TrimSpace(m))
	}
	return imports
}
