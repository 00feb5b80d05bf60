package wiki

import (
	"fmt"
	"strings"

	"github.com/phobologic/codewiki/internal/model"
)

// fileTree renders a fenced block listing every file with its functions.
func fileTree(a *model.ProjectAnalysis) string {
	lines := []string{"## File Tree", "", "```"}
	for i := range a.Files {
		f := &a.Files[i]
		lines = append(lines, f.Path)
		for _, fn := range f.Functions {
			lines = append(lines, fmt.Sprintf("  └── %s", fn.Name))
		}
	}
	lines = append(lines, "```")
	return strings.Join(lines, "\n")
}

// detailedAnalysis renders a per-file section with functions, docstrings,
// classes, and imports.
func detailedAnalysis(a *model.ProjectAnalysis) string {
	var parts []string
	parts = append(parts, "## Detailed Analysis")

	for i := range a.Files {
		f := &a.Files[i]
		parts = append(parts, fmt.Sprintf("\n### %s", f.Path))
		parts = append(parts, fmt.Sprintf("**Language:** %s — %d lines", f.Language, f.LineCount))

		if len(f.Functions) > 0 {
			parts = append(parts, "\n#### Functions")
			for _, fn := range f.Functions {
				parts = append(parts, fmt.Sprintf("- `%s` (line %d)", fn.Name, fn.Line))
				if fn.Doc != "" {
					parts = append(parts, fmt.Sprintf("  - *%s*", fn.Doc))
				}
			}
		}

		if len(f.Classes) > 0 {
			parts = append(parts, "\n#### Classes")
			for _, cl := range f.Classes {
				parts = append(parts, fmt.Sprintf("- `%s` (line %d)", cl.Name, cl.Line))
			}
		}

		if len(f.Imports) > 0 {
			parts = append(parts, "\n#### Imports")
			for _, imp := range f.Imports {
				parts = append(parts, fmt.Sprintf("- `%s`", imp))
			}
		}
	}

	return strings.Join(parts, "\n")
}
