// Package summary projects a ProjectAnalysis into bounded text digests for
// prompt construction and wiki rendering.
package summary

import (
	"fmt"
	"strings"

	"github.com/phobologic/codewiki/internal/model"
)

// Options bounds the size of a digest.
type Options struct {
	MaxFiles     int // files listed before the remainder note
	MaxFunctions int // function names listed per file
}

// DefaultOptions returns the standard digest bounds.
func DefaultOptions() Options {
	return Options{MaxFiles: 10, MaxFunctions: 5}
}

// Digest projects the analysis with default bounds.
func Digest(a *model.ProjectAnalysis) string {
	return DigestWith(a, DefaultOptions())
}

// DigestWith produces a bounded text block: project name, totals, languages,
// and at most opts.MaxFiles files each annotated with at most
// opts.MaxFunctions function names. When more files exist, a single trailing
// note carries the exact remainder count, so the downstream prompt never
// receives an unbounded payload.
func DigestWith(a *model.ProjectAnalysis, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s\n", a.ProjectName)
	fmt.Fprintf(&b, "Total Files: %d\n", a.TotalFiles)
	fmt.Fprintf(&b, "Languages: %s\n", strings.Join(a.Languages, ", "))
	fmt.Fprintf(&b, "Total Functions: %d\n", a.TotalFunctions)
	fmt.Fprintf(&b, "Total Classes: %d\n", a.TotalClasses)
	b.WriteString("\nMain Files:\n")

	limit := opts.MaxFiles
	if limit > len(a.Files) {
		limit = len(a.Files)
	}
	for i := 0; i < limit; i++ {
		f := &a.Files[i]
		fmt.Fprintf(&b, "\n- %s", f.Path)
		if len(f.Functions) > 0 {
			names := make([]string, 0, opts.MaxFunctions)
			for j, fn := range f.Functions {
				if j >= opts.MaxFunctions {
					break
				}
				names = append(names, fn.Name)
			}
			fmt.Fprintf(&b, " (Functions: %s)", strings.Join(names, ", "))
		}
	}

	if rest := len(a.Files) - limit; rest > 0 {
		fmt.Fprintf(&b, "\n... and %d more files", rest)
	}

	return b.String()
}
