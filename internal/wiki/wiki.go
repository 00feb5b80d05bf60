// Package wiki renders generated documentation into a markdown file. The
// generated block is wrapped in sentinel comments so reruns update it in
// place without touching hand-written content around it.
package wiki

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/phobologic/codewiki/internal/model"
)

const (
	sentinelStart = "<!-- codewiki:start -->"
	sentinelEnd   = "<!-- codewiki:end -->"
)

// Render produces the full sentinel-wrapped wiki section: a generation
// header, the documentation text, and optionally the per-file detail
// appendix.
func Render(doc string, a *model.ProjectAnalysis, now time.Time, detail bool) string {
	var b strings.Builder

	b.WriteString("# Codebase Documentation\n\n")
	fmt.Fprintf(&b, "*Generated on %s*\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "*Total files: %d*\n\n", a.TotalFiles)
	b.WriteString(doc)

	if detail {
		b.WriteString("\n\n")
		b.WriteString(fileTree(a))
		b.WriteString("\n\n")
		b.WriteString(detailedAnalysis(a))
	}

	return sentinelStart + "\n" + strings.TrimRight(b.String(), "\n") + "\n" + sentinelEnd
}

// Write inserts section into the file at path, replacing an existing
// sentinel block or appending to existing content. Creates the file if it
// does not exist.
func Write(path, section string) error {
	existing, _ := os.ReadFile(path)
	updated := applySection(string(existing), section)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadExisting returns the current content of the wiki file, or "" when the
// file does not exist. Fed back into the generator as refinement context, so
// hand edits survive regeneration.
func ReadExisting(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// applySection inserts section into content, replacing an existing sentinel
// block if present or appending if not. It is a pure function for easy testing.
func applySection(content, section string) string {
	start := strings.Index(content, sentinelStart)
	end := strings.Index(content, sentinelEnd)

	if start >= 0 && end > start {
		return content[:start] + section + content[end+len(sentinelEnd):]
	}

	// Append, ensuring a blank line separator.
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + "\n" + section + "\n"
}
