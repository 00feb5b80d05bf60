package summary

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/dominikbraun/graph"

	"github.com/phobologic/codewiki/internal/model"
)

// ImportGraph renders a best-effort file-level dependency listing: an edge
// from A to B when an import line in A mentions B's base name. Heuristic in
// the same spirit as the extractor; a module named like a stdlib package will
// produce spurious edges and that is accepted. Returns "" when no edges were
// found.
func ImportGraph(a *model.ProjectAnalysis) string {
	// stem ("util" for lib/util.py) → defining files
	stems := make(map[string][]string)
	for i := range a.Files {
		f := &a.Files[i]
		stem := strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
		if stem != "" {
			stems[stem] = append(stems[stem], f.Path)
		}
	}

	g := graph.New(graph.StringHash, graph.Directed())
	for i := range a.Files {
		_ = g.AddVertex(a.Files[i].Path)
	}

	edges := 0
	for i := range a.Files {
		f := &a.Files[i]
		for _, imp := range f.Imports {
			for _, token := range tokenize(imp) {
				for _, target := range stems[token] {
					if target == f.Path {
						continue
					}
					// Duplicate edges are fine to drop here; the
					// rendering is a set of arrows, not a count.
					if err := g.AddEdge(f.Path, target); err == nil {
						edges++
					}
				}
			}
		}
	}
	if edges == 0 {
		return ""
	}

	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return ""
	}

	var lines []string
	for source, targets := range adjacency {
		for target := range targets {
			lines = append(lines, fmt.Sprintf("%s -> %s", source, target))
		}
	}
	sort.Strings(lines)

	return strings.Join(lines, "\n")
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}
