// Package analyze walks a directory tree and aggregates per-file extraction
// results into a project-wide analysis.
package analyze

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sirupsen/logrus"

	"github.com/phobologic/codewiki/internal/extract"
	"github.com/phobologic/codewiki/internal/lang"
	"github.com/phobologic/codewiki/internal/model"
)

// ErrNoSourceFiles reports that the tree contained no files with a supported
// extension. Callers distinguish this from an analysis that succeeded on a
// real but structurally empty tree.
var ErrNoSourceFiles = errors.New("no supported source files found")

// ErrNotDirectory reports that the root path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

var skipDirs = map[string]struct{}{
	"__pycache__":   {},
	"node_modules":  {},
	".git":          {},
	".hg":           {},
	".svn":          {},
	"venv":          {},
	".venv":         {},
	"env":           {},
	".env":          {},
	"build":         {},
	"dist":          {},
	"target":        {},
	"vendor":        {},
	".tox":          {},
	".mypy_cache":   {},
	".ruff_cache":   {},
	".pytest_cache": {},
}

// Options configures an Analyzer. The zero value is usable.
type Options struct {
	// IgnorePatterns are extra glob patterns (slash-separated, relative to
	// root) excluded from the walk, in addition to .gitignore rules.
	IgnorePatterns []string

	// MaxFileSize skips files larger than this many bytes. 0 disables the
	// limit.
	MaxFileSize int64

	// Logger receives per-file warnings. Defaults to the standard logger.
	Logger logrus.FieldLogger

	// Progress, when set, is called after each file is processed.
	Progress func(done, total int, path string)
}

// Analyzer walks directory trees. The walk is strictly sequential: one file
// is fully read and analyzed before the next begins.
type Analyzer struct {
	opts    Options
	ignores []glob.Glob
	log     logrus.FieldLogger
}

// New creates an Analyzer, compiling any extra ignore patterns.
func New(opts Options) (*Analyzer, error) {
	a := &Analyzer{opts: opts, log: opts.Logger}
	if a.log == nil {
		a.log = logrus.StandardLogger()
	}
	for _, p := range opts.IgnorePatterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("ignore pattern %q: %w", p, err)
		}
		a.ignores = append(a.ignores, g)
	}
	return a, nil
}

// fileEntry is a discovered source file, pending analysis.
type fileEntry struct {
	path     string // relative to root
	language string
}

// AnalyzeDirectory analyzes every supported source file under root and
// returns the aggregate. A missing or non-directory root fails before any
// file is touched. A tree with no eligible files returns ErrNoSourceFiles.
// Individual unreadable files are logged and skipped, never fatal.
func (a *Analyzer) AnalyzeDirectory(root string) (*model.ProjectAnalysis, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	entries, err := a.discover(root)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoSourceFiles
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	analysis := &model.ProjectAnalysis{ProjectName: filepath.Base(abs)}

	for i, e := range entries {
		fr, err := a.analyzeFile(root, e)
		if err != nil {
			a.log.WithField("file", e.path).Warnf("skipping: %v", err)
		} else {
			analysis.Add(fr)
		}
		if a.opts.Progress != nil {
			a.opts.Progress(i+1, len(entries), e.path)
		}
	}

	// Totals are maintained incrementally by Add; recompute and verify.
	files, functions, classes := analysis.Recount()
	if files != analysis.TotalFiles || functions != analysis.TotalFunctions || classes != analysis.TotalClasses {
		return nil, fmt.Errorf("analysis totals inconsistent: %d/%d files, %d/%d functions, %d/%d classes",
			analysis.TotalFiles, files, analysis.TotalFunctions, functions, analysis.TotalClasses, classes)
	}

	return analysis, nil
}

// discover returns supported files under root in lexicographic path order.
func (a *Analyzer) discover(root string) ([]fileEntry, error) {
	gi := loadGitignore(root)

	var entries []fileEntry

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable subtrees
		}

		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}

		// Skip symlinks; a broken one would fail the read anyway.
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}
		if a.ignored(filepath.ToSlash(rel)) {
			return nil
		}

		langName := lang.ForExtension(filepath.Ext(name))
		if langName == "" {
			return nil
		}

		entries = append(entries, fileEntry{path: rel, language: langName})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].path < entries[j].path
	})

	return entries, nil
}

// analyzeFile reads one file and builds its record. Invalid UTF-8 is replaced
// rather than rejected; actual read failures are returned to the caller to
// log and skip.
func (a *Analyzer) analyzeFile(root string, e fileEntry) (model.FileRecord, error) {
	full := filepath.Join(root, e.path)

	if a.opts.MaxFileSize > 0 {
		if fi, err := os.Stat(full); err == nil && fi.Size() > a.opts.MaxFileSize {
			return model.FileRecord{}, fmt.Errorf("file exceeds %d bytes", a.opts.MaxFileSize)
		}
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return model.FileRecord{}, fmt.Errorf("reading file: %w", err)
	}

	content := strings.ToValidUTF8(string(data), "�")

	return model.FileRecord{
		Path:      e.path,
		Name:      filepath.Base(e.path),
		Language:  e.language,
		Content:   content,
		Functions: extract.Functions(content, e.language),
		Classes:   extract.Classes(content),
		Imports:   extract.Imports(content, e.language),
		LineCount: countLines(content),
	}, nil
}

func (a *Analyzer) ignored(rel string) bool {
	for _, g := range a.ignores {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
