package analyze

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestAnalyzer(t *testing.T, opts Options) *Analyzer {
	t.Helper()
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}
	a, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestAnalyzeDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "main.py", "def foo(x, y):\n    \"\"\"doc\"\"\"\n    pass\n\nclass Bar:\n    pass\n")
	writeFile(t, dir, "lib/util.js", "function helper(a) {\n}\n")
	writeFile(t, dir, "readme.txt", "not source")

	a := newTestAnalyzer(t, Options{})
	analysis, err := a.AnalyzeDirectory(dir)
	if err != nil {
		t.Fatalf("AnalyzeDirectory: %v", err)
	}

	if analysis.TotalFiles != 2 {
		t.Fatalf("total files = %d, want 2", analysis.TotalFiles)
	}

	// Lexicographic by relative path.
	if analysis.Files[0].Path != filepath.Join("lib", "util.js") {
		t.Errorf("file 0 = %q", analysis.Files[0].Path)
	}
	if analysis.Files[1].Path != "main.py" {
		t.Errorf("file 1 = %q", analysis.Files[1].Path)
	}

	if got := analysis.Languages; len(got) != 2 || got[0] != "javascript" || got[1] != "python" {
		t.Errorf("languages = %v, want [javascript python]", got)
	}

	py := analysis.Files[1]
	if len(py.Functions) != 1 || py.Functions[0].Name != "foo" {
		t.Errorf("python functions = %+v", py.Functions)
	}
	if len(py.Classes) != 1 || py.Classes[0].Name != "Bar" {
		t.Errorf("python classes = %+v", py.Classes)
	}
	if py.LineCount != 6 {
		t.Errorf("line count = %d, want 6", py.LineCount)
	}
}

// TestAnalyzeCountsConsistent verifies the core invariant: totals always
// equal the sum over file records.
func TestAnalyzeCountsConsistent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.py", "def one():\n    pass\n\ndef two():\n    pass\n")
	writeFile(t, dir, "b.py", "class C:\n    def m(self):\n        pass\n")
	writeFile(t, dir, "c.rb", "def three\nend\n")

	a := newTestAnalyzer(t, Options{})
	analysis, err := a.AnalyzeDirectory(dir)
	if err != nil {
		t.Fatalf("AnalyzeDirectory: %v", err)
	}

	files, functions, classes := analysis.Recount()
	if files != analysis.TotalFiles {
		t.Errorf("file totals disagree: %d vs %d", analysis.TotalFiles, files)
	}
	if functions != analysis.TotalFunctions {
		t.Errorf("function totals disagree: %d vs %d", analysis.TotalFunctions, functions)
	}
	if classes != analysis.TotalClasses {
		t.Errorf("class totals disagree: %d vs %d", analysis.TotalClasses, classes)
	}
	if analysis.TotalFunctions != 4 {
		t.Errorf("functions = %d, want 4", analysis.TotalFunctions)
	}
	if analysis.TotalClasses != 1 {
		t.Errorf("classes = %d, want 1", analysis.TotalClasses)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.py", "def f():\n    pass\n")
	writeFile(t, dir, "b/c.js", "const g = (x) => x;\n")

	a := newTestAnalyzer(t, Options{})
	first, err := a.AnalyzeDirectory(dir)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := a.AnalyzeDirectory(dir)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("runs differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// TestAnalyzeUndecodableBytes verifies that invalid byte sequences are
// replaced, not fatal: the file still produces a record.
func TestAnalyzeUndecodableBytes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
		writeFile(t, dir, name+".py", "def "+name+"():\n    pass\n")
	}
	bad := append([]byte("def ok():\n    pass\n# "), 0xff, 0xfe, 0xfd, '\n')
	if err := os.WriteFile(filepath.Join(dir, "weird.py"), bad, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	a := newTestAnalyzer(t, Options{})
	analysis, err := a.AnalyzeDirectory(dir)
	if err != nil {
		t.Fatalf("AnalyzeDirectory: %v", err)
	}

	if analysis.TotalFiles != 10 {
		t.Fatalf("total files = %d, want 10 (decoding with replacement)", analysis.TotalFiles)
	}

	files, functions, classes := analysis.Recount()
	if files != analysis.TotalFiles || functions != analysis.TotalFunctions || classes != analysis.TotalClasses {
		t.Error("totals do not reflect processed files")
	}
}

// TestAnalyzeOversizeFileSkipped verifies that a single skipped file does not
// abort the walk and leaves the totals reflecting only processed files.
func TestAnalyzeOversizeFileSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "small.py", "def f():\n    pass\n")
	writeFile(t, dir, "big.py", "# "+string(make([]byte, 4096))+"\n")

	a := newTestAnalyzer(t, Options{MaxFileSize: 1024})
	analysis, err := a.AnalyzeDirectory(dir)
	if err != nil {
		t.Fatalf("AnalyzeDirectory: %v", err)
	}

	if analysis.TotalFiles != 1 {
		t.Fatalf("total files = %d, want 1", analysis.TotalFiles)
	}
	if analysis.Files[0].Path != "small.py" {
		t.Errorf("kept %q, want small.py", analysis.Files[0].Path)
	}
}

func TestAnalyzeNoSourceFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "readme.txt", "nothing here")

	a := newTestAnalyzer(t, Options{})
	_, err := a.AnalyzeDirectory(dir)
	if !errors.Is(err, ErrNoSourceFiles) {
		t.Fatalf("err = %v, want ErrNoSourceFiles", err)
	}
}

func TestAnalyzeRootMissing(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(t, Options{})
	_, err := a.AnalyzeDirectory(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestAnalyzeRootNotDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "file.py", "pass")

	a := newTestAnalyzer(t, Options{})
	_, err := a.AnalyzeDirectory(filepath.Join(dir, "file.py"))
	if !errors.Is(err, ErrNotDirectory) {
		t.Fatalf("err = %v, want ErrNotDirectory", err)
	}
}

func TestAnalyzeSkipDirsAndHidden(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "main.py", "pass")
	writeFile(t, dir, "node_modules/pkg.js", "function x() {}")
	writeFile(t, dir, "__pycache__/cached.py", "pass")
	writeFile(t, dir, ".hidden/secret.py", "pass")
	writeFile(t, dir, ".dotfile.py", "pass")

	a := newTestAnalyzer(t, Options{})
	analysis, err := a.AnalyzeDirectory(dir)
	if err != nil {
		t.Fatalf("AnalyzeDirectory: %v", err)
	}
	if analysis.TotalFiles != 1 || analysis.Files[0].Path != "main.py" {
		t.Fatalf("files = %+v, want only main.py", analysis.Files)
	}
}

func TestAnalyzeGitignore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "generated.py\n")
	writeFile(t, dir, "main.py", "pass")
	writeFile(t, dir, "generated.py", "pass")

	a := newTestAnalyzer(t, Options{})
	analysis, err := a.AnalyzeDirectory(dir)
	if err != nil {
		t.Fatalf("AnalyzeDirectory: %v", err)
	}
	if analysis.TotalFiles != 1 || analysis.Files[0].Path != "main.py" {
		t.Fatalf("files = %+v, want only main.py", analysis.Files)
	}
}

func TestAnalyzeIgnorePatterns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "main.py", "pass")
	writeFile(t, dir, "gen/out.py", "pass")

	a := newTestAnalyzer(t, Options{IgnorePatterns: []string{"gen/**"}})
	analysis, err := a.AnalyzeDirectory(dir)
	if err != nil {
		t.Fatalf("AnalyzeDirectory: %v", err)
	}
	if analysis.TotalFiles != 1 || analysis.Files[0].Path != "main.py" {
		t.Fatalf("files = %+v, want only main.py", analysis.Files)
	}
}

func TestAnalyzeProgress(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.py", "pass")
	writeFile(t, dir, "b.py", "pass")

	var calls int
	var lastDone, lastTotal int
	a := newTestAnalyzer(t, Options{Progress: func(done, total int, path string) {
		calls++
		lastDone, lastTotal = done, total
	}})

	if _, err := a.AnalyzeDirectory(dir); err != nil {
		t.Fatalf("AnalyzeDirectory: %v", err)
	}
	if calls != 2 {
		t.Errorf("progress calls = %d, want 2", calls)
	}
	if lastDone != 2 || lastTotal != 2 {
		t.Errorf("final progress = %d/%d, want 2/2", lastDone, lastTotal)
	}
}
