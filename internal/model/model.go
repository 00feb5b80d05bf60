// Package model defines core data structures for codewiki.
package model

import "sort"

// FunctionKind distinguishes free functions from methods.
type FunctionKind string

const (
	Function FunctionKind = "function"
	Method   FunctionKind = "method"
)

// FunctionRecord represents a single function or method declaration found in
// a source file. Line is 1-based. Params holds parameter names in declaration
// order. Doc is the attached documentation string, empty when none was found.
type FunctionRecord struct {
	Name   string       `json:"name"`
	Line   int          `json:"line"`
	Params []string     `json:"params,omitempty"`
	Doc    string       `json:"doc,omitempty"`
	Kind   FunctionKind `json:"kind"`
}

// ClassRecord represents a class declaration. Line is 1-based.
type ClassRecord struct {
	Name string `json:"name"`
	Line int    `json:"line"`
}

// FileRecord holds the extraction results for a single source file.
// Built once during the walk, never mutated afterwards.
type FileRecord struct {
	Path      string           `json:"path"` // relative to the analyzed root
	Name      string           `json:"name"`
	Language  string           `json:"language"`
	Content   string           `json:"-"`
	Functions []FunctionRecord `json:"functions,omitempty"`
	Classes   []ClassRecord    `json:"classes,omitempty"`
	Imports   []string         `json:"imports,omitempty"`
	LineCount int              `json:"line_count"`
}

// ProjectAnalysis is the aggregate result of analyzing a directory tree.
type ProjectAnalysis struct {
	ProjectName    string       `json:"project_name"`
	Files          []FileRecord `json:"files"`
	TotalFiles     int          `json:"total_files"`
	TotalFunctions int          `json:"total_functions"`
	TotalClasses   int          `json:"total_classes"`
	Languages      []string     `json:"languages_used"` // sorted, unique
}

// Add appends a file record and updates the running totals by exactly the
// counts the record contributes.
func (a *ProjectAnalysis) Add(fr FileRecord) {
	a.Files = append(a.Files, fr)
	a.TotalFiles++
	a.TotalFunctions += len(fr.Functions)
	a.TotalClasses += len(fr.Classes)

	for _, l := range a.Languages {
		if l == fr.Language {
			return
		}
	}
	a.Languages = append(a.Languages, fr.Language)
	sort.Strings(a.Languages)
}

// Recount recomputes the totals from the file records. It must always agree
// with the incrementally maintained counters; the analyzer asserts this after
// every walk.
func (a *ProjectAnalysis) Recount() (files, functions, classes int) {
	files = len(a.Files)
	for i := range a.Files {
		functions += len(a.Files[i].Functions)
		classes += len(a.Files[i].Classes)
	}
	return files, functions, classes
}
