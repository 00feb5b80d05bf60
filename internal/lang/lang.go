// Package lang provides a language registry mapping file extensions to
// supported languages.
package lang

import "sync"

// Language describes a supported source language.
type Language struct {
	Name       string
	Extensions []string
}

// Languages maps language names to their configuration.
// Populated by init() in languages.go.
var Languages = map[string]*Language{}

// extensionMap is built lazily after all init() functions have run.
var extensionMap map[string]string
var extensionOnce sync.Once

func getExtensionMap() map[string]string {
	extensionOnce.Do(func() {
		extensionMap = make(map[string]string)
		for _, l := range Languages {
			for _, ext := range l.Extensions {
				extensionMap[ext] = l.Name
			}
		}
	})
	return extensionMap
}

// ForExtension returns the language name for a file extension, or "" if the
// extension is unsupported. Callers skip files with no language; an
// unsupported extension is not an error.
func ForExtension(ext string) string {
	return getExtensionMap()[ext]
}
