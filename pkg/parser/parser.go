// Package parser extracts class- and method-level structural metrics from
// source files. It is polymorphic over language (spec.md §4.2): a Registry
// maps a file extension to the Parser implementation that owns it, and the
// Engine never branches on language itself.
package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kestrelcode/godscan/pkg/metrics"
)

// ErrIoError wraps a failure to read the source file.
var ErrIoError = errors.New("parser: io error")

// ErrParseError wraps an unrecoverable parse failure. Recoverable syntax
// errors are not reported this way — the parser instead returns whatever
// classes it could still recognize (spec.md §4.2).
var ErrParseError = errors.New("parser: parse error")

// Language identifies a supported source language.
type Language string

const (
	LangGo         Language = "go"
	LangPython     Language = "python"
	LangJava       Language = "java"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
	LangRuby       Language = "ruby"
	LangCSharp     Language = "csharp"
	LangUnknown    Language = "unknown"
)

// Parser is the capability set every language front end implements
// (spec.md §4.2).
type Parser interface {
	// ParseFile extracts the classes found in path. Fails with ErrIoError
	// if the file cannot be read, or ErrParseError if the source is
	// unrecoverable. An empty file yields an empty, non-nil slice.
	ParseFile(path string) ([]metrics.ClassMetrics, error)

	// SupportedExtensions returns the lowercased, dot-prefixed extensions
	// this parser recognizes (e.g. ".go").
	SupportedExtensions() []string
}

// Registry maps a recognized file extension to the Parser that owns it.
// The registry is read-only once built and safe to share across goroutines.
type Registry struct {
	byExt map[string]Parser
}

// NewRegistry builds a registry from the given parsers, indexing each by
// every extension it reports supporting. A later parser overwrites an
// earlier one for a shared extension.
func NewRegistry(parsers ...Parser) *Registry {
	r := &Registry{byExt: make(map[string]Parser)}
	for _, p := range parsers {
		for _, ext := range p.SupportedExtensions() {
			r.byExt[strings.ToLower(ext)] = p
		}
	}
	return r
}

// DefaultRegistry returns a Registry with one implementation registered per
// language this module supports out of the box.
func DefaultRegistry() *Registry {
	return NewRegistry(
		newGoParser(),
		newPythonParser(),
		newJavaParser(),
		newJavaScriptParser(),
		newTypeScriptParser(),
		newTSXParser(),
		newRubyParser(),
		newCSharpParser(),
	)
}

// Lookup returns the Parser registered for path's extension, or nil if none
// is registered.
func (r *Registry) Lookup(path string) Parser {
	ext := strings.ToLower(filepath.Ext(path))
	return r.byExt[ext]
}

// SupportedExtensions returns the set of every extension some registered
// parser recognizes. The TreeBuilder uses this to decide which files to
// include in the tree (spec.md §4.1: "the file-system extension -> parser
// lookup is total for all files admitted by the TreeBuilder").
func (r *Registry) SupportedExtensions() map[string]bool {
	exts := make(map[string]bool, len(r.byExt))
	for ext := range r.byExt {
		exts[ext] = true
	}
	return exts
}

// readSource reads path, translating a read failure into ErrIoError.
func readSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIoError, path, err)
	}
	return data, nil
}
