package engine

import (
	"github.com/kestrelcode/godscan/pkg/clusterer"
	"github.com/kestrelcode/godscan/pkg/detector"
	"github.com/kestrelcode/godscan/pkg/metrics"
)

// MethodOutcome is a single method's detection verdict.
type MethodOutcome struct {
	Metrics        metrics.MethodMetrics
	IsGodMethod    bool
	Violations     []detector.Violation
	ViolationScore int
}

// ClassOutcome is a single class's detection verdict plus, when it is a god
// class, its suggested extraction clusters.
type ClassOutcome struct {
	Metrics    metrics.ClassMetrics
	IsGodClass bool
	Violations []detector.Violation
	Methods    []MethodOutcome
	Clusters   []clusterer.ResponsibilityCluster
}

// FileOutcome is the fully enriched per-file analysis attached to a File
// TreeNode. Fingerprint is a content hash computed for this run only; it is
// never persisted (spec.md Non-goals: no incremental/cached analysis).
type FileOutcome struct {
	Path        string
	Fingerprint string
	Classes     []ClassOutcome
	FileVerdict detector.FileVerdict
	ParseErr    error
}

// HasGodClass reports whether any class in the file is a god class.
func (f FileOutcome) HasGodClass() bool {
	for _, c := range f.Classes {
		if c.IsGodClass {
			return true
		}
	}
	return false
}

// HasGodMethodOnly reports whether the file has a class that is not itself
// a god class but has at least one god method; other classes in the file
// may be god classes (spec.md §4.5 report categories).
func (f FileOutcome) HasGodMethodOnly() bool {
	for _, c := range f.Classes {
		if c.IsGodClass {
			continue
		}
		for _, m := range c.Methods {
			if m.IsGodMethod {
				return true
			}
		}
	}
	return false
}
