// Package detector implements the three pure, total, side-effect-free
// predicates that classify a class, a method, or a file's class list as
// "god" or not, and compute a violation score (spec.md §4.3).
package detector

import (
	"fmt"

	"github.com/kestrelcode/godscan/pkg/metrics"
	"github.com/kestrelcode/godscan/pkg/thresholds"
)

// ViolationKind names which structural fact a Violation reports.
type ViolationKind int

const (
	ViolationLines ViolationKind = iota
	ViolationComplexity
	ViolationMethodCount
	ViolationParameterCount
	ViolationClassesPerFile
)

// Violation is a single exceeded threshold, carrying both the structured
// numbers and a human-readable rendering (adopted from the original
// implementation's Violation{kind,actual,threshold}, SPEC_FULL.md).
type Violation struct {
	Kind      ViolationKind
	Actual    int
	Threshold int
}

func (v Violation) String() string {
	switch v.Kind {
	case ViolationLines:
		return fmt.Sprintf("lines %d exceeds limit %d", v.Actual, v.Threshold)
	case ViolationComplexity:
		return fmt.Sprintf("complexity %d exceeds limit %d", v.Actual, v.Threshold)
	case ViolationMethodCount:
		return fmt.Sprintf("method count %d exceeds limit %d", v.Actual, v.Threshold)
	case ViolationParameterCount:
		return fmt.Sprintf("parameter count %d exceeds limit %d", v.Actual, v.Threshold)
	case ViolationClassesPerFile:
		return fmt.Sprintf("class count %d exceeds limit %d", v.Actual, v.Threshold)
	default:
		return "unknown violation"
	}
}

// IsGodClass reports whether c exceeds any class-level threshold, along
// with the violations that triggered it (spec.md §4.3).
func IsGodClass(c metrics.ClassMetrics, t thresholds.Thresholds) (bool, []Violation) {
	var violations []Violation
	if c.Lines > t.MaxClassLines {
		violations = append(violations, Violation{ViolationLines, c.Lines, t.MaxClassLines})
	}
	if c.MethodCount > t.MaxMethods {
		violations = append(violations, Violation{ViolationMethodCount, c.MethodCount, t.MaxMethods})
	}
	if c.Complexity > t.MaxClassComplexity {
		violations = append(violations, Violation{ViolationComplexity, c.Complexity, t.MaxClassComplexity})
	}
	return len(violations) > 0, violations
}

// IsGodMethod reports whether m exceeds any method-level threshold, the
// violations that triggered it, and the nonnegative violation score.
func IsGodMethod(m metrics.MethodMetrics, t thresholds.Thresholds) (bool, []Violation, int) {
	var violations []Violation
	score := 0

	if m.Lines > t.MaxMethodLines {
		violations = append(violations, Violation{ViolationLines, m.Lines, t.MaxMethodLines})
		score += (m.Lines - t.MaxMethodLines) * 1
	}
	if m.Complexity > t.MaxMethodComplexity {
		violations = append(violations, Violation{ViolationComplexity, m.Complexity, t.MaxMethodComplexity})
		score += (m.Complexity - t.MaxMethodComplexity) * 2
	}
	paramCount := m.ParameterCount()
	if paramCount > t.MaxMethodParameters {
		violations = append(violations, Violation{ViolationParameterCount, paramCount, t.MaxMethodParameters})
		score += (paramCount - t.MaxMethodParameters) * 1
	}

	return len(violations) > 0, violations, score
}

// FileVerdict is the file-level classification of spec.md §3. Only
// meaningful when IsGod is true; construct via EvaluateFile.
type FileVerdict struct {
	IsGod          bool
	ClassCount     int
	TotalLines     int
	ClassNames     []string
	Violations     []Violation
	ViolationScore int
}

// EvaluateFile classifies a file's class list as god-or-not and computes
// its violation score (spec.md §4.3). Classes in any order produce the
// same verdict (spec.md §8, "isGodFile is preserved under permutation").
func EvaluateFile(classes []metrics.ClassMetrics, t thresholds.Thresholds) FileVerdict {
	totalLines := 0
	names := make([]string, 0, len(classes))
	for _, c := range classes {
		totalLines += c.Lines
		names = append(names, c.Name)
	}

	var violations []Violation
	score := 0

	if len(classes) > t.MaxClassesPerFile {
		violations = append(violations, Violation{ViolationClassesPerFile, len(classes), t.MaxClassesPerFile})
		score += (len(classes) - t.MaxClassesPerFile) * 5
	}
	if totalLines > t.MaxFileLines {
		violations = append(violations, Violation{ViolationLines, totalLines, t.MaxFileLines})
		score += (totalLines - t.MaxFileLines) * 1
	}

	return FileVerdict{
		IsGod:          len(violations) > 0,
		ClassCount:     len(classes),
		TotalLines:     totalLines,
		ClassNames:     names,
		Violations:     violations,
		ViolationScore: score,
	}
}

// ViolationStrings renders violations as the human-readable strings §4.3
// asks for.
func ViolationStrings(violations []Violation) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.String()
	}
	return out
}
