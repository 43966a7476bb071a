package engine

import (
	"github.com/kestrelcode/godscan/pkg/detector"
	"github.com/kestrelcode/godscan/pkg/tree"
)

// Report is the flattened summary of a full analysis run (spec.md §4.5):
// totals plus the enumerated lists a CLI or MCP tool renders.
type Report struct {
	TotalFiles   int
	TotalClasses int

	GodFiles         []GodFileEntry
	GodClasses       []GodClassEntry
	GodMethodClasses []GodClassEntry // god methods present, but class itself is not a god class
	HealthyClasses   []string        // qualified names

	TotalGodMethods int      // count of every flagged method, across GodClasses and GodMethodClasses
	GodMethodNames  []string // "ClassName.MethodName", same scope as TotalGodMethods
}

// GodFileEntry names a file that was itself flagged as a god file.
type GodFileEntry struct {
	Path           string
	ClassCount     int
	TotalLines     int
	ViolationScore int
	Violations     []string
}

// GodClassEntry names a flagged class plus its enclosing file, its god
// methods, and the number of its suggested extraction clusters.
type GodClassEntry struct {
	FilePath       string
	ClassName      string
	Violations     []string
	GodMethodNames []string
	ClusterCount   int
}

// buildReport walks the enriched tree once, sequentially, folding every
// File node's FileOutcome into the flat totals (spec.md §4.5).
func buildReport(root *tree.TreeNode) Report {
	var report Report

	tree.Walk(root, func(n *tree.TreeNode) bool {
		if !n.IsFile() || n.Outcome == nil {
			return true
		}
		outcome, ok := n.Outcome.(FileOutcome)
		if !ok || outcome.ParseErr != nil {
			return true
		}

		report.TotalFiles++
		report.TotalClasses += len(outcome.Classes)

		if outcome.FileVerdict.IsGod {
			report.GodFiles = append(report.GodFiles, GodFileEntry{
				Path:           outcome.Path,
				ClassCount:     outcome.FileVerdict.ClassCount,
				TotalLines:     outcome.FileVerdict.TotalLines,
				ViolationScore: outcome.FileVerdict.ViolationScore,
				Violations:     detector.ViolationStrings(outcome.FileVerdict.Violations),
			})
		}

		for _, c := range outcome.Classes {
			flaggedMethods := godMethodNames(c)

			switch {
			case c.IsGodClass:
				report.GodClasses = append(report.GodClasses, GodClassEntry{
					FilePath:       outcome.Path,
					ClassName:      c.Metrics.QualifiedName,
					Violations:     detector.ViolationStrings(c.Violations),
					GodMethodNames: flaggedMethods,
					ClusterCount:   len(c.Clusters),
				})
			case len(flaggedMethods) > 0:
				report.GodMethodClasses = append(report.GodMethodClasses, GodClassEntry{
					FilePath:       outcome.Path,
					ClassName:      c.Metrics.QualifiedName,
					GodMethodNames: flaggedMethods,
				})
			default:
				report.HealthyClasses = append(report.HealthyClasses, c.Metrics.QualifiedName)
			}

			report.TotalGodMethods += len(flaggedMethods)
			for _, name := range flaggedMethods {
				report.GodMethodNames = append(report.GodMethodNames, c.Metrics.QualifiedName+"."+name)
			}
		}

		return true
	})

	return report
}

func godMethodNames(c ClassOutcome) []string {
	var names []string
	for _, m := range c.Methods {
		if m.IsGodMethod {
			names = append(names, m.Metrics.Name)
		}
	}
	return names
}
