package clusterer

import (
	"fmt"
	"strings"

	"github.com/kestrelcode/godscan/pkg/metrics"
)

// stopWords are verbs too generic to anchor a suggested class name
// (spec.md §4.4), matched case-insensitively.
var stopWords = map[string]bool{
	"get": true, "set": true, "add": true, "remove": true, "delete": true,
	"update": true, "create": true, "save": true, "load": true, "handle": true,
	"process": true, "execute": true, "run": true, "do": true, "is": true,
	"has": true, "can": true,
}

// sharedDependencies returns identifiers present in AccessedFields of at
// least ceil(|cluster|/2) of the cluster's methods, in first-appearance
// order.
func sharedDependencies(cluster []metrics.MethodMetrics) []string {
	counts := make(map[string]int)
	var order []string
	for _, m := range cluster {
		seenInMethod := make(map[string]bool)
		for _, f := range m.AccessedFields {
			if seenInMethod[f] {
				continue
			}
			seenInMethod[f] = true
			if counts[f] == 0 {
				order = append(order, f)
			}
			counts[f]++
		}
	}

	threshold := (len(cluster) + 1) / 2 // ceil(|cluster|/2)
	var shared []string
	for _, f := range order {
		if counts[f] >= threshold {
			shared = append(shared, f)
		}
	}
	return shared
}

// cohesionScore is |sharedDependencies| / mean(|accessedFields|+1) over the
// cluster, clamped to [0,1]; a singleton cluster scores 0.5 (spec.md §4.4).
func cohesionScore(cluster []metrics.MethodMetrics, sharedDeps []string) float64 {
	if len(cluster) == 1 {
		return 0.5
	}

	total := 0
	for _, m := range cluster {
		total += len(m.AccessedFields) + 1
	}
	mean := float64(total) / float64(len(cluster))
	if mean == 0 {
		return 0
	}

	score := float64(len(sharedDeps)) / mean
	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}
	return score
}

// suggestClassName tokenizes every method name in the cluster, drops stop
// words, and names the cluster after the two most frequent remaining
// tokens (ties broken by first appearance), suffixed with "Service". Falls
// back to "{parentClassName}Component" if no tokens survive (spec.md
// §4.4), grounded in the naming heuristic of dei-clustering's
// generate_cluster_name and shake551's suggestResponsibility.
func suggestClassName(cluster []metrics.MethodMetrics, parentClassName string) string {
	counts := make(map[string]int)
	var order []string

	for _, m := range cluster {
		for _, tok := range metrics.SplitIdentifier(m.Name) {
			if stopWords[tok] {
				continue
			}
			if counts[tok] == 0 {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	top := topTokens(order, counts, 2)
	if len(top) == 0 {
		return parentClassName + "Component"
	}

	var b strings.Builder
	for _, tok := range top {
		b.WriteString(capitalize(tok))
	}
	b.WriteString("Service")
	return b.String()
}

// topTokens returns the n highest-frequency tokens from order (already in
// first-appearance order), breaking ties by that order.
func topTokens(order []string, counts map[string]int, n int) []string {
	remaining := make([]string, len(order))
	copy(remaining, order)

	var top []string
	for len(top) < n && len(remaining) > 0 {
		bestIdx := 0
		for i := 1; i < len(remaining); i++ {
			if counts[remaining[i]] > counts[remaining[bestIdx]] {
				bestIdx = i
			}
		}
		top = append(top, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return top
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// buildJustification renders "Cohesive group of N method(s) (list up to
// five names) sharing dependencies on (list up to three shared deps)"
// per spec.md §4.4, grounded in dei-clustering's generate_justification.
func buildJustification(cluster []metrics.MethodMetrics, sharedDeps []string) string {
	names := make([]string, 0, len(cluster))
	for _, m := range cluster {
		names = append(names, m.Name)
		if len(names) == 5 {
			break
		}
	}

	deps := sharedDeps
	if len(deps) > 3 {
		deps = deps[:3]
	}

	if len(deps) == 0 {
		return fmt.Sprintf("Cohesive group of %d method(s): %s", len(cluster), strings.Join(names, ", "))
	}
	return fmt.Sprintf("Cohesive group of %d method(s): %s, sharing dependencies on %s",
		len(cluster), strings.Join(names, ", "), strings.Join(deps, ", "))
}
