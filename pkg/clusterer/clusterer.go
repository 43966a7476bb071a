// Package clusterer groups a god class's methods into suggested extraction
// targets using unsupervised k-means clustering over a TF-weighted token
// vocabulary plus normalized structural features (spec.md §4.4).
package clusterer

import (
	"math"
	"sort"

	"github.com/kestrelcode/godscan/pkg/metrics"
	"github.com/kestrelcode/godscan/pkg/thresholds"
)

// ResponsibilityCluster is a proposed extraction target: a cohesive subset
// of a god class's methods (spec.md §3).
type ResponsibilityCluster struct {
	SuggestedClassName string
	Methods            []string
	CohesionScore      float64
	SharedDependencies []string
	Justification      string
}

const maxKMeansIterations = 100

// Cluster produces responsibility clusters for a god class's methods,
// ordered by descending cohesion. Returns an empty slice if the class has
// fewer than t.MinClusterSize methods, per the guard in spec.md §4.4.
func Cluster(class metrics.ClassMetrics, t thresholds.Thresholds) []ResponsibilityCluster {
	methods := class.Methods
	if len(methods) < t.MinClusterSize {
		return []ResponsibilityCluster{}
	}

	vectors, _ := buildFeatureMatrix(methods)

	k := chooseK(vectors, t)
	labels, ok := runKMeans(vectors, k, maxKMeansIterations)
	if !ok {
		return []ResponsibilityCluster{}
	}

	groups := groupByLabel(labels, k)

	clusters := make([]ResponsibilityCluster, 0, len(groups))
	for _, indices := range groups {
		if len(indices) < t.MinClusterSize {
			continue
		}
		clusterMethods := make([]metrics.MethodMetrics, len(indices))
		for i, idx := range indices {
			clusterMethods[i] = methods[idx]
		}

		sharedDeps := sharedDependencies(clusterMethods)
		cohesion := cohesionScore(clusterMethods, sharedDeps)
		name := suggestClassName(clusterMethods, class.Name)
		justification := buildJustification(clusterMethods, sharedDeps)

		methodNames := make([]string, len(clusterMethods))
		for i, m := range clusterMethods {
			methodNames[i] = m.Name
		}

		clusters = append(clusters, ResponsibilityCluster{
			SuggestedClassName: name,
			Methods:            methodNames,
			CohesionScore:      cohesion,
			SharedDependencies: sharedDeps,
			Justification:      justification,
		})
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].CohesionScore > clusters[j].CohesionScore
	})

	return clusters
}

// chooseK implements the documented k-selection procedure of spec.md §4.4:
// n<=3 forces k=2; otherwise every candidate k in [2,kMax] is evaluated by
// WCSS and the minimizer is chosen, breaking ties toward the smaller k for
// determinism (see DESIGN.md on the open "elbow" question of §9 — this
// preserves the documented minimum-WCSS behavior rather than inventing a
// true elbow/silhouette test).
func chooseK(vectors [][]float64, t thresholds.Thresholds) int {
	n := len(vectors)
	if n <= 3 {
		return 2
	}
	kMax := int(math.Sqrt(float64(n)))
	if kMax > 5 {
		kMax = 5
	}
	if kMax < 2 {
		kMax = 2
	}

	bestK := 2
	bestWCSS := math.Inf(1)
	found := false
	for k := 2; k <= kMax; k++ {
		labels, ok := runKMeans(vectors, k, maxKMeansIterations)
		if !ok {
			continue
		}
		wcss := withinClusterSS(vectors, labels, k)
		if wcss < bestWCSS {
			bestWCSS = wcss
			bestK = k
			found = true
		}
	}
	if !found {
		return 2
	}
	return bestK
}

func groupByLabel(labels []int, k int) [][]int {
	groups := make([][]int, k)
	for i, lbl := range labels {
		groups[lbl] = append(groups[lbl], i)
	}
	var nonEmpty [][]int
	for _, g := range groups {
		if len(g) > 0 {
			nonEmpty = append(nonEmpty, g)
		}
	}
	return nonEmpty
}
