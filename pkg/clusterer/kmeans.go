package clusterer

import (
	"gonum.org/v1/gonum/floats"
)

// runKMeans implements Lloyd's algorithm with a k-means++ seeding scheme
// (spec.md §4.4). Returns the per-vector cluster label and false if the
// candidate k could not converge within maxIterations — such a k is
// skipped by the caller rather than chosen.
func runKMeans(vectors [][]float64, k int, maxIterations int) ([]int, bool) {
	n := len(vectors)
	if n == 0 || k <= 0 || k > n {
		return nil, false
	}

	centroids := seedCentroidsPlusPlus(vectors, k)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, v := range vectors {
			nearest := nearestCentroid(v, centroids)
			if nearest != labels[i] {
				labels[i] = nearest
				changed = true
			}
		}

		newCentroids := updateCentroids(vectors, labels, k, len(vectors[0]))
		centroids = newCentroids

		if !changed && iter > 0 {
			return labels, true
		}
	}

	// Ran to the iteration cap without a stable assignment pass: this k
	// did not converge.
	return nil, false
}

// seedCentroidsPlusPlus picks k initial centroids using k-means++: the
// first is the first vector (deterministic given a stable input order),
// each subsequent centroid is the vector farthest (by squared distance) from
// its nearest already-chosen centroid.
func seedCentroidsPlusPlus(vectors [][]float64, k int) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, cloneVec(vectors[0]))

	for len(centroids) < k {
		bestIdx := 0
		bestDist := -1.0
		for i, v := range vectors {
			d := nearestCentroidDistance(v, centroids)
			if d > bestDist {
				bestDist = d
				bestIdx = i
			}
		}
		centroids = append(centroids, cloneVec(vectors[bestIdx]))
	}
	return centroids
}

func nearestCentroidDistance(v []float64, centroids [][]float64) float64 {
	best := squaredDistance(v, centroids[0])
	for _, c := range centroids[1:] {
		d := squaredDistance(v, c)
		if d < best {
			best = d
		}
	}
	return best
}

func nearestCentroid(v []float64, centroids [][]float64) int {
	best := 0
	bestDist := squaredDistance(v, centroids[0])
	for i := 1; i < len(centroids); i++ {
		d := squaredDistance(v, centroids[i])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func updateCentroids(vectors [][]float64, labels []int, k, dim int) [][]float64 {
	sums := make([][]float64, k)
	counts := make([]int, k)
	for i := range sums {
		sums[i] = make([]float64, dim)
	}

	for i, v := range vectors {
		lbl := labels[i]
		floats.Add(sums[lbl], v)
		counts[lbl]++
	}

	centroids := make([][]float64, k)
	for i := range centroids {
		if counts[i] == 0 {
			// Empty cluster: its centroid falls back to the zero vector;
			// nearestCentroid routes a point to it only when it is closest.
			centroids[i] = make([]float64, dim)
			continue
		}
		c := make([]float64, dim)
		copy(c, sums[i])
		floats.Scale(1.0/float64(counts[i]), c)
		centroids[i] = c
	}
	return centroids
}

func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func cloneVec(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	return c
}

// withinClusterSS computes the within-cluster sum of squared Euclidean
// distances to centroids, used by chooseK to pick the minimizing k.
func withinClusterSS(vectors [][]float64, labels []int, k int) float64 {
	dim := len(vectors[0])
	centroids := updateCentroids(vectors, labels, k, dim)

	total := 0.0
	for i, v := range vectors {
		total += squaredDistance(v, centroids[labels[i]])
	}
	return total
}
