package clusterer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelcode/godscan/pkg/metrics"
	"github.com/kestrelcode/godscan/pkg/thresholds"
)

func paymentMethod(name string) metrics.MethodMetrics {
	return metrics.MethodMetrics{
		Name:           name,
		Lines:          10,
		Complexity:     2,
		Tokens:         []string{"payment", "charge", "card"},
		AccessedFields: []string{"paymentGateway"},
	}
}

func reportMethod(name string) metrics.MethodMetrics {
	return metrics.MethodMetrics{
		Name:           name,
		Lines:          8,
		Complexity:     1,
		Tokens:         []string{"report", "export", "render"},
		AccessedFields: []string{"reportWriter"},
	}
}

func TestCluster_BelowMinSizeReturnsEmpty(t *testing.T) {
	th := thresholds.Default()
	class := metrics.ClassMetrics{Name: "Tiny", Methods: []metrics.MethodMetrics{paymentMethod("a")}}
	clusters := Cluster(class, th)
	assert.Empty(t, clusters)
}

func TestCluster_SeparatesTwoResponsibilities(t *testing.T) {
	th := thresholds.Default()
	th.MinClusterSize = 2
	class := metrics.ClassMetrics{
		Name: "GodOrder",
		Methods: []metrics.MethodMetrics{
			paymentMethod("chargePayment"),
			paymentMethod("refundPayment"),
			paymentMethod("validatePayment"),
			reportMethod("exportReport"),
			reportMethod("renderReport"),
			reportMethod("generateReport"),
		},
	}
	clusters := Cluster(class, th)
	require.NotEmpty(t, clusters)
	require.Len(t, clusters, 2)

	for i := 1; i < len(clusters); i++ {
		assert.GreaterOrEqual(t, clusters[i-1].CohesionScore, clusters[i].CohesionScore)
	}
	for _, c := range clusters {
		assert.GreaterOrEqual(t, len(c.Methods), th.MinClusterSize)
		assert.Len(t, c.Methods, 3)
		assert.NotEmpty(t, c.SuggestedClassName)
		assert.NotEmpty(t, c.Justification)
	}
}

func TestChooseK_SmallNAlwaysTwo(t *testing.T) {
	vectors := [][]float64{{0, 0}, {1, 1}, {2, 2}}
	assert.Equal(t, 2, chooseK(vectors, thresholds.Default()))
}

func TestChooseK_CapsAtFive(t *testing.T) {
	vectors := make([][]float64, 64)
	for i := range vectors {
		vectors[i] = []float64{float64(i), float64(i)}
	}
	k := chooseK(vectors, thresholds.Default())
	assert.LessOrEqual(t, k, 5)
	assert.GreaterOrEqual(t, k, 2)
}

func TestGroupByLabel_DropsEmptyGroups(t *testing.T) {
	groups := groupByLabel([]int{0, 0, 2}, 3)
	require.Len(t, groups, 2)
	assert.ElementsMatch(t, []int{0, 1}, groups[0])
	assert.Equal(t, []int{2}, groups[1])
}
