package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelcode/godscan/pkg/metrics"
	"github.com/kestrelcode/godscan/pkg/thresholds"
)

func TestIsGodClass_Healthy(t *testing.T) {
	c := metrics.ClassMetrics{Name: "Widget", Lines: 50, MethodCount: 5, Complexity: 10}
	isGod, violations := IsGodClass(c, thresholds.Default())
	assert.False(t, isGod)
	assert.Empty(t, violations)
}

func TestIsGodClass_ExceedsLines(t *testing.T) {
	th := thresholds.Default()
	c := metrics.ClassMetrics{Name: "Big", Lines: th.MaxClassLines + 1, MethodCount: 1, Complexity: 1}
	isGod, violations := IsGodClass(c, th)
	require.True(t, isGod)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationLines, violations[0].Kind)
	assert.Equal(t, th.MaxClassLines+1, violations[0].Actual)
}

func TestIsGodClass_MultipleViolations(t *testing.T) {
	th := thresholds.Default()
	c := metrics.ClassMetrics{
		Name:        "Everything",
		Lines:       th.MaxClassLines + 10,
		MethodCount: th.MaxMethods + 1,
		Complexity:  th.MaxClassComplexity + 5,
	}
	isGod, violations := IsGodClass(c, th)
	assert.True(t, isGod)
	assert.Len(t, violations, 3)
}

func TestIsGodMethod_ScoreFormula(t *testing.T) {
	th := thresholds.Default()
	m := metrics.MethodMetrics{
		Name:       "DoEverything",
		Lines:      th.MaxMethodLines + 10,
		Complexity: th.MaxMethodComplexity + 3,
		Parameters: make([]string, th.MaxMethodParameters+2),
	}
	isGod, violations, score := IsGodMethod(m, th)
	require.True(t, isGod)
	require.Len(t, violations, 3)

	expected := (m.Lines-th.MaxMethodLines)*1 + (m.Complexity-th.MaxMethodComplexity)*2 + (m.ParameterCount()-th.MaxMethodParameters)*1
	assert.Equal(t, expected, score)
}

func TestIsGodMethod_Healthy(t *testing.T) {
	isGod, violations, score := IsGodMethod(metrics.MethodMetrics{Name: "get", Lines: 3, Complexity: 1}, thresholds.Default())
	assert.False(t, isGod)
	assert.Empty(t, violations)
	assert.Zero(t, score)
}

func TestIsGodMethod_ParameterCountOnly(t *testing.T) {
	th := thresholds.Default()
	m := metrics.MethodMetrics{
		Name:       "manyArgs",
		Lines:      1,
		Complexity: 1,
		Parameters: make([]string, th.MaxMethodParameters+3),
	}
	isGod, violations, score := IsGodMethod(m, th)
	require.True(t, isGod)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationParameterCount, violations[0].Kind)
	assert.Equal(t, 3, score)
}

func TestEvaluateFile_PermutationInvariant(t *testing.T) {
	th := thresholds.Default()
	classes := []metrics.ClassMetrics{
		{Name: "A", Lines: th.MaxFileLines / 2},
		{Name: "B", Lines: th.MaxFileLines/2 + 10},
		{Name: "C", Lines: 5},
		{Name: "D", Lines: 5},
	}
	verdict1 := EvaluateFile(classes, th)

	reordered := []metrics.ClassMetrics{classes[3], classes[1], classes[0], classes[2]}
	verdict2 := EvaluateFile(reordered, th)

	assert.Equal(t, verdict1.IsGod, verdict2.IsGod)
	assert.Equal(t, verdict1.TotalLines, verdict2.TotalLines)
	assert.Equal(t, verdict1.ViolationScore, verdict2.ViolationScore)
}

func TestEvaluateFile_TooManyClasses(t *testing.T) {
	th := thresholds.Default()
	classes := make([]metrics.ClassMetrics, th.MaxClassesPerFile+2)
	for i := range classes {
		classes[i] = metrics.ClassMetrics{Name: "C", Lines: 1}
	}
	verdict := EvaluateFile(classes, th)
	assert.True(t, verdict.IsGod)
	assert.Equal(t, (th.MaxClassesPerFile+2-th.MaxClassesPerFile)*5, verdict.ViolationScore)
}

func TestEvaluateFile_Empty(t *testing.T) {
	verdict := EvaluateFile(nil, thresholds.Default())
	assert.False(t, verdict.IsGod)
	assert.Equal(t, 0, verdict.ClassCount)
	assert.Equal(t, 0, verdict.TotalLines)
}

func TestViolationString(t *testing.T) {
	v := Violation{Kind: ViolationComplexity, Actual: 15, Threshold: 10}
	assert.Equal(t, "complexity 15 exceeds limit 10", v.String())
}

func TestViolationStrings(t *testing.T) {
	violations := []Violation{
		{Kind: ViolationLines, Actual: 10, Threshold: 5},
		{Kind: ViolationMethodCount, Actual: 3, Threshold: 2},
	}
	out := ViolationStrings(violations)
	require.Len(t, out, 2)
	assert.Contains(t, out[0], "lines")
	assert.Contains(t, out[1], "method count")
}
