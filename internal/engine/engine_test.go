package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelcode/godscan/pkg/thresholds"
)

func writeGoFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRun_HealthySmallClass(t *testing.T) {
	root := t.TempDir()
	writeGoFile(t, root, "small.go", `package small

type Widget struct{}

func (w *Widget) Name() string { return "widget" }
`)

	eng := New(nil, thresholds.Default())
	_, report, err := eng.Run(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalFiles)
	assert.Equal(t, 1, report.TotalClasses)
	assert.Empty(t, report.GodFiles)
	assert.Empty(t, report.GodClasses)
	assert.Equal(t, []string{"Widget"}, report.HealthyClasses)
}

func TestRun_GodMethodByParameterCountOnly(t *testing.T) {
	root := t.TempDir()
	writeGoFile(t, root, "wide.go", `package wide

type Service struct{}

func (s *Service) DoThing(a, b, c, d, e, f, g int) int {
	return a + b + c + d + e + f + g
}
`)

	eng := New(nil, thresholds.Default())
	_, report, err := eng.Run(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, report.GodMethodClasses, 1)
	assert.Contains(t, report.GodMethodClasses[0].GodMethodNames, "DoThing")
	assert.Empty(t, report.GodClasses)
	assert.Equal(t, 1, report.TotalGodMethods)
	assert.Equal(t, []string{"Service.DoThing"}, report.GodMethodNames)
}

func TestRun_GodClassWithClustering(t *testing.T) {
	root := t.TempDir()
	var b strings.Builder
	b.WriteString("package god\n\ntype Everything struct{}\n\n")
	for i := 0; i < 25; i++ {
		b.WriteString("func (e *Everything) Method")
		b.WriteString(itoa(i))
		b.WriteString("() int { return ")
		b.WriteString(itoa(i))
		b.WriteString(" }\n")
	}
	writeGoFile(t, root, "god.go", b.String())

	th := thresholds.Default()
	th.MinClusterSize = 2
	eng := New(nil, th)
	_, report, err := eng.Run(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, report.GodClasses, 1)
	assert.Equal(t, "Everything", report.GodClasses[0].ClassName)
	assert.Contains(t, report.GodClasses[0].Violations[0], "method count")
}

func TestRun_GodFileByTooManyClasses(t *testing.T) {
	root := t.TempDir()
	writeGoFile(t, root, "many.go", `package many

type A struct{}
type B struct{}
type C struct{}
type D struct{}
`)

	eng := New(nil, thresholds.Default())
	_, report, err := eng.Run(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, report.GodFiles, 1)
	assert.Equal(t, 4, report.GodFiles[0].ClassCount)
}

func TestRun_EmptyDirectory(t *testing.T) {
	root := t.TempDir()
	eng := New(nil, thresholds.Default())
	_, report, err := eng.Run(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalFiles)
	assert.Equal(t, 0, report.TotalClasses)
	assert.Empty(t, report.GodFiles)
	assert.Empty(t, report.GodClasses)
}

func TestRun_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeGoFile(t, root, "a.go", "package a\n\ntype A struct{}\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := New(nil, thresholds.Default())
	_, _, err := eng.Run(ctx, root)
	assert.ErrorIs(t, err, ErrCancelled)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := ""
	for i > 0 {
		digits = string(rune('0'+i%10)) + digits
		i /= 10
	}
	return digits
}
