package reporter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelcode/godscan/internal/engine"
)

func sampleReport() engine.Report {
	return engine.Report{
		TotalFiles:   3,
		TotalClasses: 4,
		GodFiles: []engine.GodFileEntry{
			{Path: "big.go", ClassCount: 5, TotalLines: 900, ViolationScore: 412, Violations: []string{"class count 5 exceeds limit 3"}},
		},
		GodClasses: []engine.GodClassEntry{
			{FilePath: "big.go", ClassName: "Everything", Violations: []string{"method count 25 exceeds limit 20"}, GodMethodNames: []string{"DoAll"}, ClusterCount: 2},
		},
		HealthyClasses:  []string{"Widget", "Gadget"},
		TotalGodMethods: 1,
		GodMethodNames:  []string{"Everything.DoAll"},
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatTOON, ParseFormat("toon"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat("unknown"))
}

func TestRenderJSON_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(), FormatJSON, false))

	var decoded engine.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded.TotalFiles)
	assert.Len(t, decoded.GodFiles, 1)
}

func TestRenderTOON_ProducesNonEmptyOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(), FormatTOON, false))
	assert.NotEmpty(t, buf.String())
}

func TestRenderText_IncludesTotalsAndGodEntries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(), FormatText, false))
	out := buf.String()
	assert.Contains(t, out, "files analyzed: 3")
	assert.Contains(t, out, "big.go")
	assert.Contains(t, out, "Everything")
	assert.Contains(t, out, "god methods: 1, healthy classes: 2")
}

func TestRenderText_NoGodObjectsFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, engine.Report{}, FormatText, false))
	out := buf.String()
	assert.Contains(t, out, "no god files found")
	assert.Contains(t, out, "no god classes found")
	assert.Contains(t, out, "no god methods found")
}
