package fileproc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFilesWithContext_AppliesFnToEveryFile(t *testing.T) {
	files := []string{"a.go", "b.go", "c.go"}
	results, errs := MapFilesWithContext(context.Background(), files, func(ctx context.Context, path string) (int, error) {
		return len(path), nil
	})

	require.Empty(t, errs)
	require.Len(t, results, 3)
	assert.Equal(t, 4, results["a.go"])
}

func TestMapFilesWithContext_CollectsPerFileErrors(t *testing.T) {
	boom := errors.New("boom")
	results, errs := MapFilesWithContext(context.Background(), []string{"ok.go", "bad.go"}, func(ctx context.Context, path string) (string, error) {
		if path == "bad.go" {
			return "", boom
		}
		return "fine", nil
	})

	assert.Len(t, results, 1)
	assert.Equal(t, "fine", results["ok.go"])
	require.Contains(t, errs, "bad.go")
	assert.ErrorIs(t, errs["bad.go"], boom)
}

func TestMapFilesWithContext_EmptyInput(t *testing.T) {
	results, errs := MapFilesWithContext(context.Background(), nil, func(ctx context.Context, path string) (int, error) {
		return 0, nil
	})
	assert.Empty(t, results)
	assert.Empty(t, errs)
}

func TestMapFilesWithContext_CancelledContextSkipsWork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	results, _ := MapFilesWithContext(ctx, []string{"a.go"}, func(ctx context.Context, path string) (int, error) {
		called = true
		return 0, nil
	})

	assert.Empty(t, results)
	_ = called
}
