package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBuild_RecognizesOnlyGivenExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.go"), "package main")
	writeFile(t, filepath.Join(root, "readme.md"), "# hi")

	builder := NewBuilder(map[string]bool{".go": true})
	node, err := builder.Build(root)
	require.NoError(t, err)

	var files []string
	Walk(node, func(n *TreeNode) bool {
		if n.IsFile() {
			files = append(files, n.Name)
		}
		return true
	})
	assert.Equal(t, []string{"main.go"}, files)
}

func TestBuild_SkipsExcludedDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "app.go"), "package app")
	writeFile(t, filepath.Join(root, "node_modules", "vendor.go"), "package vendor")

	builder := NewBuilder(map[string]bool{".go": true})
	node, err := builder.Build(root)
	require.NoError(t, err)

	var files []string
	Walk(node, func(n *TreeNode) bool {
		if n.IsFile() {
			files = append(files, n.Path)
		}
		return true
	})
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "app.go")
}

func TestBuild_SkipsUserConfiguredExcludedDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "app.go"), "package app")
	writeFile(t, filepath.Join(root, "Generated", "codegen.go"), "package generated")

	builder := NewBuilderWithExclusions(map[string]bool{".go": true}, []string{"generated"})
	node, err := builder.Build(root)
	require.NoError(t, err)

	var files []string
	Walk(node, func(n *TreeNode) bool {
		if n.IsFile() {
			files = append(files, n.Path)
		}
		return true
	})
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "app.go")
}

func TestBuild_MissingRootReturnsErrPathNotFound(t *testing.T) {
	_, err := NewBuilder(nil).Build(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestBuild_EmptyDirectory(t *testing.T) {
	root := t.TempDir()
	node, err := NewBuilder(map[string]bool{".go": true}).Build(root)
	require.NoError(t, err)
	assert.True(t, node.IsDir())
	assert.Empty(t, node.Children)
}

func TestWithOutcome_DoesNotMutateOriginal(t *testing.T) {
	n := &TreeNode{ID: 1, Kind: File, Name: "a.go"}
	updated := n.WithOutcome("result")
	assert.Nil(t, n.Outcome)
	assert.Equal(t, "result", updated.Outcome)
	assert.NotSame(t, n, updated)
}

func TestWithChildren_DoesNotMutateOriginal(t *testing.T) {
	child := &TreeNode{ID: 1, Kind: File, Name: "a.go"}
	n := &TreeNode{ID: 2, Kind: Directory, Name: "root"}
	updated := n.WithChildren([]*TreeNode{child})
	assert.Empty(t, n.Children)
	assert.Len(t, updated.Children, 1)
}
