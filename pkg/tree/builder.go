package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrPathNotFound is returned when the TreeBuilder's root does not exist.
var ErrPathNotFound = errors.New("tree: path not found")

// excludedDirs is the fixed, case-insensitive set of build-artifact
// directory basenames the walk never descends into (spec.md §4.1).
var excludedDirs = map[string]bool{
	"bin": true, "obj": true, ".git": true, ".vs": true,
	"node_modules": true, "packages": true, ".idea": true,
	"target": true, "build": true, "dist": true,
}

// Builder walks a root path into a TreeNode tree, including only files
// whose extension is in the supplied recognized set.
type Builder struct {
	// RecognizedExtensions maps a lowercased extension (with leading dot,
	// e.g. ".go") to true if some registered parser claims it. Supplied by
	// the caller — in practice the parser registry's SupportedExtensions().
	RecognizedExtensions map[string]bool

	// ExtraExcludedDirs lists lowercased directory basenames to skip in
	// addition to the built-in excludedDirs set, typically user-configured.
	ExtraExcludedDirs map[string]bool
}

// NewBuilder constructs a Builder recognizing the given extensions, with no
// additional directory exclusions beyond the built-in set.
func NewBuilder(recognizedExtensions map[string]bool) *Builder {
	return &Builder{RecognizedExtensions: recognizedExtensions}
}

// NewBuilderWithExclusions constructs a Builder that also skips any
// directory named in extraExcludedDirs, merged case-insensitively with the
// built-in excludedDirs set.
func NewBuilderWithExclusions(recognizedExtensions map[string]bool, extraExcludedDirs []string) *Builder {
	b := NewBuilder(recognizedExtensions)
	if len(extraExcludedDirs) == 0 {
		return b
	}
	b.ExtraExcludedDirs = make(map[string]bool, len(extraExcludedDirs))
	for _, d := range extraExcludedDirs {
		b.ExtraExcludedDirs[strings.ToLower(d)] = true
	}
	return b
}

func (b *Builder) isExcludedDir(name string) bool {
	lower := strings.ToLower(name)
	return excludedDirs[lower] || b.ExtraExcludedDirs[lower]
}

// Build walks root depth-first and returns the TreeNode rooted at it.
// Fails with ErrPathNotFound if root does not exist. An unreadable child
// directory is silently omitted, never propagated (spec.md §4.1).
func (b *Builder) Build(root string) (*TreeNode, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("tree: resolve root: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrPathNotFound, root, err)
	}

	if !info.IsDir() {
		return b.leafNode(absRoot, info, 0), nil
	}

	return b.buildDir(absRoot, 0, nil), nil
}

func (b *Builder) leafNode(path string, info os.FileInfo, depth int) *TreeNode {
	return &TreeNode{
		ID:    NewID(path),
		Kind:  File,
		Name:  info.Name(),
		Path:  path,
		Depth: depth,
	}
}

func (b *Builder) buildDir(path string, depth int, parent *TreeNode) *TreeNode {
	node := &TreeNode{
		ID:     NewID(path),
		Kind:   Directory,
		Name:   filepath.Base(path),
		Path:   path,
		Depth:  depth,
		Parent: parent,
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		// Unreadable directory: omit its children silently.
		return node
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	children := make([]*TreeNode, 0, len(entries))
	for _, entry := range entries {
		childPath := filepath.Join(path, entry.Name())

		if entry.IsDir() {
			if b.isExcludedDir(entry.Name()) {
				continue
			}
			children = append(children, b.buildDir(childPath, depth+1, node))
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !b.RecognizedExtensions[ext] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		child := b.leafNode(childPath, info, depth+1)
		child.Parent = node
		children = append(children, child)
	}

	node.Children = children
	return node
}
