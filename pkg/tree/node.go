// Package tree implements the immutable project tree: TreeNode and the
// TreeBuilder that walks a root path to produce one (spec.md §3, §4.1).
package tree

import (
	"github.com/cespare/xxhash/v2"
)

// Kind distinguishes a directory node from a source-file node.
type Kind int

const (
	Directory Kind = iota
	File
)

func (k Kind) String() string {
	if k == Directory {
		return "directory"
	}
	return "file"
}

// ID is a stable, content-free node identifier derived from a node's
// absolute path. Using a hash instead of pointer identity lets enrichment
// (phase 2 of the engine) address "the same node" before and after
// rewriting, per the arena-style design spec.md §9 recommends.
type ID uint64

// NewID derives a stable ID from an absolute path.
func NewID(absPath string) ID {
	return ID(xxhash.Sum64String(absPath))
}

// Outcome is attached to a File node once analysis has run. It is declared
// as an interface{} placeholder here to avoid an import cycle between tree
// and engine; the engine package (outcome.go) defines the concrete
// engine.FileOutcome value type and stores it behind this field.
type Outcome any

// TreeNode is one immutable node of the project tree. A Directory node has
// zero or more children of either kind; a File node has none. Enrichment
// never mutates a node in place — it produces a new TreeNode that shares
// the same ID and Path (WithOutcome also shares the Children slice;
// WithChildren swaps in a new one) (spec.md §3, "the tree is constructed
// and then never mutated").
type TreeNode struct {
	ID       ID
	Kind     Kind
	Name     string
	Path     string // absolute path
	Depth    int
	Children []*TreeNode
	Parent   *TreeNode

	// Populated only after analysis (phase 2). Nil on a freshly built tree.
	Outcome Outcome
}

// WithOutcome returns a new TreeNode identical to n except for its attached
// Outcome, sharing n's Children slice and Parent pointer. n is left
// unmodified.
func (n *TreeNode) WithOutcome(outcome Outcome) *TreeNode {
	cp := *n
	cp.Outcome = outcome
	return &cp
}

// WithChildren returns a new TreeNode identical to n except for its
// Children, used by the engine to rewrite a directory node once all of its
// children have been enriched. Child order is preserved.
func (n *TreeNode) WithChildren(children []*TreeNode) *TreeNode {
	cp := *n
	cp.Children = children
	return &cp
}

// IsDir reports whether n is a Directory node.
func (n *TreeNode) IsDir() bool { return n.Kind == Directory }

// IsFile reports whether n is a File node.
func (n *TreeNode) IsFile() bool { return n.Kind == File }

// Walk visits n and every descendant in traversal order (parent before
// children, children in their stored order), calling visit on each node.
// Walk stops early if visit returns false.
func Walk(n *TreeNode, visit func(*TreeNode) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, visit)
	}
}
