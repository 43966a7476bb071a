// Package engine orchestrates the full analysis pipeline: it builds the
// directory tree, processes files in parallel through Parser → Detector →
// Clusterer, and folds the results into an enriched tree plus a flat
// Report (spec.md §4.5).
package engine

import (
	"context"
	"errors"
	"os"

	"github.com/zeebo/blake3"

	"github.com/kestrelcode/godscan/internal/fileproc"
	"github.com/kestrelcode/godscan/pkg/clusterer"
	"github.com/kestrelcode/godscan/pkg/detector"
	"github.com/kestrelcode/godscan/pkg/parser"
	"github.com/kestrelcode/godscan/pkg/thresholds"
	"github.com/kestrelcode/godscan/pkg/tree"
)

// ErrCancelled is returned when the supplied context is cancelled before
// the run completes.
var ErrCancelled = errors.New("engine: analysis cancelled")

// Engine drives a single analysis run. The zero value is not usable;
// construct with New.
type Engine struct {
	registry    *parser.Registry
	thresholds  thresholds.Thresholds
	excludeDirs []string
}

// New constructs an Engine. A nil registry defaults to parser.DefaultRegistry().
// excludeDirs names additional directory basenames to skip during the tree
// walk, on top of pkg/tree.Builder's built-in exclusions.
func New(registry *parser.Registry, t thresholds.Thresholds, excludeDirs ...string) *Engine {
	if registry == nil {
		registry = parser.DefaultRegistry()
	}
	return &Engine{registry: registry, thresholds: t, excludeDirs: excludeDirs}
}

// Run builds the tree rooted at root, analyzes every recognized file in
// parallel, and returns the enriched tree plus the flat Report. It fails
// only if TreeBuilder fails, per spec.md §4.5; per-file parse errors are
// recorded on that file's FileOutcome rather than propagated.
func (e *Engine) Run(ctx context.Context, root string) (*tree.TreeNode, Report, error) {
	builder := tree.NewBuilderWithExclusions(e.registry.SupportedExtensions(), e.excludeDirs)
	rootNode, err := builder.Build(root)
	if err != nil {
		return nil, Report{}, err
	}

	var filePaths []string
	tree.Walk(rootNode, func(n *tree.TreeNode) bool {
		if n.IsFile() {
			filePaths = append(filePaths, n.Path)
		}
		return true
	})

	outcomes, _ := fileproc.MapFilesWithContext(ctx, filePaths, e.analyzeFile)

	select {
	case <-ctx.Done():
		return nil, Report{}, ErrCancelled
	default:
	}

	enriched := enrichTree(rootNode, outcomes)
	report := buildReport(enriched)

	return enriched, report, nil
}

func (e *Engine) analyzeFile(ctx context.Context, path string) (FileOutcome, error) {
	p := e.registry.Lookup(path)
	if p == nil {
		return FileOutcome{Path: path}, nil
	}

	classes, parseErr := p.ParseFile(path)
	fingerprint := fingerprintFile(path)

	outcome := FileOutcome{
		Path:        path,
		Fingerprint: fingerprint,
		ParseErr:    parseErr,
	}
	if parseErr != nil {
		return outcome, nil
	}

	classOutcomes := make([]ClassOutcome, 0, len(classes))
	for _, c := range classes {
		isGod, violations := detector.IsGodClass(c, e.thresholds)

		methods := make([]MethodOutcome, 0, len(c.Methods))
		for _, m := range c.Methods {
			isGodMethod, mViolations, score := detector.IsGodMethod(m, e.thresholds)
			methods = append(methods, MethodOutcome{
				Metrics:        m,
				IsGodMethod:    isGodMethod,
				Violations:     mViolations,
				ViolationScore: score,
			})
		}

		var clusters []clusterer.ResponsibilityCluster
		if isGod {
			clusters = clusterer.Cluster(c, e.thresholds)
		}

		classOutcomes = append(classOutcomes, ClassOutcome{
			Metrics:    c,
			IsGodClass: isGod,
			Violations: violations,
			Methods:    methods,
			Clusters:   clusters,
		})
	}

	outcome.Classes = classOutcomes
	outcome.FileVerdict = detector.EvaluateFile(classes, e.thresholds)
	return outcome, nil
}

// fingerprintFile computes a blake3 content hash for determinism testing.
// It is never persisted between runs (spec.md Non-goals).
func fingerprintFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	sum := blake3.Sum256(data)
	return hexEncode(sum[:])
}

var hexDigits = []byte("0123456789abcdef")

func hexEncode(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hexDigits[v>>4]
		out[i*2+1] = hexDigits[v&0x0f]
	}
	return string(out)
}

// enrichTree copy-on-write rebuilds the tree, attaching a FileOutcome to
// every File node that was analyzed (pkg/tree §9 arena design: enrichment
// never mutates an existing node).
func enrichTree(n *tree.TreeNode, outcomes map[string]FileOutcome) *tree.TreeNode {
	if n.IsFile() {
		if oc, ok := outcomes[n.Path]; ok {
			return n.WithOutcome(oc)
		}
		return n
	}

	newChildren := make([]*tree.TreeNode, len(n.Children))
	changed := false
	for i, c := range n.Children {
		nc := enrichTree(c, outcomes)
		newChildren[i] = nc
		if nc != c {
			changed = true
		}
	}
	if !changed {
		return n
	}
	return n.WithChildren(newChildren)
}
