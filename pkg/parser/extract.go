package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kestrelcode/godscan/pkg/metrics"
)

// countLines counts the non-blank, non-comment lines within node's text
// span, per the language-neutral rule in spec.md §4.2.
func countLines(node *sitter.Node, source []byte, commentPrefix string) int {
	if node == nil {
		return 0
	}
	text := nodeText(node, source)
	lines := strings.Split(text, "\n")
	count := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if commentPrefix != "" && strings.HasPrefix(trimmed, commentPrefix) {
			continue
		}
		count++
	}
	return count
}

// countComplexity computes McCabe complexity: base 1 plus one for every
// decision-type node and every short-circuit logical operator within
// node's subtree (spec.md §4.2).
func countComplexity(node *sitter.Node, source []byte, spec langSpec) int {
	decision := make(map[string]bool, len(spec.decisionTypes))
	for _, t := range spec.decisionTypes {
		decision[t] = true
	}
	logical := make(map[string]bool, len(spec.logicalExprTypes))
	for _, t := range spec.logicalExprTypes {
		logical[t] = true
	}

	complexity := 1
	walkTyped(node, source, func(n *sitter.Node, nodeType string) bool {
		if decision[nodeType] {
			complexity++
		}
		if logical[nodeType] {
			complexity += countLogicalOperators(n, source, spec.logicalOperators)
		}
		return true
	})
	return complexity
}

func countLogicalOperators(node *sitter.Node, source []byte, operators []string) int {
	want := make(map[string]bool, len(operators))
	for _, op := range operators {
		want[op] = true
	}
	count := 0
	for i := 0; i < int(node.ChildCount()); i++ {
		c := node.Child(i)
		if want[nodeText(c, source)] {
			count++
		}
	}
	return count
}

// collectMembers returns the direct method declarations within a class
// body: it recurses through wrapper nodes (block/body-list nodes) but does
// not descend into a found method's own subtree or into a nested class,
// so inner functions and inner classes are never mistaken for this class's
// methods.
func collectMembers(body *sitter.Node, spec langSpec) []*sitter.Node {
	if body == nil {
		return nil
	}
	methodTypes := make(map[string]bool, len(spec.methodTypes))
	for _, t := range spec.methodTypes {
		methodTypes[t] = true
	}
	classTypes := make(map[string]bool, len(spec.classTypes))
	for _, t := range spec.classTypes {
		classTypes[t] = true
	}

	var members []*sitter.Node
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		for i := 0; i < int(n.ChildCount()); i++ {
			c := n.Child(i)
			switch {
			case methodTypes[c.Type()]:
				members = append(members, c)
			case classTypes[c.Type()]:
				// Nested class: its own members belong to it, not to this body.
			default:
				walk(c)
			}
		}
	}
	walk(body)
	return members
}

// extractParams returns the declared type designator of every formal
// parameter, in order (empty string if the language/parameter has none);
// its length is the parameter count. A variadic/rest parameter is a single
// named child and so counts as one. A Go parameter_declaration naming
// several parameters of one type ("a, b int") counts once per name.
func extractParams(paramsNode *sitter.Node, source []byte) []string {
	if paramsNode == nil {
		return nil
	}
	var types []string
	count := int(paramsNode.NamedChildCount())
	for i := 0; i < count; i++ {
		p := paramsNode.NamedChild(i)
		typ := ""
		if t := fieldOrNil(p, "type"); t != nil {
			typ = nodeText(t, source)
		}
		names := 1
		if p.Type() == "parameter_declaration" {
			idents := 0
			for j := 0; j < int(p.NamedChildCount()); j++ {
				if p.NamedChild(j).Type() == "identifier" {
					idents++
				}
			}
			if idents > 1 {
				names = idents
			}
		}
		for j := 0; j < names; j++ {
			types = append(types, typ)
		}
	}
	return types
}

// extractCallsAndAccesses walks a method body collecting deduplicated
// call-site targets and accessed identifiers, in order of first
// appearance.
func extractCallsAndAccesses(body *sitter.Node, source []byte) (calls []string, accessed []string) {
	if body == nil {
		return nil, nil
	}
	seenCalls := make(map[string]bool)
	seenAccess := make(map[string]bool)

	walkTyped(body, source, func(n *sitter.Node, nodeType string) bool {
		switch nodeType {
		case "call_expression", "call", "method_invocation", "invocation_expression":
			fn := fieldOrNil(n, "function")
			if fn == nil {
				fn = fieldOrNil(n, "method")
			}
			if fn == nil && n.NamedChildCount() > 0 {
				fn = n.NamedChild(0)
			}
			if fn != nil {
				target := calleeName(fn, source)
				if target != "" && !seenCalls[target] {
					seenCalls[target] = true
					calls = append(calls, target)
				}
			}
		case "identifier", "constant":
			name := nodeText(n, source)
			if name != "" && !seenAccess[name] {
				seenAccess[name] = true
				accessed = append(accessed, name)
			}
		}
		return true
	})
	return calls, accessed
}

// calleeName extracts a readable callee name from a call's function/method
// expression, preferring the rightmost selector (e.g. "a.b.Foo" -> "Foo").
func calleeName(fn *sitter.Node, source []byte) string {
	switch fn.Type() {
	case "selector_expression", "member_expression", "field_access", "attribute":
		if sel := fieldOrNil(fn, "field"); sel != nil {
			return nodeText(sel, source)
		}
		if sel := fieldOrNil(fn, "property"); sel != nil {
			return nodeText(sel, source)
		}
		if sel := fieldOrNil(fn, "attribute"); sel != nil {
			return nodeText(sel, source)
		}
		return nodeText(fn, source)
	default:
		return nodeText(fn, source)
	}
}

// extractDependencyHints returns import/using directive targets followed
// by the first MaxDependencyHints capitalized identifier references within
// node, per spec.md §4.2.
func extractDependencyHints(fileRoot, classNode *sitter.Node, source []byte, importTypes []string) []string {
	var hints []string
	seen := make(map[string]bool)

	add := func(s string) bool {
		if s == "" || seen[s] {
			return false
		}
		seen[s] = true
		hints = append(hints, s)
		return true
	}

	importSet := make(map[string]bool, len(importTypes))
	for _, t := range importTypes {
		importSet[t] = true
	}
	walkTyped(fileRoot, source, func(n *sitter.Node, nodeType string) bool {
		if importSet[nodeType] {
			add(strings.TrimSpace(nodeText(n, source)))
		}
		return true
	})

	capitalized := 0
	walkTyped(classNode, source, func(n *sitter.Node, nodeType string) bool {
		if capitalized >= metrics.MaxDependencyHints {
			return false
		}
		if nodeType == "identifier" || nodeType == "type_identifier" || nodeType == "constant" {
			text := nodeText(n, source)
			if len(text) > 0 && text[0] >= 'A' && text[0] <= 'Z' && add(text) {
				capitalized++
			}
		}
		return true
	})

	return hints
}

// extractClassesGeneric extracts classes from any non-Go language using a
// data-driven langSpec. Go's method/struct association needs a dedicated
// pass (see go_extract.go) because Go methods are declared outside their struct's
// type declaration.
func extractClassesGeneric(tree *sitter.Tree, source []byte, path string, spec langSpec, importTypes []string) []metrics.ClassMetrics {
	root := tree.RootNode()
	var classes []metrics.ClassMetrics

	classTypeSet := make(map[string]bool, len(spec.classTypes))
	for _, t := range spec.classTypes {
		classTypeSet[t] = true
	}

	walkTyped(root, source, func(n *sitter.Node, nodeType string) bool {
		if !classTypeSet[nodeType] {
			return true
		}

		name := nodeText(fieldOrNil(n, spec.nameField), source)
		body := n
		if spec.bodyField != "" {
			if b := fieldOrNil(n, spec.bodyField); b != nil {
				body = b
			}
		}

		memberNodes := collectMembers(body, spec)
		methods := make([]metrics.MethodMetrics, 0, len(memberNodes))
		complexity := 0
		for _, m := range memberNodes {
			mName := nodeText(fieldOrNil(m, spec.nameField), source)
			mBody := fieldOrNil(m, "body")
			mLines := countLines(m, source, spec.commentPrefix)
			mComplexity := countComplexity(m, source, spec)
			paramTypes := extractParams(fieldOrNil(m, spec.paramsField), source)
			calls, accessed := extractCallsAndAccesses(mBody, source)

			methods = append(methods, metrics.MethodMetrics{
				Name:           mName,
				Lines:          mLines,
				Complexity:     mComplexity,
				Parameters:     paramTypes,
				ReturnType:     returnTypeText(m, source),
				IsPublic:       spec.isPublic(mName, m, source),
				IsStatic:       spec.isStatic(m, source),
				CalledMethods:  calls,
				AccessedFields: accessed,
				Tokens:         metrics.BuildTokenBag(mName, paramTypes, calls),
			})
			complexity += mComplexity
		}

		classes = append(classes, metrics.ClassMetrics{
			Name:            name,
			QualifiedName:   name,
			FilePath:        path,
			Lines:           countLines(n, source, spec.commentPrefix),
			MethodCount:     len(methods),
			PropertyCount:   0,
			FieldCount:      0,
			Complexity:      complexity,
			Methods:         methods,
			DependencyHints: extractDependencyHints(root, n, source, importTypes),
		})

		// Continue into nested declarations so inner classes are captured
		// as their own ClassMetrics too.
		return true
	})

	return classes
}

func returnTypeText(decl *sitter.Node, source []byte) string {
	if rt := fieldOrNil(decl, "returns"); rt != nil {
		return nodeText(rt, source)
	}
	if rt := fieldOrNil(decl, "return_type"); rt != nil {
		return nodeText(rt, source)
	}
	if rt := fieldOrNil(decl, "type"); rt != nil {
		return nodeText(rt, source)
	}
	return ""
}
