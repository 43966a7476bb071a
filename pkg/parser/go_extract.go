package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kestrelcode/godscan/pkg/metrics"
)

// goDecisionTypes and goLogicalOperators mirror langSpec's role but Go needs a
// dedicated extractor: methods are declared outside their struct's type
// declaration (receiver methods), so the generic body-nesting walk in
// extract.go does not apply.
var goDecisionTypes = map[string]bool{
	"if_statement": true, "for_statement": true,
	"expression_case": true, "type_case": true, "communication_case": true, "default_case": true,
}
var goLogicalOperators = map[string]bool{"&&": true, "||": true}

// extractGoClasses treats every struct type declaration in the file (at top
// level or inside a function body) as a class, and every method_declaration whose receiver type matches that
// struct's name as one of its methods.
func extractGoClasses(tree *sitter.Tree, source []byte, path string) []metrics.ClassMetrics {
	root := tree.RootNode()

	type structDecl struct {
		name string
		node *sitter.Node // the struct_type node (for field counting)
		spec *sitter.Node // the type_spec node (for line counting)
	}
	var structs []structDecl
	methodsByReceiver := make(map[string][]*sitter.Node)

	walkTyped(root, source, func(n *sitter.Node, nodeType string) bool {
		switch nodeType {
		case "type_spec":
			name := nodeText(fieldOrNil(n, "name"), source)
			if st := fieldOrNil(n, "type"); st != nil && st.Type() == "struct_type" {
				structs = append(structs, structDecl{name: name, node: st, spec: n})
			}
		case "method_declaration":
			recvType := goReceiverTypeName(n, source)
			if recvType != "" {
				methodsByReceiver[recvType] = append(methodsByReceiver[recvType], n)
			}
		}
		return true
	})

	importTypes := []string{"import_spec"}
	classes := make([]metrics.ClassMetrics, 0, len(structs))
	for _, s := range structs {
		methodNodes := methodsByReceiver[s.name]
		methods := make([]metrics.MethodMetrics, 0, len(methodNodes))
		complexity := 0
		classLines := countLines(s.spec, source, "//")

		for _, m := range methodNodes {
			mName := nodeText(fieldOrNil(m, "name"), source)
			mBody := fieldOrNil(m, "body")
			mLines := countLines(m, source, "//")
			mComplexity := goComplexity(m, source)
			paramTypes := extractParams(fieldOrNil(m, "parameters"), source)
			calls, accessed := extractCallsAndAccesses(mBody, source)

			methods = append(methods, metrics.MethodMetrics{
				Name:           mName,
				Lines:          mLines,
				Complexity:     mComplexity,
				Parameters:     paramTypes,
				ReturnType:     returnTypeText(m, source),
				IsPublic:       exportedGoStyle(mName),
				IsStatic:       false,
				CalledMethods:  calls,
				AccessedFields: accessed,
				Tokens:         metrics.BuildTokenBag(mName, paramTypes, calls),
			})
			complexity += mComplexity
			classLines += mLines
		}

		classes = append(classes, metrics.ClassMetrics{
			Name:            s.name,
			QualifiedName:   s.name,
			FilePath:        path,
			Lines:           classLines,
			MethodCount:     len(methods),
			PropertyCount:   0,
			FieldCount:      goFieldCount(s.node),
			Complexity:      complexity,
			Methods:         methods,
			DependencyHints: extractDependencyHints(root, s.spec, source, importTypes),
		})
	}

	return classes
}

func goReceiverTypeName(methodDecl *sitter.Node, source []byte) string {
	recv := fieldOrNil(methodDecl, "receiver")
	if recv == nil || recv.NamedChildCount() == 0 {
		return ""
	}
	paramDecl := recv.NamedChild(0)
	t := fieldOrNil(paramDecl, "type")
	if t == nil {
		return ""
	}
	if t.Type() == "pointer_type" {
		t = t.NamedChild(0)
	}
	if t == nil {
		return ""
	}
	return nodeText(t, source)
}

func goFieldCount(structType *sitter.Node) int {
	if structType == nil {
		return 0
	}
	fields := childByType(structType, "field_declaration_list")
	if fields == nil {
		return 0
	}
	count := 0
	for i := 0; i < int(fields.NamedChildCount()); i++ {
		decl := fields.NamedChild(i)
		if decl.Type() != "field_declaration" {
			continue
		}
		if names := fieldOrNil(decl, "name"); names != nil {
			count++
		} else {
			count++ // embedded field
		}
	}
	return count
}

func goComplexity(node *sitter.Node, source []byte) int {
	complexity := 1
	walkTyped(node, source, func(n *sitter.Node, nodeType string) bool {
		if goDecisionTypes[nodeType] {
			complexity++
		}
		if nodeType == "binary_expression" {
			for i := 0; i < int(n.ChildCount()); i++ {
				if goLogicalOperators[nodeText(n.Child(i), source)] {
					complexity++
				}
			}
		}
		return true
	})
	return complexity
}
