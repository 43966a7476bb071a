package parser

import sitter "github.com/smacker/go-tree-sitter"

// langSpec is the node-type table a language supplies to the generic
// extraction engine in extract.go. Node type names come from the
// corresponding tree-sitter grammar bundled with go-tree-sitter.
type langSpec struct {
	classTypes  []string // node types that introduce a class-like declaration
	methodTypes []string // node types that introduce a method within a class body

	nameField   string // field giving the declaration's identifier
	paramsField string // field giving the parameter list
	bodyField   string // field giving the declaration's block body

	commentPrefix string // single-line comment marker

	// decisionTypes are node types that each independently add one to
	// cyclomatic complexity (if/while/for/case/catch/ternary, spec.md §4.2).
	decisionTypes []string
	// logicalExprTypes are binary/logical expression node types to inspect
	// for a short-circuit && / || (or language keyword equivalent) operator.
	logicalExprTypes []string
	logicalOperators []string

	isPublic func(name string, decl *sitter.Node, source []byte) bool
	isStatic func(decl *sitter.Node, source []byte) bool
}

func hasModifier(decl *sitter.Node, source []byte, modifierTypes []string, keyword string) bool {
	mods := childByType(decl, modifierTypes...)
	if mods == nil {
		return false
	}
	found := false
	walkTyped(mods, source, func(n *sitter.Node, nodeType string) bool {
		if nodeText(n, source) == keyword {
			found = true
			return false
		}
		return true
	})
	return found
}

func exportedGoStyle(name string) bool {
	if name == "" {
		return false
	}
	r := name[0]
	return r >= 'A' && r <= 'Z'
}

func notUnderscorePrefixed(name string) bool {
	return name == "" || name[0] != '_'
}

var pythonSpec = langSpec{
	classTypes:       []string{"class_definition"},
	methodTypes:      []string{"function_definition"},
	nameField:        "name",
	paramsField:      "parameters",
	bodyField:        "body",
	commentPrefix:    "#",
	decisionTypes:    []string{"if_statement", "elif_clause", "for_statement", "while_statement", "except_clause", "with_statement", "conditional_expression", "list_comprehension", "set_comprehension", "dictionary_comprehension"},
	logicalExprTypes: []string{"boolean_operator"},
	logicalOperators: []string{"and", "or"},
	isPublic: func(name string, decl *sitter.Node, source []byte) bool {
		return notUnderscorePrefixed(name)
	},
	isStatic: func(decl *sitter.Node, source []byte) bool {
		parent := decl.Parent()
		if parent == nil || parent.Type() != "decorated_definition" {
			return false
		}
		return containsText(parent, source, "staticmethod") || containsText(parent, source, "classmethod")
	},
}

var javaSpec = langSpec{
	classTypes:       []string{"class_declaration"},
	methodTypes:      []string{"method_declaration", "constructor_declaration"},
	nameField:        "name",
	paramsField:      "parameters",
	bodyField:        "body",
	commentPrefix:    "//",
	decisionTypes:    []string{"if_statement", "for_statement", "enhanced_for_statement", "while_statement", "do_statement", "switch_expression", "switch_block_statement_group", "catch_clause", "ternary_expression"},
	logicalExprTypes: []string{"binary_expression"},
	logicalOperators: []string{"&&", "||"},
	isPublic: func(name string, decl *sitter.Node, source []byte) bool {
		return hasModifier(decl, source, []string{"modifiers"}, "public")
	},
	isStatic: func(decl *sitter.Node, source []byte) bool {
		return hasModifier(decl, source, []string{"modifiers"}, "static")
	},
}

var csharpSpec = langSpec{
	classTypes:       []string{"class_declaration"},
	methodTypes:      []string{"method_declaration", "constructor_declaration"},
	nameField:        "name",
	paramsField:      "parameters",
	bodyField:        "body",
	commentPrefix:    "//",
	decisionTypes:    []string{"if_statement", "for_statement", "foreach_statement", "while_statement", "do_statement", "switch_expression", "switch_section", "catch_clause", "conditional_expression"},
	logicalExprTypes: []string{"binary_expression"},
	logicalOperators: []string{"&&", "||"},
	isPublic: func(name string, decl *sitter.Node, source []byte) bool {
		return hasModifier(decl, source, []string{"modifier"}, "public")
	},
	isStatic: func(decl *sitter.Node, source []byte) bool {
		return hasModifier(decl, source, []string{"modifier"}, "static")
	},
}

var javascriptSpec = langSpec{
	classTypes:       []string{"class_declaration", "class"},
	methodTypes:      []string{"method_definition"},
	nameField:        "name",
	paramsField:      "parameters",
	bodyField:        "body",
	commentPrefix:    "//",
	decisionTypes:    []string{"if_statement", "for_statement", "for_in_statement", "while_statement", "do_statement", "switch_case", "catch_clause", "ternary_expression"},
	logicalExprTypes: []string{"binary_expression", "logical_expression"},
	logicalOperators: []string{"&&", "||"},
	isPublic: func(name string, decl *sitter.Node, source []byte) bool {
		return len(name) == 0 || name[0] != '#'
	},
	isStatic: func(decl *sitter.Node, source []byte) bool {
		for i := 0; i < int(decl.ChildCount()); i++ {
			if decl.Child(i).Type() == "static" {
				return true
			}
		}
		return false
	},
}

// typescriptSpec reuses the JavaScript node shapes; TypeScript's grammar is
// a superset for class/method/parameter syntax.
var typescriptSpec = javascriptSpec

var rubySpec = langSpec{
	classTypes:       []string{"class"},
	methodTypes:      []string{"method", "singleton_method"},
	nameField:        "name",
	paramsField:      "parameters",
	bodyField:        "",
	commentPrefix:    "#",
	decisionTypes:    []string{"if", "elsif", "unless", "while", "until", "for", "case", "when", "rescue", "conditional"},
	logicalExprTypes: []string{"binary"},
	logicalOperators: []string{"&&", "||", "and", "or"},
	isPublic: func(name string, decl *sitter.Node, source []byte) bool {
		return notUnderscorePrefixed(name)
	},
	isStatic: func(decl *sitter.Node, source []byte) bool {
		return decl.Type() == "singleton_method"
	},
}

func containsText(node *sitter.Node, source []byte, needle string) bool {
	found := false
	walkTyped(node, source, func(n *sitter.Node, nodeType string) bool {
		if nodeText(n, source) == needle {
			found = true
			return false
		}
		return true
	})
	return found
}
