package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// treeSitterLanguage returns the grammar for lang.
func treeSitterLanguage(lang Language) (*sitter.Language, error) {
	switch lang {
	case LangGo:
		return golang.GetLanguage(), nil
	case LangPython:
		return python.GetLanguage(), nil
	case LangJava:
		return java.GetLanguage(), nil
	case LangJavaScript:
		return javascript.GetLanguage(), nil
	case LangTypeScript:
		return typescript.GetLanguage(), nil
	case LangTSX:
		return tsx.GetLanguage(), nil
	case LangRuby:
		return ruby.GetLanguage(), nil
	case LangCSharp:
		return csharp.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported language %q", ErrParseError, lang)
	}
}

// parseSource parses source with lang's grammar.
func parseSource(source []byte, lang Language) (*sitter.Tree, error) {
	tsLang, err := treeSitterLanguage(lang)
	if err != nil {
		return nil, err
	}
	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(tsLang)

	tree, err := p.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseError, err)
	}
	if tree == nil || tree.RootNode() == nil {
		return nil, fmt.Errorf("%w: empty parse tree", ErrParseError)
	}
	return tree, nil
}

// nodeText returns the verbatim source text spanned by node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// typedVisitor is called once per visited node with its type pre-resolved.
type typedVisitor func(n *sitter.Node, nodeType string) bool

// walkTyped performs a pre-order traversal of node, calling visit on every
// descendant (node included). Traversal into a subtree stops if visit
// returns false for its root.
func walkTyped(node *sitter.Node, source []byte, visit typedVisitor) {
	if node == nil {
		return
	}
	if !visit(node, node.Type()) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walkTyped(node.Child(i), source, visit)
	}
}

// childByType returns the first direct child of node whose type is one of
// types, or nil.
func childByType(node *sitter.Node, types ...string) *sitter.Node {
	if node == nil {
		return nil
	}
	want := make(map[string]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		c := node.Child(i)
		if want[c.Type()] {
			return c
		}
	}
	return nil
}

// fieldOrNil returns node.ChildByFieldName(field), or nil if node is nil.
func fieldOrNil(node *sitter.Node, field string) *sitter.Node {
	if node == nil {
		return nil
	}
	return node.ChildByFieldName(field)
}
