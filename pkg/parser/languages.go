package parser

import "github.com/kestrelcode/godscan/pkg/metrics"

// goParser implements Parser for Go, using the dedicated receiver-method
// extractor in go_extract.go.
type goParser struct{}

func newGoParser() *goParser { return &goParser{} }

func (p *goParser) SupportedExtensions() []string { return []string{".go"} }

func (p *goParser) ParseFile(path string) ([]metrics.ClassMetrics, error) {
	source, err := readSource(path)
	if err != nil {
		return nil, err
	}
	if len(source) == 0 {
		return []metrics.ClassMetrics{}, nil
	}
	tree, err := parseSource(source, LangGo)
	if err != nil {
		return nil, err
	}
	classes := extractGoClasses(tree, source, path)
	if classes == nil {
		classes = []metrics.ClassMetrics{}
	}
	return classes, nil
}

// genericParser implements Parser for any language the data-driven
// extraction engine in extract.go supports.
type genericParser struct {
	lang        Language
	extensions  []string
	spec        langSpec
	importTypes []string
}

func (p *genericParser) SupportedExtensions() []string { return p.extensions }

func (p *genericParser) ParseFile(path string) ([]metrics.ClassMetrics, error) {
	source, err := readSource(path)
	if err != nil {
		return nil, err
	}
	if len(source) == 0 {
		return []metrics.ClassMetrics{}, nil
	}
	tree, err := parseSource(source, p.lang)
	if err != nil {
		return nil, err
	}
	classes := extractClassesGeneric(tree, source, path, p.spec, p.importTypes)
	if classes == nil {
		classes = []metrics.ClassMetrics{}
	}
	return classes, nil
}

func newPythonParser() *genericParser {
	return &genericParser{
		lang:        LangPython,
		extensions:  []string{".py", ".pyw", ".pyi"},
		spec:        pythonSpec,
		importTypes: []string{"import_statement", "import_from_statement"},
	}
}

func newJavaParser() *genericParser {
	return &genericParser{
		lang:        LangJava,
		extensions:  []string{".java"},
		spec:        javaSpec,
		importTypes: []string{"import_declaration"},
	}
}

func newJavaScriptParser() *genericParser {
	return &genericParser{
		lang:        LangJavaScript,
		extensions:  []string{".js", ".mjs", ".cjs", ".jsx"},
		spec:        javascriptSpec,
		importTypes: []string{"import_statement"},
	}
}

func newTypeScriptParser() *genericParser {
	return &genericParser{
		lang:        LangTypeScript,
		extensions:  []string{".ts"},
		spec:        typescriptSpec,
		importTypes: []string{"import_statement"},
	}
}

// newTSXParser handles .tsx files with the dedicated tsx grammar rather
// than the plain typescript one; JSX syntax in a .tsx file otherwise fails
// to parse under the plain grammar.
func newTSXParser() *genericParser {
	return &genericParser{
		lang:        LangTSX,
		extensions:  []string{".tsx"},
		spec:        typescriptSpec,
		importTypes: []string{"import_statement"},
	}
}

func newRubyParser() *genericParser {
	return &genericParser{
		lang:        LangRuby,
		extensions:  []string{".rb"},
		spec:        rubySpec,
		importTypes: []string{"call"}, // `require "x"` surfaces as a call node; dependency hints stay best-effort.
	}
}

func newCSharpParser() *genericParser {
	return &genericParser{
		lang:        LangCSharp,
		extensions:  []string{".cs"},
		spec:        csharpSpec,
		importTypes: []string{"using_directive"},
	}
}
