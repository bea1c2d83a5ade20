package structural

import (
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// grammar pairs a tree-sitter language with the node kinds that count as
// named declarations and as type declarations in that language.
type grammar struct {
	language  *sitter.Language
	declKinds map[string]bool
	typeKinds map[string]bool
}

// TreeSitterLocator locates declarations with a concrete-syntax-tree parse
// for every file extension it has a grammar for. Files in dialects without a
// grammar always fall through to the caller's heuristic path. The locator is
// stateless between parse calls and safe to reuse across goroutines.
type TreeSitterLocator struct {
	grammars map[string]*grammar // keyed by lowercase file extension
}

// NewTreeSitterLocator builds the grammar registry.
func NewTreeSitterLocator() *TreeSitterLocator {
	set := func(kinds ...string) map[string]bool {
		m := make(map[string]bool, len(kinds))
		for _, k := range kinds {
			m[k] = true
		}
		return m
	}

	tsTypes := set("class_declaration", "abstract_class_declaration",
		"interface_declaration", "enum_declaration", "type_alias_declaration")
	tsDecls := set("function_declaration", "generator_function_declaration",
		"method_definition", "class_declaration", "abstract_class_declaration",
		"interface_declaration", "enum_declaration", "type_alias_declaration")

	tsLang := sitter.NewLanguage(typescript.LanguageTypescript())
	tsxLang := sitter.NewLanguage(typescript.LanguageTSX())
	ts := &grammar{language: tsLang, declKinds: tsDecls, typeKinds: tsTypes}
	tsx := &grammar{language: tsxLang, declKinds: tsDecls, typeKinds: tsTypes}

	javaTypes := set("class_declaration", "interface_declaration",
		"enum_declaration", "record_declaration")
	rustTypes := set("struct_item", "enum_item", "trait_item", "type_item", "union_item")
	cTypes := set("struct_specifier", "enum_specifier", "union_specifier", "type_definition")
	phpTypes := set("class_declaration", "interface_declaration",
		"trait_declaration", "enum_declaration")

	grammars := map[string]*grammar{
		".ts":  ts,
		".js":  ts,
		".mjs": ts,
		".tsx": tsx,
		".jsx": tsx,
		".py": {
			language:  sitter.NewLanguage(python.Language()),
			declKinds: set("function_definition", "class_definition"),
			typeKinds: set("class_definition"),
		},
		".java": {
			language: sitter.NewLanguage(java.Language()),
			declKinds: set("method_declaration", "constructor_declaration",
				"class_declaration", "interface_declaration",
				"enum_declaration", "record_declaration"),
			typeKinds: javaTypes,
		},
		".rs": {
			language: sitter.NewLanguage(rust.Language()),
			declKinds: set("function_item", "struct_item", "enum_item",
				"trait_item", "impl_item", "type_item", "union_item"),
			typeKinds: rustTypes,
		},
		".c": {
			language: sitter.NewLanguage(c.Language()),
			declKinds: set("function_definition", "struct_specifier",
				"enum_specifier", "union_specifier", "type_definition"),
			typeKinds: cTypes,
		},
		".php": {
			language: sitter.NewLanguage(php.LanguagePHP()),
			declKinds: set("function_definition", "method_declaration",
				"class_declaration", "interface_declaration",
				"trait_declaration", "enum_declaration"),
			typeKinds: phpTypes,
		},
		".rb": {
			language:  sitter.NewLanguage(ruby.Language()),
			declKinds: set("method", "singleton_method", "class", "module"),
			typeKinds: set("class", "module"),
		},
	}

	return &TreeSitterLocator{grammars: grammars}
}

// EnclosingDeclaration parses source and returns the smallest named
// declaration whose byte span contains offset.
func (l *TreeSitterLocator) EnclosingDeclaration(path string, source []byte, offset int) (string, bool) {
	g := l.grammarFor(path)
	if g == nil {
		return "", false
	}

	root, cleanup, ok := parse(g, source)
	if !ok {
		return "", false
	}
	defer cleanup()

	target := uint(offset)
	var best *sitter.Node
	walkTree(root, func(n *sitter.Node) bool {
		if target < n.StartByte() || target >= n.EndByte() {
			return false
		}
		if g.declKinds[n.Kind()] {
			// Only nodes containing the offset are descended into, so the
			// last assignment is the smallest enclosing declaration.
			best = n
		}
		return true
	})
	if best == nil {
		return "", false
	}
	return nodeText(best, source), true
}

// LastTypeDeclarationBefore walks the tree depth-first and keeps overwriting
// the result with every type declaration starting before cutoff, so the last
// one in source order wins.
func (l *TreeSitterLocator) LastTypeDeclarationBefore(path string, source []byte, cutoff int) (string, bool) {
	g := l.grammarFor(path)
	if g == nil {
		return "", false
	}

	root, cleanup, ok := parse(g, source)
	if !ok {
		return "", false
	}
	defer cleanup()

	var last *sitter.Node
	walkTree(root, func(n *sitter.Node) bool {
		if n.StartByte() >= uint(cutoff) {
			return false
		}
		if g.typeKinds[n.Kind()] {
			last = n
		}
		return true
	})
	if last == nil {
		return "", false
	}
	return nodeText(last, source), true
}

func (l *TreeSitterLocator) grammarFor(path string) *grammar {
	return l.grammars[strings.ToLower(filepath.Ext(path))]
}

// parse returns the root node and a cleanup func releasing parser and tree.
func parse(g *grammar, source []byte) (*sitter.Node, func(), bool) {
	parser := sitter.NewParser()
	parser.SetLanguage(g.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		parser.Close()
		return nil, nil, false
	}
	return tree.RootNode(), func() {
		tree.Close()
		parser.Close()
	}, true
}

// nodeText extracts the verbatim source text of a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	start, end := node.StartByte(), node.EndByte()
	if start >= uint(len(source)) || end > uint(len(source)) || start >= end {
		return ""
	}
	return string(source[start:end])
}

// walkTree visits nodes depth-first; the visitor returns whether to descend
// into the node's children.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visitor(node) {
		return
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		walkTree(node.Child(i), visitor)
	}
}
