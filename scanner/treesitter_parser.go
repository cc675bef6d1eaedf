// scanner/treesitter_parser.go
package scanner

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/swift"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

var langToGrammar = map[string]*sitter.Language{
	"swift":      swift.GetLanguage(),
	"python":     python.GetLanguage(),
	"javascript": javascript.GetLanguage(),
	"typescript": typescript.GetLanguage(),
	"tsx":        tsx.GetLanguage(),
}

func parseTree(ctx context.Context, langName string, src []byte) (*sitter.Tree, error) {
	lang, ok := langToGrammar[langName]
	if !ok {
		return nil, fmt.Errorf("tree-sitter grammar for language '%s' not supported", langName)
	}
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parsing error: %w", err)
	}
	return tree, nil
}

// nodeWalker collects fragments from a tree-sitter tree.
type nodeWalker struct {
	src       []byte
	lines     *sourceText
	fragments []Fragment
}

func newNodeWalker(src []byte) *nodeWalker {
	return &nodeWalker{src: src, lines: newSourceText(src)}
}

func (w *nodeWalker) text(n *sitter.Node) string {
	return n.Content(w.src)
}

// emit records n's text as a fragment positioned at the node start.
func (w *nodeWalker) emit(n *sitter.Node, kind FragmentKind, node string) {
	if n == nil {
		return
	}
	w.emitText(n, w.text(n), kind, node)
}

func (w *nodeWalker) emitText(n *sitter.Node, text string, kind FragmentKind, node string) {
	if text == "" {
		return
	}
	w.fragments = append(w.fragments, Fragment{
		Content:  text,
		Position: w.lines.position(int(n.StartByte())),
		Kind:     kind,
		Node:     node,
	})
}

func (w *nodeWalker) walkChildren(n *sitter.Node, visit func(*sitter.Node)) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		visit(n.NamedChild(i))
	}
}

// childOfType returns the first named child of n with the given type.
func childOfType(n *sitter.Node, typ string) *sitter.Node {
	if n == nil {
		return nil
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == typ {
			return c
		}
	}
	return nil
}

// descendantOfType returns the first node of the given type under n, depth first.
func descendantOfType(n *sitter.Node, typ string) *sitter.Node {
	if n == nil {
		return nil
	}
	if n.Type() == typ {
		return n
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if d := descendantOfType(n.NamedChild(i), typ); d != nil {
			return d
		}
	}
	return nil
}

// fieldOr returns the child under field, falling back to the first child of type typ.
func fieldOr(n *sitter.Node, field, typ string) *sitter.Node {
	if c := n.ChildByFieldName(field); c != nil {
		return c
	}
	return childOfType(n, typ)
}

// ExtractTreeSitter returns the identifier and string fragments of a Python, JavaScript
// or TypeScript file.
func ExtractTreeSitter(ctx context.Context, langName string, src []byte) ([]Fragment, error) {
	tree, err := parseTree(ctx, langName, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	w := newNodeWalker(src)
	w.visitScript(tree.RootNode())
	return w.fragments, nil
}

func (w *nodeWalker) visitScript(n *sitter.Node) {
	typ := n.Type()
	switch typ {
	case "string", "template_string":
		w.emit(n, FragmentString, typ)
		return

	// python
	case "function_definition", "class_definition":
		w.emit(n.ChildByFieldName("name"), FragmentIdentifier, typ)
	case "parameters", "lambda_parameters":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			p := n.NamedChild(i)
			switch p.Type() {
			case "identifier":
				w.emit(p, FragmentIdentifier, "parameter")
			case "typed_parameter", "list_splat_pattern", "dictionary_splat_pattern":
				w.emit(childOfType(p, "identifier"), FragmentIdentifier, "parameter")
			case "default_parameter", "typed_default_parameter":
				w.emit(p.ChildByFieldName("name"), FragmentIdentifier, "parameter")
			}
		}
	case "assignment":
		w.emitBindings(n.ChildByFieldName("left"), typ)

	// javascript / typescript
	case "function_declaration", "generator_function_declaration", "class_declaration",
		"interface_declaration", "type_alias_declaration", "enum_declaration", "abstract_class_declaration":
		w.emit(n.ChildByFieldName("name"), FragmentIdentifier, typ)
	case "method_definition", "method_signature", "abstract_method_signature":
		if name := n.ChildByFieldName("name"); name != nil && name.Type() == "property_identifier" {
			w.emit(name, FragmentIdentifier, typ)
		}
	case "variable_declarator":
		w.emitBindings(n.ChildByFieldName("name"), typ)
	case "formal_parameters":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			p := n.NamedChild(i)
			switch p.Type() {
			case "identifier":
				w.emit(p, FragmentIdentifier, "parameter")
			case "required_parameter", "optional_parameter":
				w.emitBindings(p.ChildByFieldName("pattern"), "parameter")
			case "assignment_pattern":
				w.emitBindings(p.ChildByFieldName("left"), "parameter")
			case "rest_pattern":
				w.emit(childOfType(p, "identifier"), FragmentIdentifier, "parameter")
			}
		}
	case "public_field_definition", "field_definition", "property_signature":
		name := n.ChildByFieldName("name")
		if name == nil {
			name = n.ChildByFieldName("property")
		}
		if name != nil && name.Type() == "property_identifier" {
			w.emit(name, FragmentIdentifier, typ)
		}
	case "pair":
		if key := n.ChildByFieldName("key"); key != nil && key.Type() == "property_identifier" {
			w.emit(key, FragmentIdentifier, typ)
		}
	case "enum_body":
		w.walkChildren(n, func(c *sitter.Node) {
			if c.Type() == "property_identifier" {
				w.emit(c, FragmentIdentifier, "enum_member")
			}
		})
	}

	w.walkChildren(n, w.visitScript)
}

// emitBindings emits every identifier bound by a (possibly destructuring) pattern.
func (w *nodeWalker) emitBindings(n *sitter.Node, node string) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "identifier", "shorthand_property_identifier_pattern":
		w.emit(n, FragmentIdentifier, node)
	case "pattern_list", "tuple_pattern", "list_pattern", "array_pattern", "object_pattern":
		w.walkChildren(n, func(c *sitter.Node) { w.emitBindings(c, node) })
	case "pair_pattern":
		w.emitBindings(n.ChildByFieldName("value"), node)
	case "assignment_pattern":
		w.emitBindings(n.ChildByFieldName("left"), node)
	}
}
