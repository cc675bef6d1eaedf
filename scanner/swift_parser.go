// scanner/swift_parser.go
package scanner

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// ExtractSwift returns every identifier and string fragment of a Swift source file.
func ExtractSwift(ctx context.Context, src []byte) ([]Fragment, error) {
	tree, err := parseTree(ctx, "swift", src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	w := newNodeWalker(src)
	w.visitSwift(tree.RootNode())
	return w.fragments, nil
}

// visitSwift handles every extracted Swift construct in one switch, then recurses.
func (w *nodeWalker) visitSwift(n *sitter.Node) {
	typ := n.Type()
	switch typ {
	case "line_string_literal", "multi_line_string_literal", "raw_string_literal":
		w.emit(n, FragmentString, typ)
		return

	case "class_declaration":
		// class, struct, enum, actor and extension share this node
		node := typ
		if kind := n.ChildByFieldName("declaration_kind"); kind != nil {
			node = w.text(kind) + "_declaration"
		}
		name := n.ChildByFieldName("name")
		if name == nil {
			if name = childOfType(n, "type_identifier"); name == nil {
				name = childOfType(n, "user_type")
			}
		}
		w.emit(name, FragmentIdentifier, node)

	case "protocol_declaration", "typealias_declaration":
		w.emit(fieldOr(n, "name", "type_identifier"), FragmentIdentifier, typ)

	case "function_declaration":
		w.emit(fieldOr(n, "name", "simple_identifier"), FragmentIdentifier, typ)

	case "parameter":
		w.emit(n.ChildByFieldName("external_name"), FragmentIdentifier, typ)
		w.emit(fieldOr(n, "name", "simple_identifier"), FragmentIdentifier, typ)

	case "property_declaration":
		for i := 0; i < int(n.ChildCount()); i++ {
			if n.FieldNameForChild(i) != "name" {
				continue
			}
			w.emit(descendantOfType(n.Child(i), "simple_identifier"), FragmentIdentifier, typ)
		}

	case "enum_entry":
		for i := 0; i < int(n.ChildCount()); i++ {
			if n.FieldNameForChild(i) == "name" {
				w.emit(n.Child(i), FragmentIdentifier, typ)
			}
		}
		if data := fieldOr(n, "data_contents", "enum_type_parameters"); data != nil {
			w.walkChildren(data, func(c *sitter.Node) {
				if c.Type() == "simple_identifier" {
					w.emit(c, FragmentIdentifier, "enum_associated_value")
				}
			})
		}

	case "type_parameter":
		w.emit(childOfType(n, "type_identifier"), FragmentIdentifier, typ)

	case "attribute":
		w.emit(childOfType(n, "user_type"), FragmentIdentifier, typ)

	case "operator_declaration":
		w.emit(childOfType(n, "custom_operator"), FragmentIdentifier, typ)

	case "subscript_declaration":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if c := n.NamedChild(i); c.Type() == "parameter" {
				w.emit(fieldOr(c, "type", "user_type"), FragmentIdentifier, "subscript_parameter_type")
			}
		}
		w.emit(subscriptReturnType(n), FragmentIdentifier, typ)

	case "dictionary_literal":
		for i := 0; i < int(n.ChildCount()); i++ {
			field := n.FieldNameForChild(i)
			if field != "key" && field != "value" {
				continue
			}
			// literals are picked up by the string case
			if c := n.Child(i); !hasSwiftLiteral(c) {
				w.emit(c, FragmentIdentifier, "dictionary_"+field)
			}
		}

	case "guard_statement":
		w.visitGuard(n)
	}

	w.walkChildren(n, w.visitSwift)
}

// visitGuard emits the names bound by `guard let` conditions and their initializers.
func (w *nodeWalker) visitGuard(n *sitter.Node) {
	expectName, expectValue := false, false
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch {
		case c.Type() == "else":
			return
		case c.Type() == "value_binding_pattern":
			expectName = true
		case c.Type() == "=":
			expectValue = true
		case !c.IsNamed():
		case expectName:
			w.emit(descendantOfType(c, "simple_identifier"), FragmentIdentifier, "guard_binding")
			expectName = false
		case expectValue:
			if !hasSwiftLiteral(c) {
				w.emit(c, FragmentIdentifier, "guard_value")
			}
			expectValue = false
		}
	}
}

func subscriptReturnType(n *sitter.Node) *sitter.Node {
	if rt := n.ChildByFieldName("return_type"); rt != nil {
		return rt
	}
	for i := 0; i+1 < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "->" {
			return n.Child(i + 1)
		}
	}
	return nil
}

// hasSwiftLiteral reports whether n is or contains a literal.
func hasSwiftLiteral(n *sitter.Node) bool {
	if strings.HasSuffix(n.Type(), "_literal") {
		return true
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if hasSwiftLiteral(n.NamedChild(i)) {
			return true
		}
	}
	return false
}
