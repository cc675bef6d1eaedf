// scanner/go_parser.go
package scanner

import (
	"go/ast"
	"go/parser"
	"go/token"
)

// ExtractGo uses go/ast to collect declared names and string literals of a Go file.
func ExtractGo(filePath string, src []byte) ([]Fragment, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filePath, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	lines := newSourceText(src)
	var fragments []Fragment
	emit := func(pos token.Pos, text string, kind FragmentKind, node string) {
		if text == "" || text == "_" {
			return
		}
		fragments = append(fragments, Fragment{
			Content:  text,
			Position: lines.position(fset.Position(pos).Offset),
			Kind:     kind,
			Node:     node,
		})
	}
	emitIdents := func(idents []*ast.Ident, node string) {
		for _, id := range idents {
			emit(id.Pos(), id.Name, FragmentIdentifier, node)
		}
	}

	var visit func(ast.Node) bool
	visit = func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncDecl:
			emit(n.Name.Pos(), n.Name.Name, FragmentIdentifier, "func_decl")
		case *ast.TypeSpec:
			emit(n.Name.Pos(), n.Name.Name, FragmentIdentifier, "type_spec")
		case *ast.ValueSpec:
			emitIdents(n.Names, "value_spec")
		case *ast.Field:
			// parameters, results, struct fields, interface methods, type parameters;
			// struct tags are skipped
			emitIdents(n.Names, "field")
			if n.Tag != nil {
				ast.Inspect(n.Type, visit)
				return false
			}
		case *ast.AssignStmt:
			if n.Tok == token.DEFINE {
				for _, lhs := range n.Lhs {
					if id, ok := lhs.(*ast.Ident); ok {
						emit(id.Pos(), id.Name, FragmentIdentifier, "short_var_decl")
					}
				}
			}
		case *ast.RangeStmt:
			if n.Tok == token.DEFINE {
				for _, e := range []ast.Expr{n.Key, n.Value} {
					if id, ok := e.(*ast.Ident); ok {
						emit(id.Pos(), id.Name, FragmentIdentifier, "range_var")
					}
				}
			}
		case *ast.LabeledStmt:
			emit(n.Label.Pos(), n.Label.Name, FragmentIdentifier, "label")
		case *ast.BasicLit:
			if n.Kind == token.STRING {
				emit(n.Pos(), n.Value, FragmentString, "string_lit")
			}
		case *ast.ImportSpec:
			// import paths are not prose
			return false
		}
		return true
	}
	ast.Inspect(file, visit)
	return fragments, nil
}
