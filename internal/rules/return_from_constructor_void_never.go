package rules

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// ReturnFromConstructorVoidNever checks a return statement against its
// nearest enclosing function-like ancestor, grounded on the original
// analyzer's analyzer/visitor/return_from_constructor.rs,
// return_from_void_function.rs, and return_from_never_function.rs.
type ReturnFromConstructorVoidNever struct{}

func (ReturnFromConstructorVoidNever) Visit(origin string, node *ast.Node, ancestry visitor.Ancestry) []issue.Issue {
	if node.Kind != ast.KindReturn {
		return nil
	}
	enclosing, ok := ancestry.Nearest(func(n *ast.Node) bool {
		return n.Kind == ast.KindFunction || n.Kind == ast.KindMethod ||
			n.Kind == ast.KindAnonymousFunction || n.Kind == ast.KindArrowFunction
	})
	if !ok {
		return nil
	}

	if enclosing.Kind == ast.KindMethod {
		if name := enclosing.Field(ast.FieldName); name != nil && name.Text == "construct" {
			return []issue.Issue{issue.New("ReturnFromConstructor", issue.Error,
				"a constructor cannot return", origin, node.Range)}
		}
	}

	returnType := enclosing.Field(ast.FieldReturnType)
	if returnType == nil {
		return nil
	}
	if returnType.Kind == ast.KindBottomType {
		return []issue.Issue{issue.New("ReturnFromNeverFunction", issue.Error,
			"a function declared to never return cannot contain a return statement", origin, node.Range)}
	}
	if returnType.Kind == ast.KindStandaloneType && returnType.Text == "void" && node.Field(ast.FieldValue) != nil {
		return []issue.Issue{issue.New("ReturnValueFromVoidFunction", issue.Error,
			"a void function cannot return a value", origin, node.Range)}
	}
	return nil
}
