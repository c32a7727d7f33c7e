package rules

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// ThisSelfStaticParentScope restricts $this, self, static, and parent
// to classish scopes, grounded on the original analyzer's
// analyzer/visitor/using_this_outside_of_class_scope.rs.
type ThisSelfStaticParentScope struct{}

func isClassish(n *ast.Node) bool {
	switch n.Kind {
	case ast.KindClass, ast.KindInterface, ast.KindUnitEnum, ast.KindStringBackedEnum, ast.KindIntBackedEnum:
		return true
	default:
		return false
	}
}

func (ThisSelfStaticParentScope) Visit(origin string, node *ast.Node, ancestry visitor.Ancestry) []issue.Issue {
	switch node.Kind {
	case ast.KindThis:
		if _, ok := ancestry.Nearest(func(n *ast.Node) bool {
			return n.Kind == ast.KindParameter || n.Kind == ast.KindProperty
		}); ok {
			return []issue.Issue{issue.New("ThisUsedInDeclarationContext", issue.Error,
				"$this cannot be used in a parameter or property declaration", origin, node.Range)}
		}
		if _, ok := ancestry.Nearest(isClassish); !ok {
			return []issue.Issue{issue.New("ThisUsedOutsideClassScope", issue.Error,
				"$this can only be used inside a class, interface, or enum", origin, node.Range)}
		}

	case ast.KindSelf:
		if _, ok := ancestry.Nearest(isClassish); !ok {
			return []issue.Issue{issue.New("SelfUsedOutsideClassScope", issue.Error,
				"self can only be used inside a class, interface, or enum", origin, node.Range)}
		}

	case ast.KindStatic:
		if _, ok := ancestry.Nearest(isClassish); !ok {
			return []issue.Issue{issue.New("StaticUsedOutsideClassScope", issue.Error,
				"static can only be used inside a class, interface, or enum", origin, node.Range)}
		}

	case ast.KindParent:
		scope, ok := ancestry.Nearest(isClassish)
		if !ok {
			return []issue.Issue{issue.New("ParentUsedOutsideClassScope", issue.Error,
				"parent can only be used inside a class, interface, or enum", origin, node.Range)}
		}
		if len(scope.List(ast.ListExtends)) == 0 {
			return []issue.Issue{issue.New("ParentRequiresExtends", issue.Error,
				"parent can only be used when the enclosing declaration has a declared extends", origin, node.Range)}
		}
	}
	return nil
}
