package rules

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// OperationCannotBeUsedForReading flags an array-push expression
// ("$a[] = v" used as a value) appearing anywhere a value is actually
// read, grounded on the original analyzer's
// analyzer/visitor/operation_cannot_be_used_for_reading.rs. Array push is the one
// expression shape in this grammar that has no readable value: it is
// valid only as the left-hand side of an assignment.
type OperationCannotBeUsedForReading struct{}

func (OperationCannotBeUsedForReading) Visit(origin string, node *ast.Node, _ visitor.Ancestry) []issue.Issue {
	var values []*ast.Node
	switch node.Kind {
	case ast.KindWhile, ast.KindDoWhile, ast.KindIf:
		values = append(values, node.Field(ast.FieldCondition))
	case ast.KindFor:
		values = append(values, node.Field(ast.FieldCondition))
	case ast.KindForeach:
		values = append(values, node.Field(ast.FieldCollection))
	case ast.KindReturn, ast.KindThrow:
		values = append(values, node.Field(ast.FieldValue))
	case ast.KindCall, ast.KindNew:
		values = append(values, node.List(ast.ListArguments)...)
	case ast.KindAssign:
		// The right-hand side is a read position; the left-hand side is
		// validated separately by AssignToUnwriteable.
		values = append(values, node.Field(ast.FieldValue))
	default:
		return nil
	}

	var issues []issue.Issue
	for _, v := range values {
		issues = append(issues, scanReadPosition(origin, v)...)
	}
	return issues
}

func scanReadPosition(origin string, expr *ast.Node) []issue.Issue {
	if expr == nil {
		return nil
	}
	var issues []issue.Issue
	if expr.Kind == ast.KindArrayPush {
		issues = append(issues, issue.New("OperationCannotBeUsedForReading", issue.Error,
			"array push has no value and cannot be used here", origin, expr.Range))
	}
	for _, child := range expr.Children() {
		if child.IsExpression() {
			issues = append(issues, scanReadPosition(origin, child)...)
		}
	}
	return issues
}
