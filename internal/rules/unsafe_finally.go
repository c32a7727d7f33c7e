package rules

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// UnsafeFinally flags control-flow statements and generator operations
// reachable from inside a finally block without crossing a nested
// function literal, grounded on the original analyzer's
// analyzer/visitor/unsafe_finally_block.rs.
type UnsafeFinally struct{}

func (UnsafeFinally) Visit(origin string, node *ast.Node, _ visitor.Ancestry) []issue.Issue {
	if node.Kind != ast.KindFinally {
		return nil
	}
	body := node.Field(ast.FieldBody)
	if body == nil {
		return nil
	}
	return scanFinally(origin, body)
}

func scanFinally(origin string, stmt *ast.Node) []issue.Issue {
	var issues []issue.Issue
	switch stmt.Kind {
	case ast.KindBreak, ast.KindContinue, ast.KindReturn, ast.KindThrow:
		issues = append(issues, issue.New("UnsafeControlFlowInFinally", issue.Warning,
			"control-flow statements inside a finally block can suppress the original exception", origin, stmt.Range))
		return issues

	case ast.KindExpressionStatement:
		if value := stmt.Field(ast.FieldValue); value != nil && (value.Kind == ast.KindExit || value.Kind == ast.KindYield) {
			issues = append(issues, issue.New("UnsafeControlFlowInFinally", issue.Warning,
				"exiting or yielding inside a finally block can suppress the original exception", origin, stmt.Range))
		}
		return issues

	case ast.KindBlock, ast.KindStandaloneBlock:
		for _, s := range stmt.List(ast.ListStatements) {
			issues = append(issues, scanFinally(origin, s)...)
		}
	case ast.KindIf:
		if c := stmt.Field(ast.FieldConsequence); c != nil {
			issues = append(issues, scanFinally(origin, c)...)
		}
		if a := stmt.Field(ast.FieldAlternative); a != nil {
			issues = append(issues, scanFinally(origin, a)...)
		}
	case ast.KindWhile, ast.KindDoWhile, ast.KindFor, ast.KindForeach:
		if b := stmt.Field(ast.FieldBody); b != nil {
			issues = append(issues, scanFinally(origin, b)...)
		}
	case ast.KindUsing:
		if b := stmt.Field(ast.FieldBody); b != nil {
			issues = append(issues, scanFinally(origin, b)...)
		}
	case ast.KindTry:
		if t := stmt.Field(ast.FieldTry); t != nil {
			issues = append(issues, scanFinally(origin, t)...)
		}
		for _, c := range stmt.List(ast.ListCatches) {
			issues = append(issues, scanFinally(origin, c)...)
		}
		if f := stmt.Field(ast.FieldFinally); f != nil {
			issues = append(issues, scanFinally(origin, f)...)
		}
	case ast.KindCatch:
		if b := stmt.Field(ast.FieldBody); b != nil {
			issues = append(issues, scanFinally(origin, b)...)
		}
	case ast.KindFinally:
		if b := stmt.Field(ast.FieldBody); b != nil {
			issues = append(issues, scanFinally(origin, b)...)
		}
	}
	return issues
}
