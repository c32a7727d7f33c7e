package rules

import (
	"strings"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

var arithmeticBinaryOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true, "**": true}
var logicalBinaryOps = map[string]bool{"&&": true, "||": true}
var comparisonBinaryOps = map[string]bool{"==": true, "!=": true, "===": true, "!==": true, "<=>": true, "<": true, "<=": true, ">": true, ">=": true}

// InvalidOperandForArithmetic classifies each operand of an arithmetic
// binary, unary, or inc/dec operation, grounded on the original
// analyzer's analyzer/visitor/invalid_operand_for_arithmetic_operation.rs.
type InvalidOperandForArithmetic struct{}

func (InvalidOperandForArithmetic) Visit(origin string, node *ast.Node, _ visitor.Ancestry) []issue.Issue {
	switch node.Kind {
	case ast.KindBinary:
		if !arithmeticBinaryOps[node.Text] {
			return nil
		}
		var issues []issue.Issue
		if left := node.Field(ast.FieldLeft); left != nil {
			issues = append(issues, checkOperand(origin, left, false)...)
		}
		if right := node.Field(ast.FieldRight); right != nil {
			issues = append(issues, checkOperand(origin, right, false)...)
		}
		return issues

	case ast.KindUnary:
		if node.Text != "+" && node.Text != "-" {
			return nil
		}
		return checkOperand(origin, node.Field(ast.FieldOperand), false)

	case ast.KindIncDec:
		return checkOperand(origin, node.Field(ast.FieldOperand), true)

	default:
		return nil
	}
}

// checkOperand reports a single issue if operand cannot participate in
// an arithmetic operation. Nested arithmetic operations are skipped:
// they are validated again when the traverser visits them directly.
func checkOperand(origin string, operand *ast.Node, incDecContext bool) []issue.Issue {
	if operand == nil {
		return nil
	}
	reason := invalidOperand(operand, incDecContext)
	if reason == "" {
		return nil
	}
	return []issue.Issue{issue.New("InvalidOperandForArithmeticOperation", issue.Error,
		reason, origin, operand.Range)}
}

func invalidOperand(operand *ast.Node, incDecContext bool) string {
	switch operand.Kind {
	case ast.KindLiteral:
		if operand.Text == "true" || operand.Text == "false" {
			return "a boolean literal cannot be used as an arithmetic operand"
		}
		if operand.Text == "null" {
			return "null cannot be used as an arithmetic operand"
		}
		if strings.HasPrefix(operand.Text, `"`) || strings.HasPrefix(operand.Text, "'") {
			return "a string literal cannot be used as an arithmetic operand"
		}
		return ""
	case ast.KindVariable:
		return ""
	case ast.KindBinary:
		if arithmeticBinaryOps[operand.Text] {
			return ""
		}
		if logicalBinaryOps[operand.Text] {
			return "the result of a logical operation cannot be used as an arithmetic operand"
		}
		if comparisonBinaryOps[operand.Text] {
			return "the result of a comparison cannot be used as an arithmetic operand"
		}
		return ""
	case ast.KindUnary:
		if operand.Text == "+" || operand.Text == "-" {
			return ""
		}
		return "the result of a logical operation cannot be used as an arithmetic operand"
	case ast.KindIncDec:
		return ""
	case ast.KindTernary:
		if r := invalidOperand(operand.Field(ast.FieldConsequence), incDecContext); r != "" {
			return r
		}
		return invalidOperand(operand.Field(ast.FieldAlternative), incDecContext)
	case ast.KindShortTernary, ast.KindCoalesce:
		return invalidOperand(operand.Field(ast.FieldAlternative), incDecContext)
	case ast.KindExit:
		return "an exit construct cannot be used as an arithmetic operand"
	case ast.KindAsyncBlock:
		return "an async block cannot be used as an arithmetic operand"
	case ast.KindArrayPush, ast.KindUnset, ast.KindIsset:
		return "this operation has no usable value as an arithmetic operand"
	case ast.KindNew, ast.KindMethodClosureCreation, ast.KindStaticMethodClosureCreation,
		ast.KindFunctionClosureCreation, ast.KindClassConstFetch:
		return "a class operation cannot be used as an arithmetic operand"
	case ast.KindClone:
		return "a clone expression cannot be used as an arithmetic operand"
	case ast.KindNullsafePropertyFetch:
		return "a nullsafe access cannot be used as an arithmetic operand"
	case ast.KindThis:
		return "$this cannot be used as an arithmetic operand"
	case ast.KindInstanceof, ast.KindIs, ast.KindAs:
		return "a type test cannot be used as an arithmetic operand"
	case ast.KindRange:
		return "a range expression cannot be used as an arithmetic operand"
	case ast.KindStringConcat:
		return "a string concatenation cannot be used as an arithmetic operand"
	case ast.KindAnonymousFunction, ast.KindArrowFunction:
		return "a function expression cannot be used as an arithmetic operand"
	case ast.KindVec, ast.KindDict, ast.KindTuple:
		return "a collection literal cannot be used as an arithmetic operand"
	case ast.KindMagicConstant:
		if operand.Text == "__LINE__" {
			return ""
		}
		return "this magic constant cannot be used as an arithmetic operand"
	default:
		return ""
	}
}
