package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ara-lang/forest/internal/ast"
)

func TestNodeFieldAndListAccessors(t *testing.T) {
	n := ast.NewNode(ast.KindBinary, ast.Range{Initial: 0, Final: 5})
	left := ast.NewNode(ast.KindVariable, ast.Range{Initial: 0, Final: 1})
	right := ast.NewNode(ast.KindLiteral, ast.Range{Initial: 4, Final: 5})
	n.SetField(ast.FieldLeft, left)
	n.SetField(ast.FieldRight, right)

	assert.Same(t, left, n.Field(ast.FieldLeft))
	assert.Same(t, right, n.Field(ast.FieldRight))
	assert.Nil(t, n.Field(ast.FieldValue))

	children := n.Children()
	assert.Equal(t, []*ast.Node{left, right}, children)
}

func TestNodeSetFieldIgnoresNil(t *testing.T) {
	n := ast.NewNode(ast.KindReturn, ast.Range{})
	n.SetField(ast.FieldValue, nil)
	assert.Nil(t, n.Field(ast.FieldValue))
	assert.Empty(t, n.Children())
}

func TestForChildrenOrder(t *testing.T) {
	init := ast.NewNode(ast.KindAssign, ast.Range{})
	cond := ast.NewNode(ast.KindBinary, ast.Range{})
	update := ast.NewNode(ast.KindIncDec, ast.Range{})
	body := ast.NewNode(ast.KindBlock, ast.Range{})

	forNode := ast.NewNode(ast.KindFor, ast.Range{})
	forNode.SetList(ast.ListForInit, []*ast.Node{init})
	forNode.SetField(ast.FieldCondition, cond)
	forNode.SetList(ast.ListForUpdate, []*ast.Node{update})
	forNode.SetField(ast.FieldBody, body)

	assert.Equal(t, []*ast.Node{init, cond, update, body}, forNode.Children())
}

func TestClassChildrenIncludesName(t *testing.T) {
	name := ast.NewNode(ast.KindIdentifier, ast.Range{Initial: 6, Final: 10})
	name.Text = "Void"
	member := ast.NewNode(ast.KindMethod, ast.Range{})

	class := ast.NewNode(ast.KindClass, ast.Range{})
	class.SetField(ast.FieldName, name)
	class.SetList(ast.ListMembers, []*ast.Node{member})

	children := class.Children()
	if assert.Len(t, children, 2) {
		assert.Same(t, name, children[0])
		assert.Same(t, member, children[1])
	}
}

func TestIsExpression(t *testing.T) {
	assert.True(t, ast.NewNode(ast.KindYield, ast.Range{}).IsExpression())
	assert.True(t, ast.NewNode(ast.KindCall, ast.Range{}).IsExpression())
	assert.False(t, ast.NewNode(ast.KindIf, ast.Range{}).IsExpression())
	assert.False(t, ast.NewNode(ast.KindClass, ast.Range{}).IsExpression())
}

func TestNilNodeIsSafe(t *testing.T) {
	var n *ast.Node
	assert.Nil(t, n.Children())
	assert.Nil(t, n.Field(ast.FieldValue))
	assert.Nil(t, n.List(ast.ListStatements))
}
