package langparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/langparser"
)

func TestParseClassWithNamespaceAndUse(t *testing.T) {
	src := []byte(`namespace Foo;

use Foo\Bar;

class Void {
	public int $count = 0;

	function increment(): void {
		$this->count = $this->count + 1;
	}
}
`)

	p := langparser.New()
	tree, report := p.Parse("void.ara", src)
	require.Nil(t, report, "unexpected parse report")
	require.NotNil(t, tree)
	require.Len(t, tree.Declarations, 3)

	assert.Equal(t, ast.KindNamespace, tree.Declarations[0].Kind)
	assert.Equal(t, ast.KindUseDefault, tree.Declarations[1].Kind)

	class := tree.Declarations[2]
	assert.Equal(t, ast.KindClass, class.Kind)
	assert.Equal(t, "Void", class.Field(ast.FieldName).Text)

	members := class.List(ast.ListMembers)
	require.Len(t, members, 2)
	assert.Equal(t, ast.KindProperty, members[0].Kind)
	assert.Equal(t, ast.KindMethod, members[1].Kind)
}

func TestParseFunctionWithVariadicParameter(t *testing.T) {
	src := []byte(`function f(int ...$xs): void {
	return;
}
`)
	p := langparser.New()
	tree, report := p.Parse("f.ara", src)
	require.Nil(t, report)
	require.Len(t, tree.Declarations, 1)

	fn := tree.Declarations[0]
	params := fn.List(ast.ListParameters)
	require.Len(t, params, 1)
	assert.True(t, params[0].Flag, "expected variadic flag set")
}

func TestParseSyntaxErrorYieldsReport(t *testing.T) {
	src := []byte(`class {}`)
	p := langparser.New()
	tree, report := p.Parse("bad.ara", src)
	assert.Nil(t, tree)
	require.NotNil(t, report)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "SyntaxError", report.Issues[0].Code)
}

func TestParseIfElseifElse(t *testing.T) {
	src := []byte(`function f(): void {
	if ($x == 1) {
		return;
	} elseif ($x == 2) {
		return;
	} else {
		return;
	}
}
`)
	p := langparser.New()
	_, report := p.Parse("f.ara", src)
	require.Nil(t, report)
}

func TestParseEnumBacked(t *testing.T) {
	src := []byte(`enum Suit: string {
	case Hearts = "hearts";
	case Spades = "spades";
}
`)
	p := langparser.New()
	tree, report := p.Parse("suit.ara", src)
	require.Nil(t, report)
	require.Len(t, tree.Declarations, 1)
	e := tree.Declarations[0]
	assert.Equal(t, ast.KindStringBackedEnum, e.Kind)
	assert.Len(t, e.List(ast.ListCases), 2)
}
