package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ara-lang/forest/internal/ast"
)

func TestForestSourceFor(t *testing.T) {
	a := ast.NewSource("a.ara", ast.SourceScript, []byte("x"))
	b := ast.NewSource("b.ara", ast.SourceDefinition, []byte("y"))
	forest := ast.NewForest([]ast.Source{a, b}, []*ast.Tree{ast.NewTree("a.ara", nil), ast.NewTree("b.ara", nil)})

	got, ok := forest.SourceFor("b.ara")
	assert.True(t, ok)
	assert.Equal(t, b, got)

	_, ok = forest.SourceFor("missing.ara")
	assert.False(t, ok)
}

func TestSourceKindString(t *testing.T) {
	assert.Equal(t, "script", ast.SourceScript.String())
	assert.Equal(t, "definition", ast.SourceDefinition.String())
}
