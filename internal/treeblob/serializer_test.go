package treeblob_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/treeblob"
)

func TestGobSerializerRoundTrip(t *testing.T) {
	name := ast.NewNode(ast.KindIdentifier, ast.Range{Initial: 9, Final: 13})
	name.Text = "Void"
	class := ast.NewNode(ast.KindClass, ast.Range{Initial: 0, Final: 20})
	class.SetField(ast.FieldName, name)
	class.SetList(ast.ListMembers, nil)

	tree := ast.SignedTree{
		Signature: 0xdeadbeef,
		Tree:      ast.NewTree("Void.ara", []*ast.Node{class}),
	}

	s := treeblob.New()
	data, err := s.Encode(tree)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := s.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, tree.Signature, decoded.Signature)
	assert.Equal(t, tree.Tree.Source, decoded.Tree.Source)
	require.Len(t, decoded.Tree.Declarations, 1)
	got := decoded.Tree.Declarations[0]
	assert.Equal(t, ast.KindClass, got.Kind)
	assert.Equal(t, "Void", got.Field(ast.FieldName).Text)
	assert.Equal(t, ast.Range{Initial: 9, Final: 13}, got.Field(ast.FieldName).Range)
}

func TestGobSerializerDecodeGarbageFails(t *testing.T) {
	s := treeblob.New()
	_, err := s.Decode([]byte("not a gob stream"))
	assert.Error(t, err)
}
