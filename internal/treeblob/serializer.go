// Package treeblob serializes and deserializes the per-source cache
// payload (internal/ast.SignedTree) to and from bytes, grounded on the
// original analyzer's Serializer trait. The original used bincode; no
// library in the retrieved pack fills that same-process binary-blob
// role for Go, so this uses the standard library's encoding/gob, which
// is the idiomatic choice for a Go-only, non-portable, same-binary
// cache format and needs no schema or external dependency to round-trip
// internal/ast.Node's private child maps (see Node.GobEncode).
package treeblob

import (
	"bytes"
	"encoding/gob"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/foresterr"
)

// Serializer converts a SignedTree to and from its cache-blob encoding.
type Serializer interface {
	Encode(tree ast.SignedTree) ([]byte, error)
	Decode(data []byte) (ast.SignedTree, error)
}

// GobSerializer is the production Serializer.
type GobSerializer struct{}

func New() Serializer {
	return GobSerializer{}
}

func (GobSerializer) Encode(tree ast.SignedTree) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&tree); err != nil {
		return nil, foresterr.Wrap(foresterr.Encode, "encode signed tree", err)
	}
	return buf.Bytes(), nil
}

func (GobSerializer) Decode(data []byte) (ast.SignedTree, error) {
	var tree ast.SignedTree
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&tree); err != nil {
		return ast.SignedTree{}, foresterr.Wrap(foresterr.Decode, "decode signed tree", err)
	}
	return tree, nil
}
