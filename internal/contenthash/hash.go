// Package contenthash computes the non-cryptographic signature used to
// key and verify the parse-tree cache (internal/cache), grounded on the
// original analyzer's ContentHasher trait: a single 64-bit digest of a
// source's raw bytes, fast enough to run on every file on every build.
package contenthash

import "github.com/cespare/xxhash/v2"

// Hasher computes a 64-bit content signature. The default
// implementation wraps xxhash; any other implementation can be passed
// to the tree builder in its place.
type Hasher interface {
	Sum(content []byte) uint64
}

// XXHash is the production Hasher, grounded on the teacher's own use of
// cespare/xxhash/v2 for fast equality checks over file content.
type XXHash struct{}

func (XXHash) Sum(content []byte) uint64 {
	return xxhash.Sum64(content)
}

// New returns the production Hasher.
func New() Hasher {
	return XXHash{}
}
