// Package cache implements the per-file tree builder: read, hash,
// cache lookup, signature verification, parse-on-miss, and write-back,
// grounded on the original analyzer's TreeBuilder but keying cache
// blobs by origin rather than content (see DESIGN.md's Open Question
// decision) so a file's cache entry survives content edits without a
// path rename, and is invalidated purely by the embedded signature.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/collector"
	"github.com/ara-lang/forest/internal/contenthash"
	"github.com/ara-lang/forest/internal/foresterr"
	"github.com/ara-lang/forest/internal/langparser"
	"github.com/ara-lang/forest/internal/logger"
	"github.com/ara-lang/forest/internal/report"
	"github.com/ara-lang/forest/internal/treeblob"
)

var log = logger.Component("cache")

// Builder builds one (Source, Tree) pair at a time, consulting the
// on-disk cache when a cache directory is configured.
type Builder struct {
	Root       string
	CacheDir   string // empty means no caching
	Hasher     contenthash.Hasher
	Serializer treeblob.Serializer
	Parser     langparser.Parser
}

func NewBuilder(root, cacheDir string, hasher contenthash.Hasher, serializer treeblob.Serializer, parser langparser.Parser) *Builder {
	return &Builder{Root: root, CacheDir: cacheDir, Hasher: hasher, Serializer: serializer, Parser: parser}
}

// Build runs the full per-file algorithm from spec §4.4.
func (b *Builder) Build(file collector.Discovered) (ast.Source, *ast.Tree, *report.Report, error) {
	content, err := os.ReadFile(file.AbsolutePath)
	if err != nil {
		return ast.Source{}, nil, nil, foresterr.Wrap(foresterr.IO, "reading "+file.AbsolutePath, err)
	}
	source := ast.NewSource(file.Origin, file.Kind, content)

	if b.CacheDir == "" {
		tree, rep := b.Parser.Parse(source.Origin, source.Content)
		return source, tree, rep, nil
	}

	cachedPath := b.cachedPath(source.Origin)

	if tree, ok := b.loadFromCache(source, cachedPath); ok {
		return source, tree, nil, nil
	}

	tree, rep := b.Parser.Parse(source.Origin, source.Content)
	if rep != nil {
		return source, nil, rep, nil
	}

	if err := b.saveToCache(cachedPath, source, tree); err != nil {
		log.Errorf("failed to write cache entry for %s: %v", source.Origin, err)
	}

	return source, tree, nil, nil
}

func (b *Builder) cachedPath(origin string) string {
	key := b.Hasher.Sum([]byte(origin))
	name := strconv.FormatUint(key, 16) + collector.CachedExtension
	return filepath.Join(b.CacheDir, name)
}

func (b *Builder) loadFromCache(source ast.Source, cachedPath string) (*ast.Tree, bool) {
	data, err := os.ReadFile(cachedPath)
	if err != nil {
		return nil, false
	}
	signed, err := b.Serializer.Decode(data)
	if err != nil {
		log.Errorf("corrupt cache entry for %s (%s): %v", source.Origin, cachedPath, err)
		return nil, false
	}
	if signed.Signature != b.Hasher.Sum(source.Content) {
		log.Warnf("stale cache entry for %s (%s): signature mismatch", source.Origin, cachedPath)
		return nil, false
	}
	log.Infof("loaded %s from cache (%s)", source.Origin, cachedPath)
	return signed.Tree, true
}

func (b *Builder) saveToCache(cachedPath string, source ast.Source, tree *ast.Tree) error {
	signed := ast.SignedTree{Signature: b.Hasher.Sum(source.Content), Tree: tree}
	data, err := b.Serializer.Encode(signed)
	if err != nil {
		return foresterr.Wrap(foresterr.Encode, "encoding cache entry for "+source.Origin, err)
	}
	if err := os.WriteFile(cachedPath, data, 0o644); err != nil {
		return foresterr.Wrap(foresterr.IO, fmt.Sprintf("writing cache entry %s", cachedPath), err)
	}
	log.Infof("saved %s to cache (%s)", source.Origin, cachedPath)
	return nil
}
