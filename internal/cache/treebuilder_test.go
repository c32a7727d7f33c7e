package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/cache"
	"github.com/ara-lang/forest/internal/collector"
	"github.com/ara-lang/forest/internal/contenthash"
	"github.com/ara-lang/forest/internal/langparser"
	"github.com/ara-lang/forest/internal/treeblob"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBuildColdCachesThenHits(t *testing.T) {
	root := t.TempDir()
	cacheDir := t.TempDir()
	srcPath := filepath.Join(root, "src", "a.ara")
	writeFile(t, srcPath, "namespace A;")

	file := collector.Discovered{AbsolutePath: srcPath, Origin: "src/a.ara", Kind: ast.SourceScript}

	builder := cache.NewBuilder(root, cacheDir, contenthash.New(), treeblob.New(), langparser.New())

	source, tree, rep, err := builder.Build(file)
	require.NoError(t, err)
	require.Nil(t, rep)
	require.NotNil(t, tree)
	assert.Equal(t, "src/a.ara", source.Origin)

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, tree2, rep2, err := builder.Build(file)
	require.NoError(t, err)
	require.Nil(t, rep2)
	require.Len(t, tree2.Declarations, 1)
}

func TestBuildDetectsStaleCacheOnContentChange(t *testing.T) {
	root := t.TempDir()
	cacheDir := t.TempDir()
	srcPath := filepath.Join(root, "src", "a.ara")
	writeFile(t, srcPath, "namespace A;")

	file := collector.Discovered{AbsolutePath: srcPath, Origin: "src/a.ara", Kind: ast.SourceScript}
	builder := cache.NewBuilder(root, cacheDir, contenthash.New(), treeblob.New(), langparser.New())

	_, _, _, err := builder.Build(file)
	require.NoError(t, err)

	writeFile(t, srcPath, "namespace B;")
	_, tree, rep, err := builder.Build(file)
	require.NoError(t, err)
	require.Nil(t, rep)
	require.Equal(t, "B", tree.Declarations[0].Field(ast.FieldName).Text)
}

func TestBuildWithoutCacheDirParsesDirectly(t *testing.T) {
	root := t.TempDir()
	srcPath := filepath.Join(root, "src", "a.ara")
	writeFile(t, srcPath, "namespace A;")

	file := collector.Discovered{AbsolutePath: srcPath, Origin: "src/a.ara", Kind: ast.SourceScript}
	builder := cache.NewBuilder(root, "", contenthash.New(), treeblob.New(), langparser.New())

	_, tree, rep, err := builder.Build(file)
	require.NoError(t, err)
	require.Nil(t, rep)
	require.NotNil(t, tree)
}

func TestBuildPropagatesParseError(t *testing.T) {
	root := t.TempDir()
	srcPath := filepath.Join(root, "src", "bad.ara")
	writeFile(t, srcPath, "class {}")

	file := collector.Discovered{AbsolutePath: srcPath, Origin: "src/bad.ara", Kind: ast.SourceScript}
	builder := cache.NewBuilder(root, "", contenthash.New(), treeblob.New(), langparser.New())

	_, tree, rep, err := builder.Build(file)
	require.NoError(t, err)
	assert.Nil(t, tree)
	require.NotNil(t, rep)
}
