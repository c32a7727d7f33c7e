package pipeline_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ara-lang/forest/internal/cache"
	"github.com/ara-lang/forest/internal/collector"
	"github.com/ara-lang/forest/internal/contenthash"
	"github.com/ara-lang/forest/internal/langparser"
	"github.com/ara-lang/forest/internal/pipeline"
	"github.com/ara-lang/forest/internal/treeblob"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newOrchestrator(root, cacheDir string, threads int) *pipeline.Orchestrator {
	col := collector.New(root, "src", nil)
	builder := cache.NewBuilder(root, cacheDir, contenthash.New(), treeblob.New(), langparser.New())
	return pipeline.New(root, cacheDir, threads, col, builder)
}

func writeSources(t *testing.T, root string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		path := filepath.Join(root, "src", fmt.Sprintf("f%d.ara", i))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("namespace N%d;", i)), 0o644))
	}
}

func TestRunProducesOneTreePerSource(t *testing.T) {
	root := t.TempDir()
	writeSources(t, root, 12)

	o := newOrchestrator(root, "", 4)
	forest, rep, err := o.Run()
	require.NoError(t, err)
	require.Nil(t, rep)
	assert.Len(t, forest.Sources, 12)
	assert.Len(t, forest.Trees, 12)
}

func TestRunEmptyProjectYieldsEmptyForest(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))

	o := newOrchestrator(root, "", 4)
	forest, rep, err := o.Run()
	require.NoError(t, err)
	require.Nil(t, rep)
	assert.Empty(t, forest.Sources)
	assert.Empty(t, forest.Trees)
}

func TestRunReturnsFirstParseReport(t *testing.T) {
	root := t.TempDir()
	writeSources(t, root, 3)
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "bad.ara"), []byte("class {}"), 0o644))

	o := newOrchestrator(root, "", 2)
	forest, rep, err := o.Run()
	require.NoError(t, err)
	assert.Nil(t, forest)
	require.NotNil(t, rep)
}

func TestRunWithThreadsGreaterThanFilesClampsChunks(t *testing.T) {
	root := t.TempDir()
	writeSources(t, root, 2)

	o := newOrchestrator(root, "", 64)
	forest, rep, err := o.Run()
	require.NoError(t, err)
	require.Nil(t, rep)
	assert.Len(t, forest.Sources, 2)
}
