package collector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/collector"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCollectClassifiesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "a.ara"), "namespace A;")
	writeFile(t, filepath.Join(root, "src", "nested", "b.ara"), "namespace B;")
	writeFile(t, filepath.Join(root, "defs", "c.d.ara"), "namespace C;")
	writeFile(t, filepath.Join(root, "src", "ignore.txt"), "nope")

	c := collector.New(root, "src", []string{"defs"})
	files, err := c.Collect()
	require.NoError(t, err)
	require.Len(t, files, 3)

	byOrigin := map[string]ast.SourceKind{}
	for _, f := range files {
		byOrigin[f.Origin] = f.Kind
	}
	assert.Equal(t, ast.SourceScript, byOrigin["src/a.ara"])
	assert.Equal(t, ast.SourceScript, byOrigin["src/nested/b.ara"])
	assert.Equal(t, ast.SourceDefinition, byOrigin["defs/c.d.ara"])
}

func TestCollectMissingDirIsInvalidPath(t *testing.T) {
	root := t.TempDir()
	c := collector.New(root, "nope", nil)
	_, err := c.Collect()
	require.Error(t, err)
}

func TestCollectEmptyDirIsNotAnError(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))

	c := collector.New(root, "src", nil)
	files, err := c.Collect()
	require.NoError(t, err)
	assert.Empty(t, files)
}
