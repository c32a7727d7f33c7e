package analyzer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ara-lang/forest/internal/analyzer"
	"github.com/ara-lang/forest/internal/config"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestRunReturnsCleanReportForValidProject(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/greeter.ara": "namespace App;\n\nclass Greeter {\n}\n",
	})

	cfg, err := config.Load(root, "", config.Overrides{})
	require.NoError(t, err)

	result, err := analyzer.Run(cfg)
	require.NoError(t, err)
	require.NotNil(t, result.Report)
	assert.False(t, result.Report.HasErrorOrAbove())
}

func TestRunFlagsDuplicateDefinitionAcrossSources(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/a.ara": "namespace App;\n\nclass Widget {\n}\n",
		"src/b.ara": "namespace App;\n\nclass Widget {\n}\n",
	})

	cfg, err := config.Load(root, "", config.Overrides{})
	require.NoError(t, err)

	result, err := analyzer.Run(cfg)
	require.NoError(t, err)
	require.NotNil(t, result.Report)
	assert.True(t, result.Report.HasErrorOrAbove())

	var codes []string
	for _, iss := range result.Report.Issues {
		codes = append(codes, iss.Code)
	}
	assert.Contains(t, codes, "DuplicateItemDefinition")
}

func TestRunHonorsAnalyzerIgnoreList(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/a.ara": "namespace App;\n\nclass Widget {\n}\n",
		"src/b.ara": "namespace App;\n\nclass Widget {\n}\n",
	})

	// DuplicateItemDefinition is error severity: the ignore list can
	// record an attempt to silence it, but it is never actually
	// suppressed.
	cfg, err := config.Load(root, "", config.Overrides{AppendIgnore: []string{"DuplicateItemDefinition"}})
	require.NoError(t, err)

	result, err := analyzer.Run(cfg)
	require.NoError(t, err)
	assert.True(t, result.Report.HasErrorOrAbove())
	assert.Positive(t, result.Report.AttemptedIgnoreErrors())
}
