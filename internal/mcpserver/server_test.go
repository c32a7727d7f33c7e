package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func callAnalyze(t *testing.T, params analyzeProjectParams) *mcp.CallToolResult {
	t.Helper()
	s := New()
	raw, err := json.Marshal(params)
	require.NoError(t, err)

	result, err := s.handleAnalyzeProject(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: raw},
	})
	require.NoError(t, err)
	return result
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleAnalyzeProjectReturnsCleanReport(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/greeter.ara": "namespace App;\n\nclass Greeter {\n}\n",
	})

	result := callAnalyze(t, analyzeProjectParams{Project: root})
	require.False(t, result.IsError)

	var report toolReport
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &report))
	assert.Empty(t, report.Issues)
}

func TestHandleAnalyzeProjectRequiresProject(t *testing.T) {
	result := callAnalyze(t, analyzeProjectParams{})
	assert.True(t, result.IsError)
}

func TestHandleAnalyzeProjectAppliesIgnoreOverride(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/a.ara": "namespace App;\n\nclass Void { }\n",
	})

	result := callAnalyze(t, analyzeProjectParams{
		Project: root,
		Ignore:  []string{"NameIsReservedTypeName"},
	})
	require.False(t, result.IsError)

	var report toolReport
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &report))
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "NameIsReservedTypeName", report.Issues[0].Code)
}
