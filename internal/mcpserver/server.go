// Package mcpserver exposes forest's analysis pipeline as a single MCP
// tool, grounded on the teacher's internal/mcp server shape
// (mcp.NewServer/AddTool/StdioTransport, request handlers that
// unmarshal a params struct and return createJSONResponse-style
// results).
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ara-lang/forest/internal/analyzer"
	"github.com/ara-lang/forest/internal/config"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/logger"
)

var log = logger.Component("mcpserver")

// Server wraps one MCP server instance exposing the "analyze_project"
// tool over stdio.
type Server struct {
	server *mcp.Server
}

// New builds a Server and registers its tool set.
func New() *Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "forest-mcp-server",
		Version: "0.1.0",
	}, nil)

	s := &Server{server: server}
	s.registerTools()
	return s
}

// Start runs the server over stdio until ctx is cancelled or the
// client disconnects. Stdio mode is engaged on the shared logger for
// the duration of the run, since stray log writes would corrupt the
// protocol stream sharing stdout.
func (s *Server) Start(ctx context.Context) error {
	logger.SetStdioMode(true)
	defer logger.SetStdioMode(false)
	log.Infof("starting stdio transport")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// analyzeProjectParams is "analyze_project"'s input: the same options
// the CLI wrapper accepts, minus the output-rendering flags (the tool
// always returns structured JSON, per SPEC_FULL §4.13).
type analyzeProjectParams struct {
	Project string   `json:"project"`
	Config  string   `json:"config,omitempty"`
	Ignore  []string `json:"ignore,omitempty"`
}

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "analyze_project",
		Description: "Run forest's full parse-and-lint pipeline over a project and return the diagnostic report as structured JSON.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"project": {
					Type:        "string",
					Description: "Path to the project root to analyze",
				},
				"config": {
					Type:        "string",
					Description: "Path to an explicit configuration file, overriding the project's .forest.toml/.forest.kdl discovery",
				},
				"ignore": {
					Type:        "array",
					Items:       &jsonschema.Schema{Type: "string"},
					Description: "Diagnostic codes to suppress in addition to the project's configured analyzer.ignore list",
				},
			},
			Required: []string{"project"},
		},
	}, s.handleAnalyzeProject)
}

func (s *Server) handleAnalyzeProject(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params analyzeProjectParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult("analyze_project", fmt.Errorf("invalid parameters: %w", err))
	}
	if params.Project == "" {
		return errorResult("analyze_project", fmt.Errorf("\"project\" is required"))
	}

	cfg, err := config.Load(params.Project, params.Config, config.Overrides{AppendIgnore: params.Ignore})
	if err != nil {
		return errorResult("analyze_project", err)
	}

	result, err := analyzer.Run(cfg)
	if err != nil {
		return errorResult("analyze_project", err)
	}

	return jsonResult(toolReport{
		Issues: toolIssues(result.Report.Issues),
		Footer: result.Report.Footer(),
	})
}

type toolReport struct {
	Issues []toolIssue `json:"issues"`
	Footer string      `json:"footer"`
}

type toolIssue struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Origin   string `json:"origin"`
	Initial  int    `json:"initial"`
	Final    int    `json:"final"`
}

func toolIssues(issues []issue.Issue) []toolIssue {
	out := make([]toolIssue, len(issues))
	for i, iss := range issues {
		out[i] = toolIssue{
			Code:     iss.Code,
			Severity: iss.Severity.String(),
			Message:  iss.Message,
			Origin:   iss.Origin,
			Initial:  iss.Range.Initial,
			Final:    iss.Range.Final,
		}
	}
	return out
}

func jsonResult(data any) (*mcp.CallToolResult, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshaling response: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(content)}},
	}, nil
}

func errorResult(operation string, err error) (*mcp.CallToolResult, error) {
	result, marshalErr := jsonResult(map[string]any{
		"success":   false,
		"operation": operation,
		"error":     err.Error(),
	})
	if marshalErr != nil {
		return nil, marshalErr
	}
	result.IsError = true
	return result, nil
}
