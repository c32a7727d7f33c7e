package config

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/ara-lang/forest/internal/foresterr"
)

// configSchema describes the shape a decoded configuration document
// must satisfy before it is merged with CLI overrides, per SPEC_FULL
// §4.11. Reused from the teacher's MCP tool-parameter schema style
// (github.com/google/jsonschema-go), here validating the project's own
// config instead of a tool call's arguments.
var configSchema = &jsonschema.Schema{
	Type:        "object",
	Description: "forest project configuration",
	Properties: map[string]*jsonschema.Schema{
		"root":        {Type: "string", Description: "project root directory"},
		"source":      {Type: "string", Description: "source subdirectory, relative to root"},
		"threads":     {Type: "integer", Description: "worker count; 0 means auto-detect"},
		"log-level":   {Type: "string", Enum: []any{"debug", "info", "warn", "error"}},
		"definitions": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
	},
	Required: []string{"root"},
}

var resolvedConfigSchema *jsonschema.Resolved

func init() {
	resolved, err := configSchema.Resolve(nil)
	if err != nil {
		panic("internal/config: invalid configuration schema: " + err.Error())
	}
	resolvedConfigSchema = resolved
}

// validateSchema checks cfg's shape (not its CLI-override-applied
// values) against configSchema.
func validateSchema(cfg *Config) error {
	instance := map[string]any{
		"root":        cfg.Root,
		"source":      cfg.Source,
		"threads":     cfg.Threads,
		"log-level":   cfg.LogLevel,
		"definitions": cfg.Definitions,
	}
	if err := resolvedConfigSchema.Validate(instance); err != nil {
		return foresterr.Wrap(foresterr.Decode, "configuration failed schema validation", err)
	}
	return nil
}
