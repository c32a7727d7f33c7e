package config

import (
	"os"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/ara-lang/forest/internal/foresterr"
	"github.com/ara-lang/forest/internal/report"
)

// loadKDL decodes the teacher's own configuration dialect, offered here
// as an alternate syntax to .forest.toml. Node-walking style (nodeName,
// firstStringArg, firstBoolArg, collectStringArgs) follows the
// teacher's internal/config/kdl_config.go.
func loadKDL(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, foresterr.Wrap(foresterr.IO, "reading "+path, err)
	}

	doc, err := kdl.Parse(strings.NewReader(string(data)))
	if err != nil {
		return nil, foresterr.Wrap(foresterr.Decode, "decoding "+path, err)
	}

	cfg := defaults("")
	cfg.Reporting.Color = report.ColorAuto
	cfg.Reporting.Style = report.StyleDefault

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "root":
			if s, ok := firstStringArg(n); ok {
				cfg.Root = s
			}
		case "source":
			if s, ok := firstStringArg(n); ok {
				cfg.Source = s
			}
		case "definitions":
			cfg.Definitions = collectStringArgs(n)
		case "cache":
			if s, ok := firstStringArg(n); ok {
				cfg.Cache = s
			}
		case "threads":
			if v, ok := firstIntArg(n); ok {
				cfg.Threads = v
			}
		case "logger":
			if s, ok := firstStringArg(n); ok {
				cfg.Logger = s
			}
		case "log-level":
			if s, ok := firstStringArg(n); ok {
				cfg.LogLevel = s
			}
		case "reporting":
			if err := applyReportingNode(cfg, n); err != nil {
				return nil, err
			}
		case "analyzer":
			for _, cn := range n.Children {
				if nodeName(cn) == "ignore" {
					cfg.Analyzer.Ignore = append(cfg.Analyzer.Ignore, collectStringArgs(cn)...)
				}
			}
		}
	}

	return cfg, nil
}

func applyReportingNode(cfg *Config, n *document.Node) error {
	for _, cn := range n.Children {
		switch nodeName(cn) {
		case "color":
			if s, ok := firstStringArg(cn); ok {
				color, err := parseColor(s)
				if err != nil {
					return err
				}
				cfg.Reporting.Color = color
			}
		case "ascii":
			if b, ok := firstBoolArg(cn); ok {
				cfg.Reporting.ASCII = b
			}
		case "style":
			if s, ok := firstStringArg(cn); ok {
				style, err := parseStyle(s)
				if err != nil {
					return err
				}
				cfg.Reporting.Style = style
			}
		}
	}
	return nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if n == nil || len(n.Arguments) == 0 {
		return "", false
	}
	s, ok := n.Arguments[0].Value.(string)
	return s, ok
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if n == nil || len(n.Arguments) == 0 {
		return false, false
	}
	b, ok := n.Arguments[0].Value.(bool)
	return b, ok
}

func firstIntArg(n *document.Node) (int, bool) {
	if n == nil || len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if name := nodeName(child); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}
