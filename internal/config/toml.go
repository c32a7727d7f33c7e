package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/ara-lang/forest/internal/foresterr"
	"github.com/ara-lang/forest/internal/report"
)

// tomlDocument mirrors Config's shape with string-typed enum fields, the
// form a .forest.toml file is written in (matching the original
// analyzer's .ara.toml: "auto"/"always"/"never" and
// "default"/"compact"/"comfortable" as plain strings, not integers).
type tomlDocument struct {
	Root        string   `toml:"root"`
	Source      string   `toml:"source"`
	Definitions []string `toml:"definitions"`
	Cache       string   `toml:"cache"`
	Threads     int      `toml:"threads"`
	Logger      string   `toml:"logger"`
	LogLevel    string   `toml:"log-level"`
	Reporting   struct {
		Color string `toml:"color"`
		ASCII bool   `toml:"ascii"`
		Style string `toml:"style"`
	} `toml:"reporting"`
	Analyzer struct {
		Ignore []string `toml:"ignore"`
	} `toml:"analyzer"`
}

func loadTOML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, foresterr.Wrap(foresterr.IO, "reading "+path, err)
	}

	var doc tomlDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, foresterr.Wrap(foresterr.Decode, "decoding "+path, err)
	}

	cfg := defaults(doc.Root)
	cfg.Root = doc.Root
	cfg.Source = doc.Source
	cfg.Definitions = doc.Definitions
	cfg.Cache = doc.Cache
	if doc.Threads > 0 {
		cfg.Threads = doc.Threads
	}
	cfg.Logger = doc.Logger
	cfg.LogLevel = doc.LogLevel
	cfg.Analyzer.Ignore = doc.Analyzer.Ignore

	if doc.Reporting.Color != "" {
		color, err := parseColor(doc.Reporting.Color)
		if err != nil {
			return nil, err
		}
		cfg.Reporting.Color = color
	} else {
		cfg.Reporting.Color = report.ColorAuto
	}
	cfg.Reporting.ASCII = doc.Reporting.ASCII
	if doc.Reporting.Style != "" {
		style, err := parseStyle(doc.Reporting.Style)
		if err != nil {
			return nil, err
		}
		cfg.Reporting.Style = style
	} else {
		cfg.Reporting.Style = report.StyleDefault
	}

	return cfg, nil
}
