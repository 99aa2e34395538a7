package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// Config is the formatting configuration. Its layout matches the pipeline
// tooling's config documents, so files written for those tools load
// directly. See DefaultConfig for the stock tables.
type Config struct {
	Version      string       `json:"version,omitempty"`
	Indent       IndentConfig `json:"indent"`
	Formatting   Formatting   `json:"formatting"`
	FileHandling FileHandling `json:"file_handling"`
}

type IndentConfig struct {
	// Style is "tab" or "space".
	Style string `json:"style"`
	Width int    `json:"width"`
}

type Formatting struct {
	SimpleArrayThreshold  int          `json:"simple_array_threshold"`
	CoordinateFields      []string     `json:"coordinate_fields"`
	ControlFlowFields     []string     `json:"control_flow_fields"`
	AlwaysMultilineFields []string     `json:"always_multiline_fields"`
	Rules                 []RuleConfig `json:"rules,omitempty"`
}

// RuleConfig is a custom layout rule: When is an expr predicate over the
// variables key, kind, size, simple and depth; Action is "inline" or
// "expand".
type RuleConfig struct {
	Name   string `json:"name"`
	When   string `json:"when"`
	Action string `json:"action"`
}

type FileHandling struct {
	PreserveComments bool `json:"preserve_comments"`
	// Encoding is fixed at utf-8.
	Encoding string `json:"encoding"`
	// Newline is "LF" or "CRLF".
	Newline string `json:"newline"`
}

func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Indent: IndentConfig{
			Style: "tab",
			Width: 1,
		},
		Formatting: Formatting{
			SimpleArrayThreshold: 50,
			CoordinateFields: []string{
				"roi", "roi_offset", "target", "target_offset",
				"begin", "begin_offset", "end", "end_offset",
				"lower", "upper",
			},
			ControlFlowFields: []string{
				"next", "interrupt", "on_error", "template",
			},
			AlwaysMultilineFields: []string{
				"custom_action_param", "custom_param",
				"parameters", "params", "options", "config",
			},
		},
		FileHandling: FileHandling{
			PreserveComments: true,
			Encoding:         "utf-8",
			Newline:          "LF",
		},
	}
}

// Load reads a config file in YAML or JSON and applies it over the
// defaults, so partial override files work.
func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg, err := LoadBytes(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	return cfg, nil
}

// LoadBytes parses d (YAML or JSON) and merge-patches it over the default
// configuration. Unknown fields are an error.
func LoadBytes(d []byte) (*Config, error) {
	patch, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, err
	}
	defaults, err := json.Marshal(DefaultConfig())
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(defaults, patch)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	dec := json.NewDecoder(bytes.NewReader(merged))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
