package format

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Indent.Style != "tab" || cfg.Indent.Width != 1 {
		t.Errorf("indent: %+v", cfg.Indent)
	}
	if cfg.Formatting.SimpleArrayThreshold != 50 {
		t.Errorf("threshold: %d", cfg.Formatting.SimpleArrayThreshold)
	}
	if !cfg.FileHandling.PreserveComments {
		t.Error("preserve_comments should default on")
	}
	if cfg.FileHandling.Newline != "LF" {
		t.Errorf("newline: %q", cfg.FileHandling.Newline)
	}
	wantCoord := []string{
		"roi", "roi_offset", "target", "target_offset",
		"begin", "begin_offset", "end", "end_offset",
		"lower", "upper",
	}
	if d := cmp.Diff(wantCoord, cfg.Formatting.CoordinateFields); d != "" {
		t.Errorf("coordinate_fields (-want +got):\n%s", d)
	}
	wantFlow := []string{"next", "interrupt", "on_error", "template"}
	if d := cmp.Diff(wantFlow, cfg.Formatting.ControlFlowFields); d != "" {
		t.Errorf("control_flow_fields (-want +got):\n%s", d)
	}
}

func TestLoadBytesPartialYAML(t *testing.T) {
	cfg, err := LoadBytes([]byte("formatting:\n  simple_array_threshold: 10\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Formatting.SimpleArrayThreshold != 10 {
		t.Errorf("threshold: %d", cfg.Formatting.SimpleArrayThreshold)
	}
	// untouched sections keep defaults
	if d := cmp.Diff(DefaultConfig().Formatting.CoordinateFields, cfg.Formatting.CoordinateFields); d != "" {
		t.Errorf("coordinate_fields changed (-want +got):\n%s", d)
	}
	if cfg.Indent.Style != "tab" {
		t.Errorf("indent style: %q", cfg.Indent.Style)
	}
}

func TestLoadBytesJSON(t *testing.T) {
	cfg, err := LoadBytes([]byte(`{"indent": {"style": "space", "width": 2}}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Indent.Style != "space" || cfg.Indent.Width != 2 {
		t.Errorf("indent: %+v", cfg.Indent)
	}
}

func TestLoadBytesListOverrideReplaces(t *testing.T) {
	cfg, err := LoadBytes([]byte("formatting:\n  control_flow_fields: [next]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"next"}, cfg.Formatting.ControlFlowFields); d != "" {
		t.Errorf("control_flow_fields (-want +got):\n%s", d)
	}
}

func TestLoadBytesUnknownField(t *testing.T) {
	if _, err := LoadBytes([]byte("formating:\n  simple_array_threshold: 10\n")); err == nil {
		t.Error("expected unknown field error")
	}
}

func TestLoadBytesRules(t *testing.T) {
	cfg, err := LoadBytes([]byte(`
formatting:
  rules:
    - name: wide
      when: size > 100
      action: expand
`))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Formatting.Rules) != 1 || cfg.Formatting.Rules[0].Name != "wide" {
		t.Errorf("rules: %+v", cfg.Formatting.Rules)
	}
	if _, err := New(cfg); err != nil {
		t.Errorf("rule should compile: %v", err)
	}
}
