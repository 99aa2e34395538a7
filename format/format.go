package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/maakit/pipefmt/debug"
	"github.com/maakit/pipefmt/encode"
	"github.com/maakit/pipefmt/jsonc"
	"github.com/maakit/pipefmt/parse"
)

// Formatter is a single-document formatting pipeline, immutable once
// constructed.
type Formatter struct {
	preserveComments bool
	newline          string
	encOpts          []encode.Opt
}

func New(cfg *Config) (*Formatter, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	var indentChar string
	switch cfg.Indent.Style {
	case "tab":
		indentChar = "\t"
	case "space":
		indentChar = " "
	default:
		return nil, fmt.Errorf("%w: indent style %q (want tab or space)", ErrConfig, cfg.Indent.Style)
	}
	width := cfg.Indent.Width
	if width < 0 {
		return nil, fmt.Errorf("%w: indent width %d", ErrConfig, width)
	}
	switch cfg.FileHandling.Encoding {
	case "", "utf-8":
	default:
		return nil, fmt.Errorf("%w: encoding %q (only utf-8 is supported)", ErrConfig, cfg.FileHandling.Encoding)
	}
	newline := "\n"
	switch cfg.FileHandling.Newline {
	case "", "LF":
	case "CRLF":
		newline = "\r\n"
	default:
		return nil, fmt.Errorf("%w: newline %q (want LF or CRLF)", ErrConfig, cfg.FileHandling.Newline)
	}
	rules := make([]*encode.Rule, 0, len(cfg.Formatting.Rules))
	for _, rc := range cfg.Formatting.Rules {
		action, err := encode.ParseRuleAction(rc.Action)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		rule, err := encode.CompileRule(rc.Name, rc.When, action)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		rules = append(rules, rule)
	}
	f := &Formatter{
		preserveComments: cfg.FileHandling.PreserveComments,
		newline:          newline,
		encOpts: []encode.Opt{
			encode.Indent(strings.Repeat(indentChar, width)),
			encode.InlineThreshold(cfg.Formatting.SimpleArrayThreshold),
			encode.CoordinateFields(cfg.Formatting.CoordinateFields...),
			encode.ControlFlowFields(cfg.Formatting.ControlFlowFields...),
			encode.AlwaysMultilineFields(cfg.Formatting.AlwaysMultilineFields...),
		},
	}
	if len(rules) > 0 {
		f.encOpts = append(f.encOpts, encode.Rules(rules...))
	}
	return f, nil
}

// Format runs the pipeline over one document: strip comments, parse,
// render, reattach comments. Reattachment is best-effort; any failure in
// it degrades to the plain rendered text. All other failures are
// returned.
func (f *Formatter) Format(text []byte) ([]byte, error) {
	if len(bytes.TrimSpace(text)) == 0 {
		return nil, ErrNoInput
	}
	node, err := parse.Parse(jsonc.Strip(text))
	if err != nil {
		return nil, err
	}
	rendered, err := encode.String(node, f.encOpts...)
	if err != nil {
		return nil, err
	}
	out := rendered
	if f.preserveComments {
		out = reattach(string(text), rendered)
	}
	if f.newline != "\n" {
		out = strings.ReplaceAll(out, "\n", f.newline)
	}
	return []byte(out), nil
}

// FormatString is Format on strings.
func (f *Formatter) FormatString(text string) (string, error) {
	out, err := f.Format([]byte(text))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// reattachText is a seam for tests of the recovery path below.
var reattachText = jsonc.Reattach

// reattach shields the pipeline from the reattachment heuristic: on any
// panic the plain rendered text is used instead.
func reattach(original, rendered string) (res string) {
	defer func() {
		if r := recover(); r != nil {
			if debug.Reattach() {
				debug.Logf("reattach: recovered: %v", r)
			}
			res = rendered
		}
	}()
	return reattachText(original, rendered)
}
