package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/maakit/pipefmt/format"
	"github.com/maakit/pipefmt/textdiff"
)

func pipefmtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	fcfg, err := cfg.formatConfig()
	if err != nil {
		return fail(err)
	}
	f, err := format.New(fcfg)
	if err != nil {
		return fail(err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	if cfg.Write || cfg.List {
		return rewriteFiles(cfg, cc, f, args)
	}
	differs := false
	for i, path := range args {
		in, err := readInput(cc, path)
		if err != nil {
			return fail(err)
		}
		out, err := f.Format(in)
		if err != nil {
			return fail(err)
		}
		if cfg.Diff {
			lines := textdiff.Lines(string(in), string(out))
			if textdiff.Differs(lines) {
				differs = true
			}
			if err := textdiff.Fprint(cc.Out, lines, cfg.colorize()); err != nil {
				return fail(err)
			}
			continue
		}
		if i > 0 {
			io.WriteString(cc.Out, "\n")
		}
		if _, err := cc.Out.Write(out); err != nil {
			return fail(err)
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func rewriteFiles(cfg *MainConfig, cc *cli.Context, f *format.Formatter, args []string) error {
	for _, path := range args {
		if path == "-" {
			return fmt.Errorf("%w: -w and -l require file arguments", cli.ErrUsage)
		}
		in, err := os.ReadFile(path)
		if err != nil {
			return fail(err)
		}
		out, err := f.Format(in)
		if err != nil {
			return fail(fmt.Errorf("%s: %w", path, err))
		}
		if string(in) == string(out) {
			continue
		}
		if cfg.List {
			fmt.Fprintln(cc.Out, path)
		}
		if cfg.Write {
			perm := os.FileMode(0644)
			if fi, err := os.Stat(path); err == nil {
				perm = fi.Mode().Perm()
			}
			if err := os.WriteFile(path, out, perm); err != nil {
				return fail(err)
			}
		}
	}
	return nil
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// formatConfig builds the formatting configuration: the config file (or
// defaults) with flag overrides applied on top.
func (cfg *MainConfig) formatConfig() (*format.Config, error) {
	fcfg := format.DefaultConfig()
	if cfg.ConfigPath != "" {
		loaded, err := format.Load(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		fcfg = loaded
	}
	if cfg.IndentStyle != "" {
		fcfg.Indent.Style = cfg.IndentStyle
	}
	if cfg.IndentWidth != nil {
		fcfg.Indent.Width = *cfg.IndentWidth
	}
	if cfg.Threshold != nil {
		fcfg.Formatting.SimpleArrayThreshold = *cfg.Threshold
	}
	if cfg.NoComments {
		fcfg.FileHandling.PreserveComments = false
	}
	if cfg.CRLF {
		fcfg.FileHandling.Newline = "CRLF"
	}
	return fcfg, nil
}

func (cfg *MainConfig) colorize() bool {
	if cfg.Color {
		return true
	}
	if cfg.Out != "" && cfg.Out != "-" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func fail(err error) error {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
	return cli.ExitCodeErr(1)
}
