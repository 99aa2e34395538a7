package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Diff       bool `cli:"name=d aliases=diff desc='print a line diff between input and output instead of the output; exit 1 when they differ'"`
	List       bool `cli:"name=l aliases=list desc='list files whose formatting would change'"`
	Write      bool `cli:"name=w aliases=write desc='rewrite files in place'"`
	NoComments bool `cli:"name=no-comments desc='drop comments instead of reattaching them'"`
	CRLF       bool `cli:"name=crlf desc='emit CRLF line endings'"`
	Color      bool `cli:"name=color desc='force color in diff output'"`

	ConfigPath  string
	IndentStyle string
	IndentWidth *int
	Threshold   *int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "config",
			Description: "formatting config file (YAML or JSON), merged over the defaults",
			Type:        cli.NamedFuncOpt(cfg.stringOpt(&cfg.ConfigPath), "(filepath)"),
		},
		{
			Name:        "indent",
			Description: "indent style: tab or space",
			Type:        cli.NamedFuncOpt(cfg.stringOpt(&cfg.IndentStyle), "(style)"),
		},
		{
			Name:        "width",
			Description: "indent width (repetitions of the indent character)",
			Type:        cli.NamedFuncOpt(cfg.intOpt(&cfg.IndentWidth), "(n)"),
		},
		{
			Name:        "threshold",
			Description: "inline threshold in characters of the compact rendering",
			Type:        cli.NamedFuncOpt(cfg.intOpt(&cfg.Threshold), "(n)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "pipefmt").
		WithSynopsis("pipefmt [opts] [files]").
		WithDescription("pipefmt formats pipeline JSON documents; without files it filters stdin to stdout.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pipefmtMain(cfg, cc, args)
		})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) stringOpt(p *string) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		*p = a
		return a, nil
	}
}

func (cfg *MainConfig) intOpt(p **int) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		*p = &n
		return n, nil
	}
}
