package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/kode4food/pluck"
	"github.com/kode4food/pluck/codec"
	"github.com/kode4food/pluck/column"
)

// Config holds the command line options of pluck
type Config struct {
	Index  string `cli:"name=index aliases=i desc='key the result by the values of this column'"`
	Where  string `cli:"name=where aliases=w desc='only use records for which this expression is true'"`
	Format string `cli:"name=format aliases=f desc='output format: yaml or json'"`
	Color  bool   `cli:"name=color desc='color diagnostics even when stderr is not a terminal'"`

	Main *cli.Command
}

// MainCommand returns the pluck command
func MainCommand() *cli.Command {
	cfg := &Config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "pluck").
		WithSynopsis("pluck [opts] column [file]").
		WithDescription(
			"pluck extracts a column of values from a YAML or JSON sequence " +
				"of records, read from file or standard input.",
		).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pluckMain(cfg, cc, args)
		})
}

func pluckMain(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	switch len(args) {
	case 1:
		return run(cfg, cc.In, cc.Out, os.Stderr, args[0])
	case 2:
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		return run(cfg, f, cc.Out, os.Stderr, args[0])
	default:
		return fmt.Errorf(
			"%w: pluck requires a column and at most one file, got %v",
			cli.ErrUsage, args,
		)
	}
}

func run(cfg *Config, in io.Reader, out, diag io.Writer, col string) error {
	f, err := codec.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	opts := []column.Option{
		column.Logger(slog.New(newDiagHandler(diag, useColor(cfg, diag)))),
	}
	if cfg.Index != "" {
		opts = append(opts, column.Index(cfg.Index))
	}
	if cfg.Where != "" {
		opts = append(opts, column.Where(cfg.Where))
	}
	e, err := pluck.NewExtractor(col, opts...)
	if err != nil {
		return err
	}

	recs, err := codec.Decode(in)
	if err != nil {
		return fmt.Errorf("error reading records: %w", err)
	}
	res, err := e.Extract(recs)
	if err != nil {
		return err
	}
	return codec.Encode(out, res, f)
}
