package main

import (
	"fmt"

	"github.com/signadot/ddl-format/go-ddl/sqldiff"

	"github.com/scott-cotton/cli"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getBlobFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getBlobFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	diffs, err := sqldiff.Diffs(a, b)
	if err != nil {
		return err
	}
	differs := false
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			differs = true
			break
		}
	}
	if !differs {
		return nil
	}
	if !cfg.Quiet {
		out := sqldiff.Unified(diffs)
		if cfg.Color {
			out = sqldiff.Pretty(diffs)
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", out); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}
