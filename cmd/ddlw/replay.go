package main

import (
	"fmt"

	"github.com/signadot/ddl-format/go-ddl/replaydir"

	"github.com/scott-cotton/cli"
)

func replay(cfg *ReplayConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Replay.Parse(cc, args)
	if err != nil {
		cfg.Replay.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	root := "."
	switch len(args) {
	case 0:
	case 1:
		root = args[0]
	default:
		return fmt.Errorf("%w: replay takes at most 1 argument, a directory", cli.ErrUsage)
	}
	dir, err := replaydir.OpenDir(root)
	if err != nil {
		return err
	}
	results, err := dir.Run()
	if err != nil {
		return err
	}
	if cfg.DryRun {
		for i := range results {
			res := &results[i]
			if _, err := fmt.Fprintf(cc.Out, "-- %s\n%s\n", res.Name, res.Text); err != nil {
				return err
			}
		}
		return nil
	}
	return dir.Write(results)
}
