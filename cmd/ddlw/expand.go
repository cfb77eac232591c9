package main

import (
	"fmt"

	xp "github.com/signadot/ddl-format/go-ddl/expand"

	"github.com/scott-cotton/cli"
)

func expand(cfg *ExpandConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expand.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := getBlobFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		text, err := xp.Expand(node)
		if err != nil {
			return fmt.Errorf("error expanding %s: %w", arg, err)
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", text); err != nil {
			return err
		}
	}
	return nil
}
