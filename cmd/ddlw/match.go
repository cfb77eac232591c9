package main

import (
	"fmt"

	"github.com/signadot/ddl-format/go-ddl/encode"
	mt "github.com/signadot/ddl-format/go-ddl/match"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a predicate", cli.ErrUsage)
	}
	src, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	m, err := mt.Compile(string(src))
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	matched := 0
	for _, file := range files {
		node, err := getBlobFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		ok, err := m.Match(node)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", file, err)
		}
		if !ok {
			continue
		}
		if matched > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(node, cc.Out, cfg.MainConfig.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
		matched++
	}
	return nil
}
