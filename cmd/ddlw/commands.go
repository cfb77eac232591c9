package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ddlw").
		WithSynopsis("ddlw [opts] command [opts]").
		WithDescription("ddlw is a tool for working with deparsed command blobs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ddlwMain(cfg, cc, args)
		}).
		WithSubs(
			ExpandCommand(cfg),
			ViewCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg),
			MatchCommand(cfg),
			ReplayCommand(cfg),
			DemoCommand(cfg))
}

func ddlwMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Main.Parse(cc, args); err != nil {
		return err
	}
	return fmt.Errorf("%w: ddlw requires a subcommand", cli.ErrUsage)
}

func ExpandCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExpandConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("expand").
		WithAliases("x", "ex").
		WithSynopsis("expand [blobfiles]").
		WithDescription("expand blobs into command text").
		WithRun(func(cc *cli.Context, args []string) error {
			return expand(cfg, cc, args)
		})
	cfg.Expand = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [blobfiles]").
		WithDescription("view blobs, prettified, in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <patch> <blobfile>").
		WithDescription("apply an RFC 6902 patch to a blob").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff the expansions of two blobs").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <predicate> [blobfiles]").
		WithDescription("select blobs whose trees satisfy a predicate").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func DemoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DemoConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("demo").
		WithSynopsis("demo").
		WithDescription("show example blobs and their expansions").
		WithRun(func(cc *cli.Context, args []string) error {
			return demo(cfg, cc, args)
		})
	cfg.Demo = cmd
	return cmd
}

func ReplayCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplayConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("replay").
		WithAliases("r", "re").
		WithOpts(opts...).
		WithSynopsis("replay [dir]").
		WithDescription("replay a directory of captured blobs through its manifest").
		WithRun(func(cc *cli.Context, args []string) error {
			return replay(cfg, cc, args)
		})
	cfg.Replay = cmd
	return cmd
}
