package main

import (
	"bytes"
	"fmt"

	ddl "github.com/signadot/ddl-format/go-ddl"
	"github.com/signadot/ddl-format/go-ddl/encode"
	"github.com/signadot/ddl-format/go-ddl/ir"
	"github.com/signadot/ddl-format/go-ddl/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a blob to which to apply it", cli.ErrUsage)
	}
	pd, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	target, err := getBlobFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	blob, err := wireBlob(target)
	if err != nil {
		return err
	}
	res, err := ddl.Patch(blob, pd)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	node, err := parse.Parse(res)
	if err != nil {
		return fmt.Errorf("error decoding patched blob: %w", err)
	}
	mCfg := cfg.MainConfig
	if err := encode.Encode(node, cc.Out, mCfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func wireBlob(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
