package main

import (
	"fmt"

	ddl "github.com/signadot/ddl-format/go-ddl"
	"github.com/signadot/ddl-format/go-ddl/encode"
	"github.com/signadot/ddl-format/go-ddl/parse"

	"github.com/scott-cotton/cli"
)

// demo runs the built-in example producers and shows their blobs next to
// the command text they expand back into.
func demo(cfg *DemoConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Demo.Parse(cc, args); err != nil {
		return err
	}
	cmds := []struct {
		producer ddl.Producer
		cmd      any
	}{
		{
			producer: ddl.NewDropProducer(),
			cmd: &ddl.DropCommand{
				Kind:     ddl.TableObject,
				Schema:   "public",
				Name:     "orders",
				IfExists: true,
			},
		},
		{
			producer: ddl.NewCreateTableProducer(),
			cmd: &ddl.CreateTableCommand{
				Schema:      "public",
				Name:        "orders",
				IfNotExists: true,
				Columns: []ddl.ColumnDef{
					{
						Name:    "id",
						Type:    ddl.TypeRef{Name: "integer"},
						NotNull: true,
					},
					{
						Name: "total",
						Type: ddl.TypeRef{Name: "numeric", Typmod: "(10,2)"},
					},
					{
						Name: "tags",
						Type: ddl.TypeRef{Name: "text", IsArray: true},
					},
				},
			},
		},
	}
	for i, c := range cmds {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		blob, err := ddl.EncodeToJSON(c.producer, c.cmd)
		if err != nil {
			return err
		}
		node, err := parse.Parse(blob)
		if err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, cfg.MainConfig.encOpts(cc.Out)...); err != nil {
			return err
		}
		text, err := ddl.ExpandJSONToText(blob)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cc.Out, "-- %s\n", text); err != nil {
			return err
		}
	}
	return nil
}
