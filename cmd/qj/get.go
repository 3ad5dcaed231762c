package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/qjson/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	return eachValue(cc, args[1:], func(file string, n *ir.Node) error {
		var matches []*ir.Node
		if cfg.All {
			matches, err = n.ListPath(nil, path)
		} else {
			var m *ir.Node
			m, err = n.GetPath(path)
			if m != nil {
				matches = append(matches, m)
			}
		}
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
		for _, m := range matches {
			if err := writeValue(cc.Out, m, opts); err != nil {
				return err
			}
		}
		return nil
	})
}
