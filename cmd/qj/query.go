package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/qjson"
	"github.com/signadot/qjson/ir"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src := args[0]
	opts := cfg.encOpts(cc.Out)
	last := false
	err = eachValue(cc, args[1:], func(path string, n *ir.Node) error {
		res, err := qjson.Query(n, src)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", path, src, err)
		}
		defer res.Release()
		last = ir.Truth(res)
		return writeValue(cc.Out, res, opts)
	})
	if err != nil {
		return err
	}
	if cfg.Exit && !last {
		return cli.ExitCodeErr(1)
	}
	return nil
}
