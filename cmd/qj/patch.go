package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/qjson"
	"github.com/signadot/qjson/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch and at most one file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	defer p.Release()
	path := "-"
	if len(args) == 2 {
		path = args[1]
	}
	target, err := getObjFile(cc, path)
	if err != nil {
		return err
	}
	defer target.Release()
	res, err := qjson.Patch(target, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", path, err)
	}
	defer res.Release()
	return writeValue(cc.Out, res, cfg.encOpts(cc.Out))
}

// getPatch reads the patch from arg itself, or from the file arg names
// with -f.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	if cfg.String && cfg.File {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var r io.Reader = strings.NewReader(arg)
	if cfg.File {
		if arg == "-" {
			r = cc.In
		} else {
			f, err := os.Open(arg)
			if err != nil {
				return nil, fmt.Errorf("error opening %s: %w", arg, err)
			}
			defer f.Close()
			r = f
		}
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading patch: %w", err)
	}
	res, err := qjson.Decode(string(d))
	if err != nil {
		return nil, fmt.Errorf("%w: error decoding patch: %w", cli.ErrUsage, err)
	}
	if res == nil {
		return nil, fmt.Errorf("%w: empty patch", cli.ErrUsage)
	}
	return res, nil
}
