package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/qjson/encode"
	"github.com/signadot/qjson/ir"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Check {
		return fmtCheck(cfg, cc, args)
	}
	opts := cfg.encOpts(cc.Out)
	return eachValue(cc, args, func(_ string, n *ir.Node) error {
		return writeValue(cc.Out, n, opts)
	})
}

// fmtCheck lists the inputs whose text differs from their formatting.
func fmtCheck(cfg *FmtConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := []encode.EncodeOption{encode.EncodePretty(cfg.Pretty)}
	if cfg.Indent > 0 {
		opts = append(opts, encode.EncodeIndent(cfg.Indent))
	}
	unformatted := 0
	for _, path := range args {
		ok, err := isFormatted(cc, path, opts)
		if err != nil {
			return err
		}
		if !ok {
			unformatted++
			fmt.Fprintln(cc.Out, path)
		}
	}
	if unformatted > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func isFormatted(cc *cli.Context, path string, opts []encode.EncodeOption) (bool, error) {
	rc, err := openInput(cc, path)
	if err != nil {
		return false, err
	}
	orig, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return false, fmt.Errorf("error reading %q: %w", path, err)
	}
	want := &bytes.Buffer{}
	err = eachReaderValue(bytes.NewReader(orig), path, func(_ string, n *ir.Node) error {
		return writeValue(want, n, opts)
	})
	if err != nil {
		return false, err
	}
	return bytes.Equal(orig, want.Bytes()), nil
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodePretty(true))
	return eachValue(cc, args, func(_ string, n *ir.Node) error {
		return writeValue(cc.Out, n, opts)
	})
}
