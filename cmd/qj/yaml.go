package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/qjson/encode"
	"github.com/signadot/qjson/ir"
)

func yamlCmd(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		return err
	}
	i := 0
	return eachValue(cc, args, func(path string, n *ir.Node) error {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		i++
		if err := encode.EncodeYAML(n, cc.Out); err != nil {
			return fmt.Errorf("error encoding %s as yaml: %w", path, err)
		}
		return nil
	})
}
