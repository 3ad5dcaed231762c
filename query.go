package qjson

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/qjson/debug"
	"github.com/signadot/qjson/ir"
)

// Query evaluates the expr-lang expression src against doc and returns
// the result as a node. doc is bound to the variable "doc"; when doc is a
// dict its fields are also bound by name.
func Query(doc *ir.Node, src string) (*ir.Node, error) {
	native := ir.ToNative(doc)
	env := map[string]any{}
	if m, ok := native.(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env["doc"] = native
	prg, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("compiling query: %w", err)
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	if debug.Query() {
		debug.Logf("query %q -> %v\n", src, out)
	}
	res, err := ir.FromNative(out)
	if err != nil {
		return nil, fmt.Errorf("query result: %w", err)
	}
	return res, nil
}
