package transport

import (
	"context"
	"errors"

	"go.lsp.dev/jsonrpc2"

	"github.com/signadot/qjson"
	"github.com/signadot/qjson/ir"
	"github.com/signadot/qjson/parse"
)

const (
	MethodFormat   = "qjson.format"
	MethodEcho     = "qjson.echo"
	MethodValidate = "qjson.validate"
)

// NewControlMux returns a mux serving the format, echo and validate
// methods.
func NewControlMux() *Mux {
	m := NewMux()
	m.HandleFunc(MethodFormat, format)
	m.HandleFunc(MethodEcho, echo)
	m.HandleFunc(MethodValidate, validate)
	return m
}

// format takes {"text": s, "pretty": b} and returns s reencoded.
func format(_ context.Context, params *ir.Node) (*ir.Node, error) {
	text, err := textParam(params)
	if err != nil {
		return nil, err
	}
	n, err := qjson.Decode(text)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return ir.FromString(""), nil
	}
	defer n.Release()
	if p := params.Get("pretty"); p != nil && p.Type == ir.BoolType && p.Bool {
		return ir.FromString(qjson.EncodePretty(n)), nil
	}
	return ir.FromString(qjson.Encode(n)), nil
}

func echo(_ context.Context, params *ir.Node) (*ir.Node, error) {
	if params == nil {
		return nil, nil
	}
	return params.Ref(), nil
}

// validate takes {"text": s} and reports whether s decodes, with the
// position of the first error when it does not.
func validate(_ context.Context, params *ir.Node) (*ir.Node, error) {
	text, err := textParam(params)
	if err != nil {
		return nil, err
	}
	res := ir.NewDict()
	n, err := qjson.Decode(text)
	if err == nil {
		if n != nil {
			n.Release()
		}
		return res.Set("ok", ir.FromBool(true)), nil
	}
	res.Set("ok", ir.FromBool(false))
	res.Set("error", ir.FromString(err.Error()))
	var pErr *parse.Error
	if errors.As(err, &pErr) {
		res.Set("kind", ir.FromString(pErr.Kind.String()))
		res.Set("offset", ir.FromInt(int64(pErr.Pos.Offset)))
		res.Set("line", ir.FromInt(int64(pErr.Pos.Line)))
		res.Set("col", ir.FromInt(int64(pErr.Pos.Col)))
	}
	return res, nil
}

func textParam(params *ir.Node) (string, error) {
	if params == nil || params.Type != ir.DictType {
		return "", jsonrpc2.Errorf(jsonrpc2.InvalidParams, "params must be a dict")
	}
	t := params.Get("text")
	if t == nil || t.Type != ir.StringType {
		return "", jsonrpc2.Errorf(jsonrpc2.InvalidParams, "missing string field text")
	}
	return t.String, nil
}
