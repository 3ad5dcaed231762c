package encode

import (
	"strings"

	"github.com/signadot/qjson/ir"
)

// String returns the encoding of node, or the encoding error text.
func String(node *ir.Node, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Encode(node, buf, opts...); err != nil {
		return err.Error()
	}
	return buf.String()
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
