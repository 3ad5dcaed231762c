package qjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/qjson/ir"
)

// MarshalJSON returns n as standard JSON. Dict keys come out sorted.
func MarshalJSON(n *ir.Node) ([]byte, error) {
	return json.Marshal(ir.ToNative(n))
}

// UnmarshalJSON decodes one standard JSON value. JSON null has no node and
// is an error.
func UnmarshalJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return ir.FromNative(v)
}
