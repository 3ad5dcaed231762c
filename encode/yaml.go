package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/qjson/ir"
)

// EncodeYAML writes node to w as a YAML document, keeping dict key order.
func EncodeYAML(node *ir.Node, w io.Writer) error {
	if node == nil {
		return fmt.Errorf("%w: %w", ErrEncoding, ir.ErrNilNode)
	}
	d, err := yaml.Marshal(toYAML(node))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func toYAML(node *ir.Node) any {
	switch node.Type {
	case ir.ListType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toYAML(v)
		}
		return res
	case ir.DictType:
		res := make(yaml.MapSlice, len(node.Values))
		for i, v := range node.Values {
			res[i] = yaml.MapItem{Key: node.Fields[i], Value: toYAML(v)}
		}
		return res
	}
	return ir.ToNative(node)
}
