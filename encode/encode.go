package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/qjson/ir"
)

type EncState struct {
	depth, indent int
	pretty        bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. Dict pairs are written in the node's key order.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 4,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: %w", ErrEncoding, ir.ErrNilNode)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Released() {
		return fmt.Errorf("%w: released node", ErrEncoding)
	}
	switch node.Type {
	case ir.IntType:
		return writeValue(w, es, node.Type, strconv.FormatInt(node.Int64, 10))
	case ir.FloatType:
		return writeValue(w, es, node.Type, FormatFloat(node.Float64))
	case ir.BoolType:
		return writeValue(w, es, node.Type, strconv.FormatBool(node.Bool))
	case ir.StringType:
		return writeValue(w, es, node.Type, Quote(node.String))
	case ir.ListType:
		return encodeList(node, w, es)
	case ir.DictType:
		return encodeDict(node, w, es)
	}
	return fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
}

func encodeList(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ListType, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeElementSep(w, es, ir.ListType, i); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ListType, "]")
}

func encodeDict(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.DictType, "{"); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeElementSep(w, es, ir.DictType, i); err != nil {
			return err
		}
		key := Quote(node.Fields[i])
		if es.Color != nil {
			key = es.Color(ir.DictType, FieldColor, key)
		}
		if err := writeString(w, key); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.DictType, ": "); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.DictType, "}")
}

// writeElementSep writes what precedes the i'th element of a container.
func writeElementSep(w io.Writer, es *EncState, t ir.Type, i int) error {
	if i > 0 {
		if err := writeSep(w, es, t, ", "); err != nil {
			return err
		}
	}
	return writeNL(w, es)
}

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeSep(w io.Writer, es *EncState, t ir.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(t, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeValue(w io.Writer, es *EncState, t ir.Type, v string) error {
	if es.Color != nil {
		v = es.Color(t, ValueColor, v)
	}
	return writeString(w, v)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// FormatFloat formats f in fixed point with 6 fractional digits, then
// drops trailing zeros and a trailing '.'.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

const hexDigits = "0123456789ABCDEF"

// Quote returns s as a double quoted string. Two and three byte UTF-8
// sequences become \u escapes; four byte sequences and stray bytes are
// copied as they are.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c&0xF0 == 0xE0 && i+2 < len(s) && isCont(s[i+1]) && isCont(s[i+2]):
			writeU(&sb, uint16(c&0x0F)<<12|uint16(s[i+1]&0x3F)<<6|uint16(s[i+2]&0x3F))
			i += 2
			continue
		case c&0xE0 == 0xC0 && i+1 < len(s) && isCont(s[i+1]):
			writeU(&sb, uint16(c&0x1F)<<6|uint16(s[i+1]&0x3F))
			i++
			continue
		}
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 {
				writeU(&sb, uint16(c))
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func isCont(c byte) bool {
	return c&0xC0 == 0x80
}

func writeU(sb *strings.Builder, v uint16) {
	sb.WriteString(`\u`)
	sb.WriteByte(hexDigits[v>>12])
	sb.WriteByte(hexDigits[v>>8&0xF])
	sb.WriteByte(hexDigits[v>>4&0xF])
	sb.WriteByte(hexDigits[v&0xF])
}
