package parse

import (
	"bytes"
	"strings"

	"github.com/signadot/qjson/token"
)

// unquote returns the text of a '"' or '\'' delimited string token with
// escapes interpreted. \u escapes produce 1 to 3 bytes of UTF-8; surrogate
// halves are encoded as they are.
func unquote(t *token.Token) (string, error) {
	b := t.Bytes
	if len(b) < 2 || (b[0] != '"' && b[0] != '\'') || b[len(b)-1] != b[0] {
		return "", tokErr(KindSyntax, t, "malformed string")
	}
	body := b[1 : len(b)-1]
	if bytes.IndexByte(body, '\\') < 0 {
		return string(body), nil
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i == len(body) {
			return "", escErr(t, i, "trailing \\")
		}
		switch body[i] {
		case '"', '\'', '\\', '/':
			sb.WriteByte(body[i])
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			if i+4 >= len(body) {
				return "", escErr(t, i-1, "short \\u escape")
			}
			var v uint16
			for _, h := range body[i+1 : i+5] {
				d, ok := hexVal(h)
				if !ok {
					return "", escErr(t, i-1, "bad hex digit in \\u escape")
				}
				v = v<<4 | uint16(d)
			}
			i += 4
			writeUTF16(&sb, v)
		default:
			return "", escErr(t, i-1, "unknown escape \\"+string(body[i]))
		}
	}
	return sb.String(), nil
}

func writeUTF16(sb *strings.Builder, v uint16) {
	switch {
	case v < 0x80:
		sb.WriteByte(byte(v))
	case v < 0x800:
		sb.WriteByte(0xC0 | byte(v>>6))
		sb.WriteByte(0x80 | byte(v&0x3F))
	default:
		sb.WriteByte(0xE0 | byte(v>>12))
		sb.WriteByte(0x80 | byte(v>>6&0x3F))
		sb.WriteByte(0x80 | byte(v&0x3F))
	}
}

func hexVal(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// escErr reports a bad escape at offset i of the string body.
func escErr(t *token.Token, i int, msg string) *Error {
	pos := t.Pos
	for _, c := range t.Bytes[:i+1] {
		pos.Offset++
		if c == '\n' {
			pos.Line++
			pos.Col = 0
		} else {
			pos.Col++
		}
	}
	return &Error{Kind: KindEscape, Pos: pos, Token: string(t.Bytes), Msg: msg}
}
