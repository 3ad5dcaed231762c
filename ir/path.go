package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrPath = errors.New("path error")

// PathStep is one step of a Path: a dict key, a list index, or every list
// element.
type PathStep struct {
	Field    *string
	Index    *int
	IndexAll bool
}

// Path addresses values inside a node, written as in $.a[0].'b.c'[*].
type Path []PathStep

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	for _, s := range p {
		switch {
		case s.IndexAll:
			sb.WriteString("[*]")
		case s.Index != nil:
			fmt.Fprintf(&sb, "[%d]", *s.Index)
		case s.Field != nil:
			sb.WriteString("." + pathField(*s.Field))
		}
	}
	return sb.String()
}

func pathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

func ParsePath(p string) (Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	var res Path
	rest := p[1:]
	for len(rest) > 0 {
		var (
			step PathStep
			err  error
		)
		switch rest[0] {
		case '.':
			var field string
			field, rest, err = parseField(rest[1:])
			step.Field = &field
		case '[':
			i := strings.IndexByte(rest, ']')
			if i == -1 {
				return nil, fmt.Errorf("%w: %q: expected '[' <index> ']'", ErrPath, p)
			}
			step, err = parseIndex(rest[1:i])
			rest = rest[i+1:]
		default:
			return nil, fmt.Errorf("%w: %q: expected '.' or '[' at %q", ErrPath, p, rest)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
		}
		res = append(res, step)
	}
	return res, nil
}

func parseIndex(is string) (PathStep, error) {
	if is == "*" {
		return PathStep{IndexAll: true}, nil
	}
	u, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return PathStep{}, fmt.Errorf("bad index %q", is)
	}
	i := int(u)
	return PathStep{Index: &i}, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	var sb strings.Builder
	for i := 1; i < len(frag); i++ {
		switch c := frag[i]; c {
		case '\\':
			if i+1 < len(frag) {
				i++
				sb.WriteByte(frag[i])
			}
		case '\'':
			return sb.String(), frag[i+1:], nil
		default:
			sb.WriteByte(c)
		}
	}
	return "", "", fmt.Errorf("unterminated quoted field")
}

// GetPath returns the one value at path, or nil when a field is missing.
// The result is borrowed from y.
func (y *Node) GetPath(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := y
	for _, s := range p {
		switch {
		case s.IndexAll:
			return nil, fmt.Errorf("%w: [*] in get %s", ErrPath, path)
		case s.Index != nil:
			if res.Type != ListType {
				return nil, fmt.Errorf("%w: expected list at %s, got %s", ErrPath, path, res.Type)
			}
			if *s.Index >= len(res.Values) {
				return nil, fmt.Errorf("%w: index %d out of bounds (len %d)", ErrPath, *s.Index, len(res.Values))
			}
			res = res.Values[*s.Index]
		case s.Field != nil:
			if res.Type != DictType {
				return nil, fmt.Errorf("%w: expected dict at %s, got %s", ErrPath, path, res.Type)
			}
			res = res.Get(*s.Field)
			if res == nil {
				return nil, nil
			}
		}
	}
	return res, nil
}

// ListPath appends every value matching path to dst. Steps that do not
// apply to a value match nothing. The results are borrowed from y.
func (y *Node) ListPath(dst []*Node, path string) ([]*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, p), nil
}

func (y *Node) listPath(dst []*Node, p Path) []*Node {
	if len(p) == 0 {
		return append(dst, y)
	}
	if y.Type.IsLeaf() {
		return dst
	}
	s, rest := p[0], p[1:]
	switch {
	case s.Field != nil:
		if v := y.Get(*s.Field); v != nil {
			dst = v.listPath(dst, rest)
		}
	case y.Type != ListType:
	case s.IndexAll:
		for _, v := range y.Values {
			dst = v.listPath(dst, rest)
		}
	case *s.Index < len(y.Values):
		dst = y.Values[*s.Index].listPath(dst, rest)
	}
	return dst
}
