package qjson

import (
	"errors"
	"fmt"

	"github.com/signadot/qjson/encode"
	"github.com/signadot/qjson/ir"
	"github.com/signadot/qjson/parse"
	"github.com/signadot/qjson/token"
)

var ErrUnusedArgs = errors.New("unused args")

// Decode parses s, which must hold at most one value. Empty input gives a
// nil node and no error.
func Decode(s string) (*ir.Node, error) {
	return decode(s, nil)
}

// Decodef parses format with its placeholders replaced by args in order.
// Decodef takes over the references of Value args, including those left
// unused; leaving any arg unused is an error.
func Decodef(format string, args ...parse.Arg) (*ir.Node, error) {
	a := parse.NewArgs(args...)
	defer a.Release()
	n, err := decode(format, a)
	if err != nil {
		return nil, err
	}
	if left := a.Remaining(); left > 0 {
		if n != nil {
			n.Release()
		}
		return nil, fmt.Errorf("%w: %d of %d", ErrUnusedArgs, left, len(args))
	}
	return n, nil
}

func decode(s string, args *parse.Args) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, []byte(s))
	if err != nil {
		return nil, parse.LexicalError(err)
	}
	if len(toks) == 0 {
		return nil, nil
	}
	var opts []parse.ParseOption
	if args != nil {
		opts = append(opts, parse.WithArgs(args))
	}
	return parse.Parse(toks, opts...)
}

// Encode returns the compact encoding of n.
func Encode(n *ir.Node) string {
	return encode.String(n)
}

// EncodePretty returns n with one element per line.
func EncodePretty(n *ir.Node) string {
	return encode.String(n, encode.EncodePretty(true))
}
