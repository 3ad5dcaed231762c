package parse

import (
	"errors"
	"strconv"

	"github.com/signadot/qjson/ir"
	"github.com/signadot/qjson/token"
)

// Parse parses one message group into a node owned by the caller. All of
// toks must be consumed. On error every node built during the attempt,
// including spliced Value args, is released. toks is not modified.
func Parse(toks []token.Token, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if len(toks) == 0 {
		return nil, &Error{Kind: KindEmpty, Msg: "no tokens"}
	}
	i := 0
	res, err := parseValue(toks, &i, pOpts)
	if err != nil {
		return nil, err
	}
	if i < len(toks) {
		res.Release()
		return nil, tokErr(KindTrailing, &toks[i], "trailing %s after value", toks[i].Type)
	}
	return res, nil
}

func parseValue(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, endErr(toks, "value")
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		*pi++
		return parseDict(toks, pi, opts)
	case token.TLSquare:
		*pi++
		return parseList(toks, pi, opts)
	case token.TEscape:
		if opts.args == nil {
			return nil, tokErr(KindPlaceholder, t, "placeholder without args")
		}
		*pi++
		return parseEscape(t, opts.args)
	case token.TKeyword:
		*pi++
		switch string(t.Bytes) {
		case "true":
			return ir.FromBool(true), nil
		case "false":
			return ir.FromBool(false), nil
		}
		return nil, tokErr(KindKeyword, t, "unknown keyword %q", t.Bytes)
	case token.TString:
		*pi++
		s, err := unquote(t)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case token.TInteger:
		*pi++
		v, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			return nil, numErr(t, err)
		}
		return ir.FromInt(v), nil
	case token.TFloat:
		*pi++
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, numErr(t, err)
		}
		return ir.FromFloat(f), nil
	}
	return nil, tokErr(KindSyntax, t, "unexpected %q", t.Bytes)
}

func parseDict(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	d := ir.NewDict()
	if *pi < len(toks) && toks[*pi].Type == token.TRCurl {
		*pi++
		return d, nil
	}
	for {
		keyTok := *pi
		key, err := parseValue(toks, pi, opts)
		if err != nil {
			d.Release()
			return nil, err
		}
		if key.Type != ir.StringType {
			ir.ReleaseAll(key, d)
			return nil, tokErr(KindKey, &toks[keyTok], "%s key", key.Type)
		}
		k := key.String
		key.Release()
		if err := expect(toks, pi, token.TColon, "':'"); err != nil {
			d.Release()
			return nil, err
		}
		v, err := parseValue(toks, pi, opts)
		if err != nil {
			d.Release()
			return nil, err
		}
		d.Set(k, v)
		done, err := sepOrClose(toks, pi, token.TRCurl, "',' or '}'")
		if err != nil {
			d.Release()
			return nil, err
		}
		if done {
			return d, nil
		}
	}
}

func parseList(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	l := ir.NewList()
	if *pi < len(toks) && toks[*pi].Type == token.TRSquare {
		*pi++
		return l, nil
	}
	for {
		v, err := parseValue(toks, pi, opts)
		if err != nil {
			l.Release()
			return nil, err
		}
		l.Append(v)
		done, err := sepOrClose(toks, pi, token.TRSquare, "',' or ']'")
		if err != nil {
			l.Release()
			return nil, err
		}
		if done {
			return l, nil
		}
	}
}

func parseEscape(t *token.Token, args *Args) (*ir.Node, error) {
	want, ok := placeholderKinds[string(t.Bytes)]
	if !ok {
		return nil, tokErr(KindPlaceholder, t, "unknown placeholder %q", t.Bytes)
	}
	arg, ok := args.peek()
	if !ok {
		return nil, tokErr(KindPlaceholder, t, "no arg for %s", t.Bytes)
	}
	if arg.kind != want {
		return nil, tokErr(KindPlaceholder, t, "%s needs %s arg, got %s", t.Bytes, want, arg.kind)
	}
	args.next()
	return arg.node(), nil
}

func expect(toks []token.Token, pi *int, tt token.TokenType, what string) error {
	if *pi >= len(toks) {
		return endErr(toks, what)
	}
	t := &toks[*pi]
	if t.Type != tt {
		return tokErr(KindSyntax, t, "expected %s, got %q", what, t.Bytes)
	}
	*pi++
	return nil
}

// sepOrClose consumes a ',' or the closer, reporting whether it was the
// closer.
func sepOrClose(toks []token.Token, pi *int, closer token.TokenType, what string) (bool, error) {
	if *pi >= len(toks) {
		return false, endErr(toks, what)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TComma:
		*pi++
		return false, nil
	case closer:
		*pi++
		return true, nil
	}
	return false, tokErr(KindSyntax, t, "expected %s, got %q", what, t.Bytes)
}

func numErr(t *token.Token, err error) *Error {
	e := tokErr(KindNumber, t, "invalid %s %q", t.Type, t.Bytes)
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		e.Err = numErr.Err
	} else {
		e.Err = err
	}
	return e
}
