package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/qjson/token"
)

// ErrParse is matched by every *Error.
var ErrParse = errors.New("parse error")

type Kind int

const (
	KindLexical Kind = iota
	KindSyntax
	KindKey
	KindKeyword
	KindPlaceholder
	KindNumber
	KindEscape
	KindEmpty
	KindTrailing
)

var kindNames = [...]string{
	KindLexical:     "lexical",
	KindSyntax:      "syntax",
	KindKey:         "key",
	KindKeyword:     "keyword",
	KindPlaceholder: "placeholder",
	KindNumber:      "number",
	KindEscape:      "escape",
	KindEmpty:       "empty",
	KindTrailing:    "trailing",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error describes why a message could not be parsed. Token holds the text
// of the offending token, empty when input ended early.
type Error struct {
	Kind  Kind
	Pos   token.Pos
	Token string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil && msg == "" {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s: %s: %s at %s", ErrParse, e.Kind, msg, e.Pos)
}

func (e *Error) Is(target error) bool {
	return target == ErrParse
}

func (e *Error) Unwrap() error {
	return e.Err
}

// LexicalError converts a lexer error into a KindLexical *Error. Other
// errors are returned unchanged.
func LexicalError(err error) error {
	var lexErr *token.Error
	if !errors.As(err, &lexErr) {
		return err
	}
	return &Error{Kind: KindLexical, Pos: lexErr.Pos, Err: lexErr.Err}
}

func tokErr(kind Kind, tok *token.Token, format string, args ...any) *Error {
	return &Error{
		Kind:  kind,
		Pos:   tok.Pos,
		Token: string(tok.Bytes),
		Msg:   fmt.Sprintf(format, args...),
	}
}

// endErr reports input ending where a token was expected.
func endErr(toks []token.Token, what string) *Error {
	var pos token.Pos
	if n := len(toks); n > 0 {
		last := &toks[n-1]
		pos = last.Pos
		pos.Offset = last.End()
		pos.Col += len(last.Bytes)
	}
	return &Error{Kind: KindSyntax, Pos: pos, Msg: "unexpected end of input, expected " + what}
}
