package token

import (
	"fmt"
)

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TInteger
	TFloat
	TKeyword
	TString
	TEscape
)

var tokenTypeNames = map[TokenType]string{
	TLCurl:   "TLCurl",
	TRCurl:   "TRCurl",
	TLSquare: "TLSquare",
	TRSquare: "TRSquare",
	TColon:   "TColon",
	TComma:   "TComma",
	TInteger: "TInteger",
	TFloat:   "TFloat",
	TKeyword: "TKeyword",
	TString:  "TString",
	TEscape:  "TEscape",
}

func (t TokenType) String() string {
	if s, ok := tokenTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsOperator reports whether t is one of the single byte tokens { } [ ] : ,
func (t TokenType) IsOperator() bool {
	return t <= TComma
}

type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte
}

// End returns the offset just past the last byte of t.
func (t *Token) End() int {
	return t.Pos.Offset + len(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q at %s", t.Type, t.Bytes, t.Pos)
}

func (t *Token) String() string {
	return string(t.Bytes)
}
