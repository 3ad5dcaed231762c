package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type typedText struct {
	Type TokenType
	Text string
}

func texts(toks []Token) []typedText {
	res := make([]typedText, len(toks))
	for i := range toks {
		res[i] = typedText{toks[i].Type, string(toks[i].Bytes)}
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []typedText
	}{
		{"", []typedText{}},
		{" \t\r\n", []typedText{}},
		{"{}[]:,", []typedText{
			{TLCurl, "{"}, {TRCurl, "}"}, {TLSquare, "["}, {TRSquare, "]"}, {TColon, ":"}, {TComma, ","},
		}},
		{`{"foo": 42, "bar": "hello world"}`, []typedText{
			{TLCurl, "{"}, {TString, `"foo"`}, {TColon, ":"}, {TInteger, "42"}, {TComma, ","},
			{TString, `"bar"`}, {TColon, ":"}, {TString, `"hello world"`}, {TRCurl, "}"},
		}},
		{"-0 0 12 -32.12313 1e5 1E-2 0.5e+3", []typedText{
			{TInteger, "-0"}, {TInteger, "0"}, {TInteger, "12"}, {TFloat, "-32.12313"},
			{TFloat, "1e5"}, {TFloat, "1E-2"}, {TFloat, "0.5e+3"},
		}},
		{"[43,42]", []typedText{
			{TLSquare, "["}, {TInteger, "43"}, {TComma, ","}, {TInteger, "42"}, {TRSquare, "]"},
		}},
		{"true false nul", []typedText{
			{TKeyword, "true"}, {TKeyword, "false"}, {TKeyword, "nul"},
		}},
		{`'it\'s' "\"\\\/\b\f\n\r\t¢"`, []typedText{
			{TString, `'it\'s'`}, {TString, `"\"\\\/\b\f\n\r\t¢"`},
		}},
		{`"a'b" 'a"b'`, []typedText{{TString, `"a'b"`}, {TString, `'a"b'`}}},
		{"[%d, 2, %p]", []typedText{
			{TLSquare, "["}, {TEscape, "%d"}, {TComma, ","}, {TInteger, "2"}, {TComma, ","},
			{TEscape, "%p"}, {TRSquare, "]"},
		}},
		{"%i%ld%lld%I64d%s%f", []typedText{
			{TEscape, "%i"}, {TEscape, "%ld"}, {TEscape, "%lld"}, {TEscape, "%I64d"},
			{TEscape, "%s"}, {TEscape, "%f"},
		}},
		{"1,true]", []typedText{
			{TInteger, "1"}, {TComma, ","}, {TKeyword, "true"}, {TRSquare, "]"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			toks, err := Tokenize([]Token{}, []byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, texts(toks)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
		pos Pos
	}{
		{`"abc`, ErrUnterminated, Pos{0, 0, 0}},
		{"[1,\n 'x", ErrUnterminated, Pos{5, 1, 1}},
		{`"\q"`, ErrBadEscape, Pos{2, 0, 2}},
		{`"\u12g4"`, ErrBadUnicode, Pos{5, 0, 5}},
		{`"\u12`, ErrUnterminated, Pos{0, 0, 0}},
		{"01", ErrLeadingZero, Pos{0, 0, 0}},
		{"[-01]", ErrLeadingZero, Pos{1, 0, 1}},
		{"1.", ErrUnterminated, Pos{0, 0, 0}},
		{"1.]", ErrUnexpected, Pos{2, 0, 2}},
		{"-x", ErrUnexpected, Pos{1, 0, 1}},
		{"1e+", ErrUnterminated, Pos{0, 0, 0}},
		{"%x", ErrBadPlaceholder, Pos{0, 0, 0}},
		{"%l", ErrUnterminated, Pos{0, 0, 0}},
		{"%lx", ErrBadPlaceholder, Pos{0, 0, 0}},
		{"{\n  @}", ErrUnexpected, Pos{4, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Tokenize(nil, []byte(tt.in))
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v, want %v", err, tt.err)
			}
			var lexErr *Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("%T is not *Error", err)
			}
			if lexErr.Pos != tt.pos {
				t.Errorf("pos %s, want %s", lexErr.Pos, tt.pos)
			}
		})
	}
}

func TestLexerChunks(t *testing.T) {
	src := `{"key": [1, -2.5e3, 'a\'b', true, "¢"], "x": %lld}` + "\n12 34"
	want, err := Tokenize(nil, []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i <= len(src); i++ {
		var got []Token
		l := NewLexer(func(tok Token) { got = append(got, tok) })
		if err := l.Feed([]byte(src[:i])); err != nil {
			t.Fatalf("split %d: %v", i, err)
		}
		if err := l.Feed([]byte(src[i:])); err != nil {
			t.Fatalf("split %d: %v", i, err)
		}
		if err := l.Flush(); err != nil {
			t.Fatalf("split %d: %v", i, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("split %d (-want +got):\n%s", i, diff)
		}
	}
}

func TestLexerByteAtATime(t *testing.T) {
	src := "[1,\n  \"two\"]"
	var got []Token
	l := NewLexer(func(tok Token) { got = append(got, tok) })
	for i := range len(src) {
		if err := l.Feed([]byte{src[i]}); err != nil {
			t.Fatal(err)
		}
	}
	if err := l.Flush(); err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Type: TLSquare, Pos: Pos{0, 0, 0}, Bytes: []byte("[")},
		{Type: TInteger, Pos: Pos{1, 0, 1}, Bytes: []byte("1")},
		{Type: TComma, Pos: Pos{2, 0, 2}, Bytes: []byte(",")},
		{Type: TString, Pos: Pos{6, 1, 2}, Bytes: []byte(`"two"`)},
		{Type: TRSquare, Pos: Pos{11, 1, 7}, Bytes: []byte("]")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if p := l.Pos(); p.Offset != len(src) {
		t.Errorf("pos %s", p)
	}
}

func TestLexerSticky(t *testing.T) {
	n := 0
	l := NewLexer(func(Token) { n++ })
	err := l.Feed([]byte("1 @ 2"))
	if !errors.Is(err, ErrUnexpected) {
		t.Fatalf("got %v", err)
	}
	if n != 1 {
		t.Errorf("%d tokens before error", n)
	}
	if err2 := l.Feed([]byte("3")); err2 != err {
		t.Errorf("Feed after error returned %v", err2)
	}
	if err2 := l.Flush(); err2 != err {
		t.Errorf("Flush after error returned %v", err2)
	}
	if n != 1 {
		t.Errorf("tokens emitted after error")
	}
	l.Reset()
	if err := l.Feed([]byte("3 ")); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("no token after Reset")
	}
}

func TestTokenTypeString(t *testing.T) {
	if TEscape.String() != "TEscape" {
		t.Error(TEscape.String())
	}
	if !TComma.IsOperator() || TInteger.IsOperator() {
		t.Error("IsOperator")
	}
}
