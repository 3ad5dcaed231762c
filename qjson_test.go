package qjson

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/qjson/ir"
	"github.com/signadot/qjson/parse"
	"github.com/signadot/qjson/token"
)

func TestDecodeNoValue(t *testing.T) {
	tests := []struct {
		in   string
		kind parse.Kind
	}{
		{`"abc`, parse.KindLexical},
		{`[32`, parse.KindSyntax},
		{`[32,}`, parse.KindSyntax},
		{`null`, parse.KindKeyword},
		{`1 2`, parse.KindTrailing},
		{`{"a": 1,}`, parse.KindSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := Decode(tt.in)
			if n != nil {
				t.Fatalf("got value %s", Encode(n))
			}
			var pErr *parse.Error
			if !errors.As(err, &pErr) {
				t.Fatalf("got %v", err)
			}
			if pErr.Kind != tt.kind {
				t.Errorf("kind %s, want %s", pErr.Kind, tt.kind)
			}
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, in := range []string{"", " \n "} {
		n, err := Decode(in)
		if n != nil || err != nil {
			t.Errorf("%q: got %v, %v", in, n, err)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{`{"foo": 42, "bar": "hello world"}`, map[string]any{"foo": int64(42), "bar": "hello world"}},
		{`"double byte utf-8 ¢"`, "double byte utf-8 ¢"},
		{`"€"`, "€"},
		{`'single \'quoted\''`, "single 'quoted'"},
		{`[43,42]`, []any{int64(43), int64(42)}},
		{`-0`, int64(0)},
		{`32.43`, 32.43},
		{`-32.12313`, -32.12313},
		{`[true, false]`, []any{true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := Decode(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			defer n.Release()
			if diff := cmp.Diff(tt.want, ir.ToNative(n)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodef(t *testing.T) {
	prev, err := Decode(`[32, 42]`)
	if err != nil {
		t.Fatal(err)
	}
	n, err := Decodef("[%d, 2, %p]", parse.Int(1), parse.Value(prev))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{int64(1), int64(2), []any{int64(32), int64(42)}}
	if diff := cmp.Diff(want, ir.ToNative(n)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := Encode(n); got != "[1, 2, [32, 42]]" {
		t.Errorf("encoded %s", got)
	}
	n.Release()
	if !prev.Released() {
		t.Error("spliced value leaked")
	}
}

func TestDecodefUnusedArgs(t *testing.T) {
	v := ir.FromInt(3)
	_, err := Decodef("[%d]", parse.Int(1), parse.Value(v))
	if !errors.Is(err, ErrUnusedArgs) {
		t.Fatalf("got %v", err)
	}
	if !v.Released() {
		t.Error("unused Value arg leaked")
	}
}

func TestDecodefFailureReleases(t *testing.T) {
	v := ir.FromString("x")
	_, err := Decodef(`{"a": %p, "b": }`, parse.Value(v))
	if !errors.Is(err, parse.ErrParse) {
		t.Fatalf("got %v", err)
	}
	if !v.Released() {
		t.Error("spliced value leaked by failed parse")
	}
}

func TestRoundTrip(t *testing.T) {
	values := []*ir.Node{
		ir.FromInt(-12),
		ir.FromBool(true),
		ir.FromString("tab\there \"q\" \\ ¢ € \x01"),
		ir.FromFloat(2.5),
		ir.NewList(),
		ir.NewDict(),
		ir.FromKeyVals([]ir.KeyVal{
			{Key: "z", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("two"), ir.NewDict()})},
			{Key: "a", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "deep", Val: ir.FromBool(false)}})},
			{Key: "é", Val: ir.FromFloat(-0.125)},
		}),
	}
	for _, v := range values {
		for _, pretty := range []bool{false, true} {
			text := Encode(v)
			if pretty {
				text = EncodePretty(v)
			}
			back, err := Decode(text)
			if err != nil {
				t.Fatalf("%q: %v", text, err)
			}
			if !ir.Equal(v, back) {
				t.Errorf("%q decoded to %s", text, Encode(back))
			}
			again := Encode(back)
			if pretty {
				again = EncodePretty(back)
			}
			if again != text {
				t.Errorf("re-encoding %q gave %q", text, again)
			}
			back.Release()
		}
	}
}

func TestDecodeLexicalPosition(t *testing.T) {
	_, err := Decode("{\n  \"a\": @}")
	var pErr *parse.Error
	if !errors.As(err, &pErr) {
		t.Fatalf("got %v", err)
	}
	if pErr.Pos != (token.Pos{Offset: 9, Line: 1, Col: 7}) {
		t.Errorf("pos %s", pErr.Pos)
	}
}
