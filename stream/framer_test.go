package stream

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/qjson/token"
)

func collect(groups *[][]string) func([]token.Token) {
	return func(toks []token.Token) {
		g := make([]string, len(toks))
		for i := range toks {
			g[i] = string(toks[i].Bytes)
		}
		*groups = append(*groups, g)
	}
}

func TestFramerMessages(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]string
	}{
		{"empty", "", nil},
		{"whitespace", " \n\t ", nil},
		{"two strings", `"1" "2"`, [][]string{{`"1"`}, {`"2"`}}},
		{"two numbers", "1 2", [][]string{{"1"}, {"2"}}},
		{"adjacent", `{"a":1}[2]"x"true`, [][]string{
			{"{", `"a"`, ":", "1", "}"},
			{"[", "2", "]"},
			{`"x"`},
			{"true"},
		}},
		{"nested", `[{"a": [1]}, {}]`, [][]string{
			{"[", "{", `"a"`, ":", "[", "1", "]", "}", ",", "{", "}", "]"},
		}},
		{"mismatched closers balance", `[}]{`, [][]string{{"[", "}", "]", "{"}}},
		{"stray closer", `]1[`, [][]string{{"]", "1", "["}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][]string
			f := NewFramer(collect(&got))
			if err := f.Feed([]byte(tt.in)); err != nil {
				t.Fatal(err)
			}
			if err := f.Flush(); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestFramerScalarEmittedOnArrival(t *testing.T) {
	var got [][]string
	f := NewFramer(collect(&got))
	if err := f.Feed([]byte(`"a" 1`)); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d messages before flush", len(got))
	}
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("got %d messages after flush", len(got))
	}
}

func TestFramerSplits(t *testing.T) {
	src := `{"key": [1, -2.5, 'a\'b', true], "u": "¢"} [3] "x" 42 `
	var want [][]string
	f := NewFramer(collect(&want))
	if err := f.Feed([]byte(src)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i <= len(src); i++ {
		for j := i; j <= len(src); j++ {
			var got [][]string
			f := NewFramer(collect(&got))
			for _, chunk := range []string{src[:i], src[i:j], src[j:]} {
				if err := f.Feed([]byte(chunk)); err != nil {
					t.Fatalf("split %d,%d: %v", i, j, err)
				}
			}
			if err := f.Flush(); err != nil {
				t.Fatalf("split %d,%d: %v", i, j, err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("split %d,%d (-want +got):\n%s", i, j, diff)
			}
		}
	}
}

func TestFramerDepth(t *testing.T) {
	f := NewFramer(func([]token.Token) {})
	if err := f.Feed([]byte(`{"a": [[1, `)); err != nil {
		t.Fatal(err)
	}
	braces, brackets := f.Depth()
	if braces != 1 || brackets != 2 {
		t.Errorf("depth %d %d", braces, brackets)
	}
	if f.Pending() != 7 {
		t.Errorf("pending %d", f.Pending())
	}
	err := f.Flush()
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("got %v", err)
	}
	if f.Pending() != 0 {
		t.Error("partial message kept")
	}
}

func TestFramerMaxTokens(t *testing.T) {
	var got [][]string
	f := NewFramer(collect(&got), WithMaxTokens(5))
	if err := f.Feed([]byte("[1, 2] ")); err != nil {
		t.Fatal(err)
	}
	err := f.Feed([]byte("[1, 2, 3]"))
	if !errors.Is(err, ErrMessageTooLarge) {
		t.Fatalf("got %v", err)
	}
	if err2 := f.Feed([]byte("4")); err2 != err {
		t.Errorf("error not sticky: %v", err2)
	}
	if len(got) != 1 {
		t.Errorf("got %d messages", len(got))
	}
	f.Reset()
	if err := f.Feed([]byte(`"ok"`)); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("no message after Reset")
	}
}

func TestFramerLexicalError(t *testing.T) {
	f := NewFramer(func([]token.Token) {})
	err := f.Feed([]byte("[1, @]"))
	if !errors.Is(err, token.ErrUnexpected) {
		t.Fatalf("got %v", err)
	}
	if err := f.Flush(); !errors.Is(err, token.ErrUnexpected) {
		t.Errorf("flush after error: %v", err)
	}
}
