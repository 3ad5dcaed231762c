package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/jsonrpc2"

	"github.com/signadot/qjson/stream"
)

type bufRWC struct {
	io.Reader
	out    bytes.Buffer
	closed bool
}

func (b *bufRWC) Write(p []byte) (int, error) { return b.out.Write(p) }
func (b *bufRWC) Close() error {
	b.closed = true
	return nil
}

func describe(msg jsonrpc2.Message) string {
	switch m := msg.(type) {
	case *jsonrpc2.Call:
		return "call " + m.Method()
	case *jsonrpc2.Notification:
		return "notify " + m.Method()
	case *jsonrpc2.Response:
		return "response"
	}
	return "unknown"
}

func TestStreamRead(t *testing.T) {
	msgs := []string{
		`{"jsonrpc":"2.0","method":"note","params":[1, 2]}`,
		`{"jsonrpc": "2.0", "id": 7, "method": "call", "params": {"text": "[1, {]"}}`,
		`{"jsonrpc":"2.0","id":7,"result":null}`,
	}
	src := msgs[0] + "\n  " + msgs[1] + msgs[2] + "\n"
	ctx := context.Background()
	for _, size := range []int{1, 3, 4096} {
		rwc := &bufRWC{Reader: iotest.OneByteReader(strings.NewReader(src))}
		s := NewStream(rwc, WithReadSize(size))
		var got []string
		for i := range msgs {
			msg, n, err := s.Read(ctx)
			if err != nil {
				t.Fatalf("size %d: read %d: %v", size, i, err)
			}
			if n != int64(len(msgs[i])) {
				t.Errorf("size %d: read %d: %d bytes, want %d", size, i, n, len(msgs[i]))
			}
			got = append(got, describe(msg))
		}
		want := []string{"notify note", "call call", "response"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("size %d (-want +got):\n%s", size, diff)
		}
		if _, _, err := s.Read(ctx); err != io.EOF {
			t.Errorf("size %d: got %v, want EOF", size, err)
		}
	}
}

func TestStreamReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []StreamOption
		want error
	}{
		{"incomplete", `{"jsonrpc": "2.0"`, nil, stream.ErrIncomplete},
		{"too large", `{"jsonrpc": "2.0", "method": "m"}`, []StreamOption{WithMaxTokens(4)}, stream.ErrMessageTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStream(&bufRWC{Reader: strings.NewReader(tt.in)}, tt.opts...)
			_, _, err := s.Read(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestStreamReadNotRPC(t *testing.T) {
	s := NewStream(&bufRWC{Reader: strings.NewReader(`[1, 2]`)})
	if _, _, err := s.Read(context.Background()); err == nil {
		t.Error("expected an error for a non message value")
	}
}

func TestStreamReadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewStream(&bufRWC{Reader: strings.NewReader(`{}`)})
	if _, _, err := s.Read(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v", err)
	}
}

func TestStreamWrite(t *testing.T) {
	ctx := context.Background()
	note, err := jsonrpc2.NewNotification("m", map[string]int{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	call, err := jsonrpc2.NewCall(jsonrpc2.NewNumberID(3), "c", []int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	for _, pretty := range []bool{false, true} {
		rwc := &bufRWC{}
		s := NewStream(rwc, WithPretty(pretty))
		for _, msg := range []jsonrpc2.Message{note, call} {
			if _, err := s.Write(ctx, msg); err != nil {
				t.Fatal(err)
			}
		}
		out := rwc.out.String()
		if pretty != strings.Contains(out, "\n    \"method\": \"m\"") {
			t.Errorf("pretty=%v: %q", pretty, out)
		}
		back := NewStream(&bufRWC{Reader: strings.NewReader(out)})
		var got []string
		for {
			msg, _, err := back.Read(ctx)
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("pretty=%v: %v", pretty, err)
			}
			got = append(got, describe(msg))
		}
		if diff := cmp.Diff([]string{"notify m", "call c"}, got); diff != "" {
			t.Errorf("pretty=%v (-want +got):\n%s", pretty, diff)
		}
	}
}

func TestStreamClose(t *testing.T) {
	rwc := &bufRWC{Reader: strings.NewReader("")}
	if err := NewStream(rwc).Close(); err != nil {
		t.Fatal(err)
	}
	if !rwc.closed {
		t.Error("underlying connection left open")
	}
}
