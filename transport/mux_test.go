package transport

import (
	"context"
	"errors"
	"math"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/jsonrpc2"

	"github.com/signadot/qjson/ir"
)

func pipeConns(t *testing.T, h jsonrpc2.Handler) jsonrpc2.Conn {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	a, b := net.Pipe()
	server := jsonrpc2.NewConn(NewStream(a))
	server.Go(ctx, h)
	client := jsonrpc2.NewConn(NewStream(b))
	client.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	t.Cleanup(func() {
		cancel()
		client.Close()
		server.Close()
		<-client.Done()
		<-server.Done()
	})
	return client
}

func TestControlFormat(t *testing.T) {
	client := pipeConns(t, NewControlMux().Handle)
	ctx := context.Background()
	tests := []struct {
		name   string
		params map[string]any
		want   string
	}{
		{"compact", map[string]any{"text": `{'a': [1,2], "b": "¢"}`}, `{"a": [1, 2], "b": "\u00A2"}`},
		{"pretty", map[string]any{"text": "[1]", "pretty": true}, "[\n    1\n]"},
		{"empty", map[string]any{"text": "  "}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if _, err := client.Call(ctx, MethodFormat, tt.params, &got); err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestControlValidate(t *testing.T) {
	client := pipeConns(t, NewControlMux().Handle)
	ctx := context.Background()
	type result struct {
		OK     bool   `json:"ok"`
		Kind   string `json:"kind"`
		Offset int    `json:"offset"`
		Line   int    `json:"line"`
		Col    int    `json:"col"`
	}
	var got result
	if _, err := client.Call(ctx, MethodValidate, map[string]string{"text": "[1,\n @]"}, &got); err != nil {
		t.Fatal(err)
	}
	want := result{Kind: "lexical", Offset: 5, Line: 1, Col: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got = result{}
	if _, err := client.Call(ctx, MethodValidate, map[string]string{"text": `{"a": 1}`}, &got); err != nil {
		t.Fatal(err)
	}
	if !got.OK {
		t.Errorf("valid text reported invalid: %+v", got)
	}
}

func TestControlEcho(t *testing.T) {
	client := pipeConns(t, NewControlMux().Handle)
	var got any
	params := map[string]any{"a": []any{1.0, "x", true}}
	if _, err := client.Call(context.Background(), MethodEcho, params, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(any(params), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMuxErrors(t *testing.T) {
	m := NewControlMux()
	m.HandleFunc("fail", func(context.Context, *ir.Node) (*ir.Node, error) {
		return nil, errors.New("boom")
	})
	m.HandleFunc("nan", func(context.Context, *ir.Node) (*ir.Node, error) {
		return ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromFloat(math.NaN())}), nil
	})
	m.HandleFunc("inf", func(context.Context, *ir.Node) (*ir.Node, error) {
		return ir.NewDict().Set("x", ir.FromFloat(math.Inf(-1))), nil
	})
	client := pipeConns(t, m.Handle)
	ctx := context.Background()
	tests := []struct {
		name   string
		method string
		params any
		code   jsonrpc2.Code
	}{
		{"unknown method", "nope", nil, jsonrpc2.MethodNotFound},
		{"params not a dict", MethodFormat, []int{1}, jsonrpc2.InvalidParams},
		{"missing text", MethodValidate, map[string]int{"x": 1}, jsonrpc2.InvalidParams},
		{"bad text", MethodFormat, map[string]string{"text": "[1"}, jsonrpc2.InvalidParams},
		{"undecodable params", MethodEcho, map[string]any{"a": nil}, jsonrpc2.InvalidParams},
		{"handler error", "fail", nil, jsonrpc2.InternalError},
		{"nan result", "nan", nil, jsonrpc2.InternalError},
		{"infinite result", "inf", nil, jsonrpc2.InternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res any
			_, err := client.Call(ctx, tt.method, tt.params, &res)
			var rErr *jsonrpc2.Error
			if !errors.As(err, &rErr) {
				t.Fatalf("got %v", err)
			}
			if rErr.Code != tt.code {
				t.Errorf("code %d, want %d: %s", rErr.Code, tt.code, rErr.Message)
			}
		})
	}
}

func TestMuxMethods(t *testing.T) {
	want := []string{MethodEcho, MethodFormat, MethodValidate}
	if diff := cmp.Diff(want, NewControlMux().Methods()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
