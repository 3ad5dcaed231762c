package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"sort"
	"sync"

	"go.lsp.dev/jsonrpc2"

	"github.com/signadot/qjson"
	"github.com/signadot/qjson/ir"
	"github.com/signadot/qjson/parse"
)

// HandlerFunc serves one method. params is nil when the request has none
// and is released when the handler returns. The mux releases the result
// after encoding it.
type HandlerFunc func(ctx context.Context, params *ir.Node) (*ir.Node, error)

// Mux dispatches requests by method name.
type Mux struct {
	mu      sync.RWMutex
	methods map[string]HandlerFunc
}

func NewMux() *Mux {
	return &Mux{methods: map[string]HandlerFunc{}}
}

// HandleFunc registers h for method, replacing any previous handler.
func (m *Mux) HandleFunc(method string, h HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.methods[method] = h
}

func (m *Mux) Methods() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]string, 0, len(m.methods))
	for k := range m.methods {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// Handle is a jsonrpc2.Handler.
func (m *Mux) Handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	m.mu.RLock()
	h := m.methods[req.Method()]
	m.mu.RUnlock()
	if h == nil {
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
	params, err := decodeParams(req.Params())
	if err != nil {
		return reply(ctx, nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "%v", err))
	}
	if params != nil {
		defer params.Release()
	}
	res, err := h(ctx, params)
	if err != nil {
		return reply(ctx, nil, rpcError(err))
	}
	if res == nil {
		return reply(ctx, nil, nil)
	}
	defer res.Release()
	if !finite(res) {
		return reply(ctx, nil, jsonrpc2.Errorf(jsonrpc2.InternalError,
			"%s: result holds a nan or infinite float, which JSON cannot carry", req.Method()))
	}
	return reply(ctx, json.RawMessage(qjson.Encode(res)), nil)
}

// finite reports whether every float in n is finite.
func finite(n *ir.Node) bool {
	switch n.Type {
	case ir.FloatType:
		return !math.IsNaN(n.Float64) && !math.IsInf(n.Float64, 0)
	case ir.ListType, ir.DictType:
		for _, v := range n.Values {
			if !finite(v) {
				return false
			}
		}
	}
	return true
}

func decodeParams(raw json.RawMessage) (*ir.Node, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	return qjson.Decode(string(raw))
}

func rpcError(err error) error {
	var rErr *jsonrpc2.Error
	if errors.As(err, &rErr) {
		return rErr
	}
	if errors.Is(err, parse.ErrParse) {
		return jsonrpc2.Errorf(jsonrpc2.InvalidParams, "%v", err)
	}
	return jsonrpc2.Errorf(jsonrpc2.InternalError, "%v", err)
}
