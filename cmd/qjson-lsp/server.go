package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// Notifier is the part of a jsonrpc2.Conn the server uses to talk to the
// client.
type Notifier interface {
	Notify(ctx context.Context, method string, params any) error
}

type Server struct {
	conn Notifier
	docs *documentStore
	log  *slog.Logger
}

func NewServer(conn Notifier, log *slog.Logger) *Server {
	return &Server{
		conn: conn,
		docs: &documentStore{docs: map[protocol.DocumentURI]*document{}},
		log:  log,
	}
}

// Handle is a jsonrpc2.Handler serving the methods in Initialize's
// capabilities.
func (s *Server) Handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	s.log.Debug("request", "method", req.Method())
	switch req.Method() {
	case protocol.MethodInitialize:
		var params protocol.InitializeParams
		if err := unmarshalParams(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, s.Initialize(&params), nil)
	case protocol.MethodInitialized, protocol.MethodExit:
		return reply(ctx, nil, nil)
	case protocol.MethodShutdown:
		s.docs.clear()
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentDidOpen:
		var params protocol.DidOpenTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, nil, s.DidOpen(ctx, &params))
	case protocol.MethodTextDocumentDidChange:
		var params protocol.DidChangeTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, nil, s.DidChange(ctx, &params))
	case protocol.MethodTextDocumentDidClose:
		var params protocol.DidCloseTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		s.docs.remove(params.TextDocument.URI)
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentFormatting:
		var params protocol.DocumentFormattingParams
		if err := unmarshalParams(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		edits, err := s.Formatting(&params)
		return reply(ctx, edits, err)
	}
	return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
}

func unmarshalParams(req jsonrpc2.Request, v any) error {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return jsonrpc2.Errorf(jsonrpc2.InvalidParams, "%s: %v", req.Method(), err)
	}
	return nil
}

func (s *Server) Initialize(params *protocol.InitializeParams) *protocol.InitializeResult {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				Change:    protocol.TextDocumentSyncKindIncremental,
				OpenClose: true,
			},
			DocumentFormattingProvider: true,
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    lsName,
			Version: version,
		},
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(params.TextDocument.URI, params.TextDocument.Text, params.TextDocument.Version)
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	doc := s.docs.get(uri)
	if doc == nil {
		return fmt.Errorf("change to unopened document %s", uri)
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	doc = s.docs.put(uri, content, params.TextDocument.Version)
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         doc.uri,
		Version:     uint32(doc.version),
		Diagnostics: diagnose(doc.content),
	})
}
