package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/qjson/encode"
	"github.com/signadot/qjson/stream"
)

// Formatting replaces the document with its values pretty encoded, one
// after the other. A document that does not decode is left alone.
func (s *Server) Formatting(params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	indent := 4
	if params.Options.TabSize > 0 {
		indent = int(params.Options.TabSize)
	}
	formatted, err := format(doc.content, indent)
	if err != nil {
		s.log.Debug("not formatting", "uri", doc.uri, "error", err)
		return nil, nil
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   positionOf(doc.content, len(doc.content)),
			},
			NewText: formatted,
		},
	}, nil
}

func format(content string, indent int) (string, error) {
	r := stream.NewReader(strings.NewReader(content))
	defer r.Close()
	var buf bytes.Buffer
	for {
		n, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		err = encode.Encode(n, &buf, encode.EncodePretty(true), encode.EncodeIndent(indent))
		n.Release()
		if err != nil {
			return "", fmt.Errorf("encoding: %w", err)
		}
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}
