package main

import (
	"errors"

	"go.lsp.dev/protocol"

	"github.com/signadot/qjson/ir"
	"github.com/signadot/qjson/parse"
	"github.com/signadot/qjson/stream"
)

// diagnose decodes content as a sequence of values and reports each
// failure. Messages after a parse error are still checked; a lexical
// error ends the check.
func diagnose(content string) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	add := func(err error) {
		res = append(res, diagnostic(content, err))
	}
	dec := stream.NewDecoder(func(n *ir.Node, err error) {
		if err != nil {
			add(err)
			return
		}
		n.Release()
	})
	defer dec.Close()
	if err := dec.Feed([]byte(content)); err != nil {
		add(err)
		return res
	}
	if err := dec.Flush(); err != nil {
		add(err)
	}
	return res
}

func diagnostic(content string, err error) protocol.Diagnostic {
	start, end := len(content), len(content)
	var pErr *parse.Error
	if errors.As(err, &pErr) {
		start = pErr.Pos.Offset
		end = start + max(len(pErr.Token), 1)
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: positionOf(content, start),
			End:   positionOf(content, end),
		},
		Severity: protocol.DiagnosticSeverityError,
		Source:   "qjson",
		Message:  err.Error(),
	}
}
