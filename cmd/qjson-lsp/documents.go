package main

import (
	"strings"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentURI]*document
}

type document struct {
	uri     protocol.DocumentURI
	content string
	version int32
}

func (ds *documentStore) get(uri protocol.DocumentURI) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri protocol.DocumentURI, content string, version int32) *document {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	doc := &document{uri: uri, content: content, version: version}
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri protocol.DocumentURI) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (ds *documentStore) clear() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	clear(ds.docs)
}

// applyChange applies one content change. A zero range replaces the whole
// document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r == (protocol.Range{}) {
		return change.Text
	}
	start := offsetOf(content, r.Start)
	end := offsetOf(content, r.End)
	if end < start {
		start, end = end, start
	}
	return content[:start] + change.Text + content[end:]
}

// offsetOf returns the byte offset of p, whose character counts UTF-16
// code units. Positions past the end of a line or the text are clamped.
func offsetOf(content string, p protocol.Position) int {
	off := 0
	for line := uint32(0); line < p.Line; line++ {
		i := strings.IndexByte(content[off:], '\n')
		if i < 0 {
			return len(content)
		}
		off += i + 1
	}
	units := uint32(0)
	for off < len(content) && units < p.Character {
		r, size := utf8.DecodeRuneInString(content[off:])
		if r == '\n' {
			break
		}
		units += uint32(utf16.RuneLen(r))
		off += size
	}
	return off
}

// positionOf converts a byte offset into an LSP position.
func positionOf(content string, offset int) protocol.Position {
	offset = min(max(offset, 0), len(content))
	start := strings.LastIndexByte(content[:offset], '\n') + 1
	line := strings.Count(content[:start], "\n")
	units := 0
	for _, r := range content[start:offset] {
		units += utf16.RuneLen(r)
	}
	return protocol.Position{Line: uint32(line), Character: uint32(units)}
}
