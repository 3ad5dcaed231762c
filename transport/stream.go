package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.lsp.dev/jsonrpc2"

	"github.com/signadot/qjson"
	"github.com/signadot/qjson/debug"
	"github.com/signadot/qjson/stream"
	"github.com/signadot/qjson/token"
)

// Stream is a jsonrpc2.Stream whose messages are bare values delimited only
// by their own brackets.
type Stream struct {
	rwc       io.ReadWriteCloser
	framer    *stream.Framer
	maxTokens int
	pretty    bool

	rbuf []byte
	// buf holds the bytes read since the end of the last framed message;
	// base is the stream offset of buf[0].
	buf  []byte
	base int
	cut  int
	msgs [][]byte
	eof  bool

	wmu sync.Mutex
}

var _ jsonrpc2.Stream = (*Stream)(nil)

func NewStream(rwc io.ReadWriteCloser, opts ...StreamOption) *Stream {
	s := &Stream{rwc: rwc}
	for _, opt := range opts {
		opt(s)
	}
	if s.rbuf == nil {
		s.rbuf = make([]byte, 4096)
	}
	s.framer = stream.NewFramer(s.frame, stream.WithMaxTokens(s.maxTokens))
	return s
}

func (s *Stream) frame(toks []token.Token) {
	start := toks[0].Pos.Offset
	end := toks[len(toks)-1].End()
	s.msgs = append(s.msgs, bytes.Clone(s.buf[start-s.base:end-s.base]))
	s.cut = end
}

func (s *Stream) trim() {
	if d := s.cut - s.base; d > 0 {
		s.buf = append(s.buf[:0], s.buf[d:]...)
		s.base = s.cut
	}
}

// Read returns the next message. A framing error or a message that is not
// JSON-RPC ends the stream.
func (s *Stream) Read(ctx context.Context) (jsonrpc2.Message, int64, error) {
	for len(s.msgs) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		if s.eof {
			return nil, 0, io.EOF
		}
		n, err := s.rwc.Read(s.rbuf)
		if n > 0 {
			s.buf = append(s.buf, s.rbuf[:n]...)
			ferr := s.framer.Feed(s.rbuf[:n])
			s.trim()
			if ferr != nil {
				return nil, 0, ferr
			}
		}
		if errors.Is(err, io.EOF) {
			s.eof = true
			ferr := s.framer.Flush()
			s.trim()
			if ferr != nil {
				return nil, 0, ferr
			}
			continue
		}
		if err != nil {
			return nil, 0, err
		}
	}
	raw := s.msgs[0]
	s.msgs = s.msgs[1:]
	if debug.RPC() {
		debug.Logf("rpc read %s\n", raw)
	}
	msg, err := jsonrpc2.DecodeMessage(raw)
	if err != nil {
		return nil, int64(len(raw)), fmt.Errorf("decoding message: %w", err)
	}
	return msg, int64(len(raw)), nil
}

// Write writes msg with no delimiter. Write may be called concurrently.
func (s *Stream) Write(ctx context.Context, msg jsonrpc2.Message) (int64, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return 0, fmt.Errorf("marshaling message: %w", err)
	}
	if s.pretty {
		data = prettify(data)
	}
	if debug.RPC() {
		debug.Logf("rpc write %s\n", data)
	}
	s.wmu.Lock()
	defer s.wmu.Unlock()
	n, err := s.rwc.Write(data)
	return int64(n), err
}

// prettify reencodes data, leaving it as it is when it holds something the
// qjson syntax lacks, such as null.
func prettify(data []byte) []byte {
	n, err := qjson.Decode(string(data))
	if err != nil || n == nil {
		return data
	}
	defer n.Release()
	return []byte(qjson.EncodePretty(n))
}

// Close closes the underlying connection, unblocking a pending Read.
func (s *Stream) Close() error {
	return s.rwc.Close()
}
