package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"

	"github.com/google/uuid"
	"go.lsp.dev/jsonrpc2"
	"golang.org/x/net/netutil"
)

// Serve accepts connections on ln and serves h on each until ctx is done.
// At most cfg.MaxConns connections are served at once. Serve closes ln and
// waits for open connections before returning; cancellation is a clean
// shutdown and returns nil.
func Serve(ctx context.Context, ln net.Listener, h jsonrpc2.Handler, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	log := cfg.Logger()
	if cfg.MaxConns > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConns)
	}

	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	log.Info("listening", "addr", ln.Addr().String(), "maxConns", cfg.MaxConns)
	for {
		c, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				log.Info("listener stopped")
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			serveConn(ctx, c, h, cfg, log)
		}()
	}
}

func serveConn(ctx context.Context, c net.Conn, h jsonrpc2.Handler, cfg *Config, log *slog.Logger) {
	log = log.With("conn", uuid.NewString(), "remote", c.RemoteAddr().String())
	log.Debug("connection opened")

	conn := jsonrpc2.NewConn(NewStream(c,
		WithMaxTokens(cfg.MaxMessageTokens),
		WithPretty(cfg.Pretty),
	))
	conn.Go(ctx, logHandler(h, log))
	select {
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
	case <-conn.Done():
	}
	if err := conn.Err(); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
		log.Warn("connection error", "error", err)
	}
	log.Debug("connection closed")
}

func logHandler(h jsonrpc2.Handler, log *slog.Logger) jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		log.Debug("request", "method", req.Method())
		return h(ctx, reply, req)
	}
}

// Dial connects to a server at addr and returns a connection serving h for
// requests made by the server.
func Dial(ctx context.Context, addr string, h jsonrpc2.Handler, opts ...StreamOption) (jsonrpc2.Conn, error) {
	var d net.Dialer
	c, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	if h == nil {
		h = jsonrpc2.MethodNotFoundHandler
	}
	conn := jsonrpc2.NewConn(NewStream(c, opts...))
	conn.Go(ctx, h)
	return conn, nil
}
