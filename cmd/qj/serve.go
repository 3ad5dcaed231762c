package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/signadot/qjson/transport"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}
	sCfg, err := transport.LoadConfig(cfg.ConfigFile)
	if err != nil {
		return err
	}
	if cfg.Addr != "" {
		sCfg.Addr = cfg.Addr
	}
	if cfg.Pretty {
		sCfg.Pretty = true
	}
	if cfg.Verbose {
		sCfg.LogLevel = "debug"
	}
	if cfg.Gops || sCfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		} else {
			defer agent.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", sCfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", sCfg.Addr, err)
	}
	mux := transport.NewControlMux()
	fmt.Fprintf(cc.Out, "qj serving %v on %s\n", mux.Methods(), ln.Addr())
	return transport.Serve(ctx, ln, mux.Handle, sCfg)
}
