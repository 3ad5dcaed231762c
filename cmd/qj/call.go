package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/signadot/qjson"
	"github.com/signadot/qjson/transport"
)

func call(cfg *CallConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Call.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: call requires a method and at most one params value", cli.ErrUsage)
	}
	var params any
	if len(args) == 2 {
		n, err := qjson.Decode(args[1])
		if err != nil {
			return fmt.Errorf("%w: params: %w", cli.ErrUsage, err)
		}
		if n != nil {
			params = json.RawMessage(qjson.Encode(n))
			n.Release()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	conn, err := transport.Dial(ctx, cfg.Addr, nil, transport.WithPretty(cfg.Pretty))
	if err != nil {
		return err
	}
	defer conn.Close()
	theLog.Debug("calling", "addr", cfg.Addr, "method", args[0])
	var res json.RawMessage
	if _, err := conn.Call(ctx, args[0], params, &res); err != nil {
		return fmt.Errorf("calling %s: %w", args[0], err)
	}
	res = bytes.TrimSpace(res)
	if len(res) == 0 || bytes.Equal(res, []byte("null")) {
		return nil
	}
	n, err := qjson.UnmarshalJSON(res)
	if err != nil {
		return fmt.Errorf("decoding result: %w", err)
	}
	defer n.Release()
	return writeValue(cc.Out, n, cfg.encOpts(cc.Out))
}
