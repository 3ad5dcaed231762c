package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/scott-cotton/cli"

	"github.com/signadot/qjson"
	"github.com/signadot/qjson/encode"
	"github.com/signadot/qjson/ir"
	"github.com/signadot/qjson/stream"
)

// openInput opens path, or the command input for "-". Paths ending in
// .zst are zstd compressed.
func openInput(cc *cli.Context, path string) (io.ReadCloser, error) {
	var rc io.ReadCloser
	if path == "-" {
		rc = io.NopCloser(cc.In)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		rc = f
	}
	if !strings.HasSuffix(path, ".zst") {
		return rc, nil
	}
	dec, err := zstd.NewReader(rc)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return &zstdReadCloser{dec: dec, under: rc}, nil
}

type zstdReadCloser struct {
	dec   *zstd.Decoder
	under io.Closer
}

func (z *zstdReadCloser) Read(p []byte) (int, error) {
	return z.dec.Read(p)
}

func (z *zstdReadCloser) Close() error {
	z.dec.Close()
	return z.under.Close()
}

// eachValue calls fn with every value of every input in paths, in order.
// No paths means the command input. fn borrows the node.
func eachValue(cc *cli.Context, paths []string, fn func(path string, n *ir.Node) error) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		if err := eachFileValue(cc, path, fn); err != nil {
			return err
		}
	}
	return nil
}

func eachFileValue(cc *cli.Context, path string, fn func(string, *ir.Node) error) error {
	rc, err := openInput(cc, path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return eachReaderValue(rc, path, fn)
}

func eachReaderValue(rd io.Reader, path string, fn func(string, *ir.Node) error) error {
	r := stream.NewReader(rd)
	defer r.Close()
	for i := 0; ; i++ {
		n, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error decoding %s value %d: %w", path, i, err)
		}
		theLog.Debug("decoded", "path", path, "index", i, "type", n.Type)
		err = fn(path, n)
		n.Release()
		if err != nil {
			return err
		}
	}
}

// getObjFile reads the one value held in path.
func getObjFile(cc *cli.Context, path string) (*ir.Node, error) {
	rc, err := openInput(cc, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	d, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	n, err := qjson.Decode(string(d))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	if n == nil {
		return nil, fmt.Errorf("%s holds no value", path)
	}
	return n, nil
}

func writeValue(w io.Writer, n *ir.Node, opts []encode.EncodeOption) error {
	if err := encode.Encode(n, w, opts...); err != nil {
		return fmt.Errorf("error encoding: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
