package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/qjson/encode"
	"github.com/signadot/qjson/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0])
	if err != nil {
		return err
	}
	defer a.Release()
	b, err := getObjFile(cc, args[1])
	if err != nil {
		return err
	}
	defer b.Release()
	if ir.Equal(a, b) {
		return nil
	}
	indent := encode.EncodeIndent(4)
	if cfg.Indent > 0 {
		indent = encode.EncodeIndent(cfg.Indent)
	}
	lines := diffLines(
		encode.String(a, encode.EncodePretty(true), indent)+"\n",
		encode.String(b, encode.EncodePretty(true), indent)+"\n")
	if err := writeDiff(cc.Out, args[0], args[1], lines, cfg.Context, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

type diffLine struct {
	op   diffpatch.Operation
	text string
}

func diffLines(a, b string) []diffLine {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var res []diffLine
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			res = append(res, diffLine{op: d.Type, text: line})
		}
	}
	return res
}

// writeDiff writes lines in unified form, keeping ctx unchanged lines
// around each change and marking elided runs with "@@".
func writeDiff(w io.Writer, from, to string, lines []diffLine, ctx int, colored bool) error {
	show := make([]bool, len(lines))
	for i, l := range lines {
		if l.op == diffpatch.DiffEqual {
			continue
		}
		for j := max(0, i-ctx); j <= min(len(lines)-1, i+ctx); j++ {
			show[j] = true
		}
	}
	del, ins := color.RedString, color.GreenString
	if !colored {
		del = fmt.Sprintf
		ins = fmt.Sprintf
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", from, to)
	skipped := false
	for i, l := range lines {
		if !show[i] {
			skipped = true
			continue
		}
		if skipped || i == 0 {
			sb.WriteString("@@\n")
			skipped = false
		}
		switch l.op {
		case diffpatch.DiffDelete:
			sb.WriteString(del("%s", "-"+l.text))
		case diffpatch.DiffInsert:
			sb.WriteString(ins("%s", "+"+l.text))
		default:
			sb.WriteString(" " + l.text)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
