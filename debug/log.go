package debug

import (
	"fmt"
	"os"

	"github.com/signadot/qjson/encode"
	"github.com/signadot/qjson/ir"
	"github.com/signadot/qjson/token"
)

// Logf writes to stderr, rendering nodes and token groups as text.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = encode.String(x)
		case []token.Token:
			args[i] = tokens(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func tokens(toks []token.Token) string {
	res := make([]byte, 0, 16*len(toks))
	for i := range toks {
		if i > 0 {
			res = append(res, ", "...)
		}
		res = append(res, toks[i].Info()...)
	}
	return string(res)
}
