package parse

import (
	"fmt"

	"github.com/signadot/qjson/ir"
)

type ArgKind int

const (
	ArgInt ArgKind = iota
	ArgBool
	ArgText
	ArgFloat
	ArgValue
)

func (k ArgKind) String() string {
	switch k {
	case ArgInt:
		return "int"
	case ArgBool:
		return "bool"
	case ArgText:
		return "text"
	case ArgFloat:
		return "float"
	case ArgValue:
		return "value"
	}
	return fmt.Sprintf("ArgKind(%d)", int(k))
}

// Arg is a native value spliced into parsed text in place of a placeholder.
type Arg struct {
	kind ArgKind
	i    int64
	b    bool
	s    string
	f    float64
	n    *ir.Node
}

func Int(v int64) Arg     { return Arg{kind: ArgInt, i: v} }
func Bool(v bool) Arg     { return Arg{kind: ArgBool, b: v} }
func Text(v string) Arg   { return Arg{kind: ArgText, s: v} }
func Float(v float64) Arg { return Arg{kind: ArgFloat, f: v} }

// Value splices an already built node. The caller's reference to n passes
// to the Args it is given to, and from there to the parsed tree.
func Value(n *ir.Node) Arg { return Arg{kind: ArgValue, n: n} }

func (a Arg) Kind() ArgKind { return a.kind }

func (a Arg) node() *ir.Node {
	switch a.kind {
	case ArgInt:
		return ir.FromInt(a.i)
	case ArgBool:
		return ir.FromBool(a.b)
	case ArgText:
		return ir.FromString(a.s)
	case ArgFloat:
		return ir.FromFloat(a.f)
	}
	return a.n
}

// placeholderKinds maps placeholder text to the kind of Arg it consumes.
var placeholderKinds = map[string]ArgKind{
	"%p":    ArgValue,
	"%i":    ArgBool,
	"%d":    ArgInt,
	"%ld":   ArgInt,
	"%lld":  ArgInt,
	"%I64d": ArgInt,
	"%s":    ArgText,
	"%f":    ArgFloat,
}

// Args is a positional cursor over interpolation arguments. It may be
// shared by successive parses, each consuming where the last stopped.
type Args struct {
	args []Arg
	i    int
}

func NewArgs(args ...Arg) *Args {
	for _, a := range args {
		if a.kind == ArgValue && a.n == nil {
			panic("parse: nil Value arg")
		}
	}
	return &Args{args: args}
}

// Remaining reports the number of unconsumed args.
func (a *Args) Remaining() int {
	return len(a.args) - a.i
}

// Release drops the references held by unconsumed Value args and
// exhausts the cursor.
func (a *Args) Release() {
	for ; a.i < len(a.args); a.i++ {
		if arg := a.args[a.i]; arg.kind == ArgValue {
			arg.n.Release()
		}
	}
}

func (a *Args) next() (Arg, bool) {
	if a.i >= len(a.args) {
		return Arg{}, false
	}
	arg := a.args[a.i]
	a.i++
	return arg, true
}

func (a *Args) peek() (Arg, bool) {
	if a.i >= len(a.args) {
		return Arg{}, false
	}
	return a.args[a.i], true
}
