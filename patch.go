package qjson

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/qjson/debug"
	"github.com/signadot/qjson/ir"
)

// Patch applies patch, a list of RFC 6902 operations, to doc and returns
// the result as a new node. doc and patch are borrowed.
func Patch(doc, patch *ir.Node) (*ir.Node, error) {
	if patch.Type != ir.ListType {
		return nil, fmt.Errorf("patch must be a list, got %s", patch.Type)
	}
	pd, err := MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	d, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch %s with %s\n", d, pd)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return UnmarshalJSON(out)
}
