// Package transport carries JSON-RPC 2.0 over a byte stream of bare
// values, with no length prefix and no delimiter between messages.
//
// Message boundaries are found by the bracket balance framer of package
// stream, so a peer may write `{"jsonrpc": "2.0", ...}{"jsonrpc": ...}`
// back to back. [Serve] runs a listener of such connections and [Mux]
// dispatches requests whose params are decoded with the qjson parser.
package transport
