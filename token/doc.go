// Package token provides tokenization of qjson text.
//
// [Lexer] is an incremental tokenizer: bytes may be fed in chunks of any
// size and a token may span chunks. [Tokenize] is a function for tokenizing
// a complete document.
//
// Whitespace is recognized and discarded; every other token is delivered
// with its raw bytes and the [Pos] of its first byte. The lexer checks the
// shape of string escapes but never interprets them.
package token
