package token

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	l := NewLexer(func(t Token) {
		dst = append(dst, t)
	})
	if err := l.Feed(src); err != nil {
		return nil, err
	}
	if err := l.Flush(); err != nil {
		return nil, err
	}
	return dst, nil
}
