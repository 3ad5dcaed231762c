package token

import (
	"fmt"
	"slices"
)

type lexState int

const (
	lexIdle lexState = iota
	lexNumber
	lexKeyword
	lexString
	lexStringEsc
	lexStringHex
	lexEscape
)

// number sub states
const (
	numSign = iota
	numZero
	numInt
	numDot
	numFrac
	numExp
	numExpSign
	numExpDigits
)

var placeholders = []string{"p", "i", "d", "ld", "lld", "I64d", "s", "f"}

// Lexer turns a byte stream into tokens. It keeps its scan state between
// calls to Feed, so input may be split anywhere.
//
// A Lexer is not safe for concurrent use.
type Lexer struct {
	emit func(Token)

	state lexState
	num   int
	quote byte
	hex   int
	float bool

	buf   []byte
	start Pos
	pos   Pos
	err   error
}

// NewLexer returns a lexer calling emit once for each completed token,
// before the Feed or Flush call completing it returns.
func NewLexer(emit func(Token)) *Lexer {
	return &Lexer{emit: emit}
}

// Pos returns the position of the next byte to be fed.
func (l *Lexer) Pos() Pos {
	return l.pos
}

// Err returns the error which failed the lexer, if any.
func (l *Lexer) Err() error {
	return l.err
}

// Reset returns l to its initial state, clearing any error.
func (l *Lexer) Reset() {
	l.state = lexIdle
	l.buf = l.buf[:0]
	l.start = Pos{}
	l.pos = Pos{}
	l.err = nil
}

// Feed scans p. Once Feed or Flush returns an error, the lexer is failed
// and returns the same error until Reset.
func (l *Lexer) Feed(p []byte) error {
	if l.err != nil {
		return l.err
	}
	for i := 0; i < len(p); {
		c := p[i]
		consumed, err := l.step(c)
		if err != nil {
			l.err = err
			return err
		}
		if consumed {
			l.pos.advance(c)
			i++
		}
	}
	return nil
}

// Flush completes a pending number or keyword. A string or placeholder in
// progress is an error.
func (l *Lexer) Flush() error {
	if l.err != nil {
		return l.err
	}
	switch l.state {
	case lexIdle:
		return nil
	case lexKeyword:
		l.finish(TKeyword)
		return nil
	case lexNumber:
		if !l.endNumber() {
			l.err = newError(fmt.Errorf("%w number %q", ErrUnterminated, l.buf), l.start)
			return l.err
		}
		return nil
	}
	l.err = newError(fmt.Errorf("%w %s", ErrUnterminated, l.pendingName()), l.start)
	return l.err
}

func (l *Lexer) pendingName() string {
	switch l.state {
	case lexEscape:
		return "placeholder"
	default:
		return "string"
	}
}

// step handles one byte, reporting whether it was consumed. A byte which
// ends a number or keyword is not consumed; it is stepped again from the
// idle state.
func (l *Lexer) step(c byte) (bool, error) {
	switch l.state {
	case lexIdle:
		return true, l.idle(c)
	case lexNumber:
		return l.number(c)
	case lexKeyword:
		if isLetter(c) {
			l.buf = append(l.buf, c)
			return true, nil
		}
		l.finish(TKeyword)
		return false, nil
	case lexString:
		l.buf = append(l.buf, c)
		switch c {
		case '\\':
			l.state = lexStringEsc
		case l.quote:
			l.finish(TString)
		}
		return true, nil
	case lexStringEsc:
		switch c {
		case '"', '\'', '\\', '/', 'b', 'f', 'n', 'r', 't':
			l.state = lexString
		case 'u':
			l.state = lexStringHex
			l.hex = 0
		default:
			return false, newError(fmt.Errorf("%w \\%c", ErrBadEscape, c), l.pos)
		}
		l.buf = append(l.buf, c)
		return true, nil
	case lexStringHex:
		if !isHex(c) {
			return false, newError(fmt.Errorf("%w: %q is not a hex digit", ErrBadUnicode, c), l.pos)
		}
		l.buf = append(l.buf, c)
		l.hex++
		if l.hex == 4 {
			l.state = lexString
		}
		return true, nil
	case lexEscape:
		l.buf = append(l.buf, c)
		verb := string(l.buf[1:])
		prefix := false
		for _, p := range placeholders {
			if p == verb {
				l.finish(TEscape)
				return true, nil
			}
			if len(p) > len(verb) && p[:len(verb)] == verb {
				prefix = true
			}
		}
		if !prefix {
			return false, newError(fmt.Errorf("%w %q", ErrBadPlaceholder, l.buf), l.start)
		}
		return true, nil
	}
	panic(fmt.Sprintf("token: lexer state %d", l.state))
}

func (l *Lexer) idle(c byte) error {
	l.start = l.pos
	l.buf = l.buf[:0]
	switch c {
	case ' ', '\t', '\r', '\n':
		return nil
	case '{':
		l.op(c, TLCurl)
	case '}':
		l.op(c, TRCurl)
	case '[':
		l.op(c, TLSquare)
	case ']':
		l.op(c, TRSquare)
	case ':':
		l.op(c, TColon)
	case ',':
		l.op(c, TComma)
	case '"', '\'':
		l.state = lexString
		l.quote = c
		l.buf = append(l.buf, c)
	case '%':
		l.state = lexEscape
		l.buf = append(l.buf, c)
	case '-':
		l.startNumber(c, numSign)
	case '0':
		l.startNumber(c, numZero)
	default:
		switch {
		case isDigit(c):
			l.startNumber(c, numInt)
		case isLetter(c):
			l.state = lexKeyword
			l.buf = append(l.buf, c)
		default:
			return unexpectedErr(c, l.pos)
		}
	}
	return nil
}

func (l *Lexer) op(c byte, t TokenType) {
	l.buf = append(l.buf, c)
	l.finish(t)
}

func (l *Lexer) startNumber(c byte, sub int) {
	l.state = lexNumber
	l.num = sub
	l.float = false
	l.buf = append(l.buf, c)
}

func (l *Lexer) number(c byte) (bool, error) {
	next := -1
	switch l.num {
	case numSign:
		switch {
		case c == '0':
			next = numZero
		case isDigit(c):
			next = numInt
		}
	case numZero:
		switch {
		case isDigit(c):
			return false, newError(ErrLeadingZero, l.start)
		case c == '.':
			next = numDot
		case c == 'e' || c == 'E':
			next = numExp
		}
	case numInt:
		switch {
		case isDigit(c):
			next = numInt
		case c == '.':
			next = numDot
		case c == 'e' || c == 'E':
			next = numExp
		}
	case numDot, numFrac:
		switch {
		case isDigit(c):
			next = numFrac
		case l.num == numFrac && (c == 'e' || c == 'E'):
			next = numExp
		}
	case numExp:
		switch {
		case c == '+' || c == '-':
			next = numExpSign
		case isDigit(c):
			next = numExpDigits
		}
	case numExpSign, numExpDigits:
		if isDigit(c) {
			next = numExpDigits
		}
	}
	if next >= 0 {
		if next == numDot || next == numExp {
			l.float = true
		}
		l.num = next
		l.buf = append(l.buf, c)
		return true, nil
	}
	if !l.endNumber() {
		return false, unexpectedErr(c, l.pos)
	}
	return false, nil
}

// endNumber emits the pending number, reporting false if it is incomplete.
func (l *Lexer) endNumber() bool {
	switch l.num {
	case numZero, numInt, numFrac, numExpDigits:
	default:
		return false
	}
	if l.float {
		l.finish(TFloat)
	} else {
		l.finish(TInteger)
	}
	return true
}

func (l *Lexer) finish(t TokenType) {
	tok := Token{Type: t, Pos: l.start, Bytes: slices.Clone(l.buf)}
	l.state = lexIdle
	l.buf = l.buf[:0]
	l.emit(tok)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isHex(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
