package token

import "fmt"

// Pos is a position in a byte stream. Line and Col are 0-based, Col counts
// bytes.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Offset, p.Line, p.Col)
}

func (p *Pos) advance(c byte) {
	p.Offset++
	if c == '\n' {
		p.Line++
		p.Col = 0
		return
	}
	p.Col++
}
