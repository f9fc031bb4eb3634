package compiler

import "fmt"

// TokenType identifies lexical tokens of a decay file.
type TokenType int

const (
	EOF       TokenType = iota
	WORD                // any run of characters other than whitespace, ';' and '#'
	SEMICOLON           // ;
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WORD:
		return "WORD"
	case SEMICOLON:
		return "';'"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Position is a 1-based source location.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexeme.
type Token struct {
	Type     TokenType
	Text     string
	Position Position
}

func (t Token) String() string {
	if t.Type == WORD {
		return fmt.Sprintf("%q", t.Text)
	}
	return t.Type.String()
}
