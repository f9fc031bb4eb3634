package compiler

// Lexer splits decay-file text into tokens. Newlines are not significant;
// '#' starts a comment that runs to the end of the line.
type Lexer struct {
	src  []byte
	pos  int
	line int
	col  int
}

// NewLexer creates a lexer over src.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Tokenize returns every token up to and including EOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// Next returns the next token.
func (l *Lexer) Next() Token {
	l.skipBlank()
	start := Position{Line: l.line, Column: l.col}
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Position: start}
	}
	if l.src[l.pos] == ';' {
		l.advance()
		return Token{Type: SEMICOLON, Text: ";", Position: start}
	}
	begin := l.pos
	for l.pos < len(l.src) && !isSpace(l.src[l.pos]) && l.src[l.pos] != ';' && l.src[l.pos] != '#' {
		l.advance()
	}
	return Token{Type: WORD, Text: string(l.src[begin:l.pos]), Position: start}
}

func (l *Lexer) skipBlank() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case isSpace(c):
			l.advance()
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) advance() {
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}
