package compiler

import "fmt"

// SyntaxError reports decay-file text that cannot be turned into a syntax tree.
type SyntaxError struct {
	Pos Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Pos, e.Msg)
}
