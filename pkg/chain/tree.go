package chain

import (
	"bufio"
	"io"
)

const (
	treeArrow = "+--> "
	treeBar   = "|    "
	treeGap   = "     "
)

// TreeLine is one line of a printed tree.
type TreeLine struct {
	Prefix string
	Name   string
	Depth  int

	// Mode is set on lines that open a decay mode of Name.
	Mode *Mode
}

// TreeLines lays c out as PrintTree does. A particle with several modes
// gets one line per mode.
func TreeLines(c *Chain) []TreeLine {
	var out []TreeLine
	treeLines(&out, c, "", "", 0)
	return out
}

func treeLines(out *[]TreeLine, c *Chain, head, body string, depth int) {
	if len(c.Modes) == 0 {
		*out = append(*out, TreeLine{Prefix: head, Name: c.Mother, Depth: depth})
		return
	}
	for i := range c.Modes {
		m := &c.Modes[i]
		*out = append(*out, TreeLine{Prefix: head, Name: c.Mother, Depth: depth, Mode: m})
		for j, p := range m.Products {
			childHead := body + treeArrow
			childBody := body + treeBar
			if j == len(m.Products)-1 {
				childBody = body + treeGap
			}
			if p.IsLeaf() {
				*out = append(*out, TreeLine{Prefix: childHead, Name: p.Name, Depth: depth + 1})
				continue
			}
			treeLines(out, p.Sub, childHead, childBody, depth+1)
		}
	}
}

// PrintTree writes c as an indented tree:
//
//	D0
//	+--> K_S0
//	|    +--> pi+
//	|    +--> pi-
//	+--> pi0
func PrintTree(w io.Writer, c *Chain) error {
	bw := bufio.NewWriter(w)
	for _, l := range TreeLines(c) {
		bw.WriteString(l.Prefix)
		bw.WriteString(l.Name)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
