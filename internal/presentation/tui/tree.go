package tui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/aretw0/decaytable/pkg/chain"
	"github.com/aretw0/decaytable/pkg/domain"
)

// WriteTree writes c like chain.PrintTree, coloring particles by role and
// annotating each mode with its branching fraction and model.
func WriteTree(w io.Writer, c *chain.Chain, p Palette) error {
	bw := bufio.NewWriter(w)
	for _, l := range chain.TreeLines(c) {
		var name string
		switch {
		case l.Depth == 0:
			name = p.Mother(l.Name)
		case l.Mode != nil:
			name = p.Decaying(l.Name)
		default:
			name = p.Final(l.Name)
		}
		bw.WriteString(p.Faint(l.Prefix))
		bw.WriteString(name)
		if l.Mode != nil {
			note := fmt.Sprintf("[%g %s", l.Mode.BF, l.Mode.Model)
			if len(l.Mode.ModelParams) > 0 {
				note += " " + domain.FormatParams(l.Mode.ModelParams)
			}
			bw.WriteString(" " + p.Faint(note+"]"))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
