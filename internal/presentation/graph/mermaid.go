package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/decaytable/pkg/chain"
	"github.com/aretw0/decaytable/pkg/domain"
)

// Overlay marks particles to highlight on the graph.
type Overlay struct {
	Stable []string
}

// GenerateMermaid produces a Mermaid flowchart of a decay chain.
// It applies semantic styling:
// - Root mother: ((Circle))
// - Decaying particle: [[Subroutine]]
// - Final-state particle: [Rectangle]
// Every occurrence of a particle gets its own node. Edges carry the
// branching fraction and model of the mode they belong to.
func GenerateMermaid(c *chain.Chain, overlay *Overlay) string {
	g := &mermaid{}
	g.sb.WriteString("graph TD\n")
	root := g.node(c.Mother, "((", "))")
	g.chain(c, root)

	if overlay != nil && len(overlay.Stable) > 0 {
		stable := make(map[string]bool, len(overlay.Stable))
		for _, s := range overlay.Stable {
			stable[s] = true
		}
		var ids []string
		for _, n := range g.nodes {
			if stable[n.name] {
				ids = append(ids, n.id)
			}
		}
		if len(ids) > 0 {
			g.sb.WriteString("\n    %% Overlay Styles\n")
			g.sb.WriteString("    classDef stable fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
			fmt.Fprintf(&g.sb, "    class %s stable;\n", strings.Join(ids, ","))
		}
	}
	return g.sb.String()
}

type mermaidNode struct {
	id, name string
}

type mermaid struct {
	sb    strings.Builder
	nodes []mermaidNode
}

func (g *mermaid) node(name, opener, closer string) string {
	id := fmt.Sprintf("n%d", len(g.nodes))
	g.nodes = append(g.nodes, mermaidNode{id: id, name: name})
	fmt.Fprintf(&g.sb, "    %s%s\"%s\"%s\n", id, opener, escapeLabel(name), closer)
	return id
}

func (g *mermaid) chain(c *chain.Chain, from string) {
	for _, m := range c.Modes {
		label := fmt.Sprintf("%g %s", m.BF, m.Model)
		if len(m.ModelParams) > 0 {
			label += " " + domain.FormatParams(m.ModelParams)
		}
		for _, p := range m.Products {
			opener, closer := "[", "]"
			if !p.IsLeaf() {
				opener, closer = "[[", "]]"
			}
			to := g.node(p.Name, opener, closer)
			fmt.Fprintf(&g.sb, "    %s -- \"%s\" --> %s\n", from, escapeLabel(strings.TrimSpace(label)), to)
			if !p.IsLeaf() {
				g.chain(p.Sub, to)
			}
		}
	}
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
