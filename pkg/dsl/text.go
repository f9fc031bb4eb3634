package dsl

import (
	"strings"

	"github.com/aretw0/decaytable/pkg/cst"
)

var keywords = map[cst.Kind]string{
	cst.KindDefine:     "Define",
	cst.KindAlias:      "Alias",
	cst.KindChargeConj: "ChargeConj",
	cst.KindModelAlias: "ModelAlias",
	cst.KindCopyDecay:  "CopyDecay",
	cst.KindCDecay:     "CDecay",
}

func writeStatement(sb *strings.Builder, n *cst.Node) {
	switch n.Kind {
	case cst.KindDecay:
		sb.WriteString("\nDecay " + n.Child(0).Value + "\n")
		for _, line := range n.Children[1:] {
			writeTokens(sb, line)
			sb.WriteString("\n")
		}
		sb.WriteString("Enddecay\n")
	case cst.KindGlobalPhotos:
		sb.WriteString(n.Child(0).Value + "\n")
	default:
		sb.WriteString(keywords[n.Kind])
		for _, c := range n.Children {
			sb.WriteString(" ")
			writeTokens(sb, c)
		}
		sb.WriteString("\n")
	}
}

// writeTokens writes the leaves of n separated by spaces; a model is
// terminated by ';'.
func writeTokens(sb *strings.Builder, n *cst.Node) {
	if n.Kind.IsLeaf() {
		sb.WriteString(n.Value)
		return
	}
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteString(" ")
		}
		writeTokens(sb, c)
	}
	if n.Kind == cst.KindModel {
		sb.WriteString(";")
	}
}
