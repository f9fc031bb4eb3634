package cst

import (
	"fmt"
	"strings"
)

// Kind identifies the grammatical role of a Node.
type Kind uint8

const (
	KindFile Kind = iota // Root of a parsed decay file

	// Statements
	KindDecay        // Decay <mother> <lines...> Enddecay
	KindDecayLine    // <bf> <particle>... [PHOTOS] <model> [<options>];
	KindDefine       // Define <name> <value>
	KindAlias        // Alias <name> <canonical>
	KindChargeConj   // ChargeConj <particle> <conjugate>
	KindModelAlias   // ModelAlias <name> <model> <options...>;
	KindCopyDecay    // CopyDecay <new> <source>
	KindCDecay       // CDecay <mother>
	KindGlobalPhotos // yesPhotos / noPhotos
	KindJetSetDef    // JetSetPar PARAM(N)=VALUE
	KindPythiaDef    // Pythia*Param MODULE:SETTING=VALUE
	KindLineshapePW  // SetLineshapePW <mother> <d1> <d2> <value>

	// Inner nodes
	KindModel        // model name or alias reference plus options
	KindModelOptions // ordered model parameter tokens

	// Leaves
	KindParticle   // particle name
	KindValue      // numeric literal
	KindLabel      // bare name (Define names, option labels, alias names)
	KindModelName  // a registered decay model
	KindModelLabel // a reference to a ModelAlias
	KindPhotos     // per-line PHOTOS flag
	KindYes
	KindNo
)

var kindNames = [...]string{
	KindFile:         "file",
	KindDecay:        "decay",
	KindDecayLine:    "decayline",
	KindDefine:       "define",
	KindAlias:        "alias",
	KindChargeConj:   "chargeconj",
	KindModelAlias:   "model_alias",
	KindCopyDecay:    "copydecay",
	KindCDecay:       "cdecay",
	KindGlobalPhotos: "global_photos",
	KindJetSetDef:    "jetset_def",
	KindPythiaDef:    "pythia_def",
	KindLineshapePW:  "setlspw",
	KindModel:        "model",
	KindModelOptions: "model_options",
	KindParticle:     "particle",
	KindValue:        "value",
	KindLabel:        "label",
	KindModelName:    "model_name",
	KindModelLabel:   "model_label",
	KindPhotos:       "photos",
	KindYes:          "yes",
	KindNo:           "no",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsLeaf reports whether nodes of this kind carry a token value instead of children.
func (k Kind) IsLeaf() bool {
	return k >= KindParticle
}

// Node is a concrete syntax tree node. Leaves carry Value; inner nodes carry Children.
type Node struct {
	Kind     Kind
	Value    string
	Children []*Node
	Line     int // 1-based source line, 0 when built programmatically
}

// Leaf creates a token node.
func Leaf(kind Kind, value string) *Node {
	return &Node{Kind: kind, Value: value}
}

// Tree creates an inner node.
func Tree(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Value: n.Value, Line: n.Line}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Find returns every node of the given kind in the subtree, in pre-order.
func (n *Node) Find(kind Kind) []*Node {
	var found []*Node
	n.Walk(func(c *Node) {
		if c.Kind == kind {
			found = append(found, c)
		}
	})
	return found
}

// Walk visits the subtree in pre-order.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Child returns the i-th child or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// String renders the subtree in a compact s-expression form, mainly for test failures.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n == nil {
		sb.WriteString("nil")
		return
	}
	if n.Kind.IsLeaf() {
		fmt.Fprintf(sb, "%s:%q", n.Kind, n.Value)
		return
	}
	sb.WriteString("(")
	sb.WriteString(n.Kind.String())
	for _, c := range n.Children {
		sb.WriteString(" ")
		c.write(sb)
	}
	sb.WriteString(")")
}
