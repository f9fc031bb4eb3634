package cst_test

import (
	"testing"

	"github.com/aretw0/decaytable/internal/compiler"
	"github.com/aretw0/decaytable/pkg/cst"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func ksDecay() *cst.Node {
	return cst.Tree(cst.KindFile,
		cst.Tree(cst.KindDecay,
			cst.Leaf(cst.KindParticle, "K_S0"),
			cst.Tree(cst.KindDecayLine,
				cst.Leaf(cst.KindValue, "0.692"),
				cst.Leaf(cst.KindParticle, "pi+"),
				cst.Leaf(cst.KindParticle, "pi-"),
				cst.Tree(cst.KindModel, cst.Leaf(cst.KindModelName, "PHSP")),
			),
		),
	)
}

func TestClone(t *testing.T) {
	orig := ksDecay()
	clone := orig.Clone()
	if diff := cmp.Diff(orig, clone); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	clone.Child(0).Child(0).Value = "K_L0"
	if got := orig.Child(0).Child(0).Value; got != "K_S0" {
		t.Errorf("mutating the clone changed the original mother to %q", got)
	}
	if (*cst.Node)(nil).Clone() != nil {
		t.Error("nil clone must be nil")
	}
}

func TestFindAndChild(t *testing.T) {
	root := ksDecay()

	var names []string
	for _, n := range root.Find(cst.KindParticle) {
		names = append(names, n.Value)
	}
	if diff := cmp.Diff([]string{"K_S0", "pi+", "pi-"}, names); diff != "" {
		t.Errorf("particles (-want +got):\n%s", diff)
	}
	if root.Child(5) != nil || root.Child(-1) != nil {
		t.Error("out of range children must be nil")
	}
}

func TestParsedTreeMatchesBuiltTree(t *testing.T) {
	parsed, err := compiler.NewParser(nil).Parse([]byte("Decay K_S0\n0.692 pi+ pi- PHSP;\nEnddecay\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	opts := cmp.Options{cmpopts.IgnoreFields(cst.Node{}, "Line"), cmpopts.EquateEmpty()}
	if diff := cmp.Diff(ksDecay(), parsed, opts); diff != "" {
		t.Errorf("parsed tree (-built +parsed):\n%s", diff)
	}
}
