package decaytable_test

import (
	"fmt"
	"log"
	"os"

	"github.com/aretw0/decaytable"
	"github.com/aretw0/decaytable/pkg/chain"
)

const d0Dec = `
Decay D0
0.0124 K_S0 pi0 PHSP;
Enddecay
Decay K_S0
0.692 pi+ pi- PHSP;
0.307 pi0 pi0 PHSP;
Enddecay
Decay pi0
0.98823 gamma gamma PHSP;
Enddecay
`

func ExampleParser_PrintDecayModes() {
	p := decaytable.FromString(d0Dec)
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}

	if err := p.PrintDecayModes(os.Stdout, "K_S0", decaytable.PrintOptions{}); err != nil {
		log.Fatal(err)
	}
	// Output:
	//        0.692 : pi+  pi-
	//        0.307 : pi0  pi0
}

// ExampleParser_BuildDecayChains expands D0 with K_S0 restricted to its
// charged mode, then collapses the chain into a single final state.
func ExampleParser_BuildDecayChains() {
	p := decaytable.FromString(d0Dec)
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}

	c, err := p.BuildDecayChains("D0")
	if err != nil {
		log.Fatal(err)
	}
	// Keep the first K_S0 mode only so the chain can be flattened.
	ks := c.Modes[0].Products[0].Sub
	ks.Modes = ks.Modes[:1]

	s, _ := chain.Descriptor(c, chain.DefaultOuter, chain.DefaultInner)
	fmt.Println(s)

	flat, err := chain.Flatten(c)
	if err != nil {
		log.Fatal(err)
	}
	bf, _ := flat.BF()
	s, _ = chain.Descriptor(flat, "", "")
	fmt.Printf("%s (bf=%.7f)\n", s, bf)

	if err := chain.PrintTree(os.Stdout, c); err != nil {
		log.Fatal(err)
	}
	// Output:
	// D0 -> (K_S0 -> pi+ pi-) (pi0 -> gamma gamma)
	// D0 -> gamma gamma pi+ pi- (bf=0.0084798)
	// D0
	// +--> K_S0
	// |    +--> pi+
	// |    +--> pi-
	// +--> pi0
	//      +--> gamma
	//      +--> gamma
}
