/*
Package decaytable reads EvtGen-style decay files (.dec) and resolves them into a queryable decay table.

A decay file describes how particles decay: each Decay block lists the modes of one mother with a branching fraction, the daughters, and the model used to generate them. The file may also declare numeric definitions, model aliases, copies of other decays and charge-conjugate shorthand (CDecay). Parsing runs these through a fixed pipeline and freezes the result:

	compile -> extract -> model_alias -> parameters -> copy_decay -> charge_conj -> duplicates -> freeze

Recoverable problems (a missing copy source, a duplicated Decay block, a CDecay on a self-conjugate particle) do not stop the pipeline; they are logged and returned by Parser.Diagnostics. Anything else aborts Parse with an error.

# Usage

	p, err := decaytable.New([]string{"DECAY.DEC", "user.dec"},
		decaytable.WithParticleDB(memory.Default()),
		decaytable.WithLogger(slog.Default()),
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}

	modes, _ := p.ListDecayModes("D0")
	c, _ := p.BuildDecayChains("D*+", "pi0")
	flat, _ := chain.Flatten(c)
	s, _ := chain.Descriptor(flat, chain.DefaultOuter, chain.DefaultInner)

Chains are built on demand and never cached; the table is read-only after Parse, so queries may run concurrently.
*/
package decaytable
