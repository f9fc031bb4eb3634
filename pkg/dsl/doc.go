/*
Package dsl provides a Go DSL for programmatically constructing decay files.

It builds the same syntax tree the text parser produces, so generated decays go
through the full resolution pipeline (model aliases, definitions, copies and
charge conjugation). Tests use it to assemble fixtures, and Builder.Text writes
the result back out as .dec text.

Example usage:

	b := dsl.New()
	b.Define("dm", 0.5)
	b.ModelAlias("MyVSS", "VSS", "dm")

	b.Decay("D*+").
		Mode(0.677, "D0", "pi+").Alias("MyVSS").
		Mode(0.307, "D+", "pi0").Model("VSS")
	b.CDecay("D*-")

	root, err := b.Build()   // *cst.Node, see decaytable.FromTree
	text, err := b.Text()    // decay-file source
*/
package dsl
