/*
Package chain builds and transforms nested decay chains from a resolved decay table.

A Chain is computed per query and never cached. Nothing in this package
mutates the table it reads from.

	c, err := chain.Build(table, "D*+", "K_S0")
	flat, err := chain.Flatten(c)
	fmt.Println(chain.Descriptor(c, "", ""))
*/
package chain
