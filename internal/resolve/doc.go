/*
Package resolve turns the statement tables of a decay file into the final,
duplicate-free list of decays.

The stages run strictly in this order, each one consuming the output of the
previous:

 1. ExpandModelAliases: replace ModelAlias references with the aliased model and options.
 2. SubstituteParameters: coerce numerals and substitute Define values.
 3. CopyDecays: materialize CopyDecay directives.
 4. ConjugateDecays: synthesize CDecay requests.
 5. RemoveDuplicates: keep the first Decay block of every mother.

Fatal problems are returned as errors. Everything else is recorded as a
domain.Diagnostic and processing continues.
*/
package resolve
