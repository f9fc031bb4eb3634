/*
Package domain contains the core types of the decay table.

It is kept free of I/O and parsing concerns: everything here is plain data
shared by the resolver, the chain builder and the adapters.

# Key Entities

  - DecayLine: one decay mode (branching fraction, daughters, model and parameters).
  - Decay: all lines declared for a mother particle.
  - Table: the frozen mother -> lines mapping produced by a parse.
  - Diagnostic: a recoverable finding emitted while resolving a file.
*/
package domain
