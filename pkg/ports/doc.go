/*
Package ports defines the driven ports (interfaces) of the decay-table resolver.

These interfaces decouple the resolution pipeline from the particle-property
database, so either the built-in catalogue or a YAML file
can back name inversion.

# Key Interfaces

  - ParticleDB: name -> PDG id lookups and particle -> antiparticle inversion.
*/
package ports
