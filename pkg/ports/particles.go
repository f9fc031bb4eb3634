package ports

// ParticleDB is the particle-property database seen by the resolver.
// Implementations return domain.ErrParticleNotFound (possibly wrapped) for unknown names.
type ParticleDB interface {
	// NameToPDGID returns the PDG Monte Carlo id of a particle name.
	NameToPDGID(name string) (int, error)

	// Invert returns the antiparticle name. Self-conjugate particles invert to themselves.
	Invert(name string) (string, error)
}

// IsSelfConjugate reports whether db knows name as its own antiparticle.
// Unknown particles are never self-conjugate.
func IsSelfConjugate(db ParticleDB, name string) bool {
	if db == nil {
		return false
	}
	anti, err := db.Invert(name)
	return err == nil && anti == name
}
