package ports

import (
	"testing"

	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ParticleRecord is the expectation fed to RunParticleDBContract.
type ParticleRecord struct {
	Name  string
	PDGID int
	Anti  string
}

// RunParticleDBContract runs a suite of tests to verify that a ParticleDB implementation
// adheres to the defined interface contract. Every record must be known to db.
func RunParticleDBContract(t *testing.T, db ParticleDB, records []ParticleRecord) {
	t.Helper()
	require.NotEmpty(t, records, "contract needs at least one record")

	t.Run("NameToPDGID", func(t *testing.T) {
		for _, r := range records {
			id, err := db.NameToPDGID(r.Name)
			require.NoError(t, err, "lookup of %s", r.Name)
			assert.Equal(t, r.PDGID, id, "pdg id of %s", r.Name)
		}
	})

	t.Run("Invert", func(t *testing.T) {
		for _, r := range records {
			anti, err := db.Invert(r.Name)
			require.NoError(t, err, "inversion of %s", r.Name)
			assert.Equal(t, r.Anti, anti, "antiparticle of %s", r.Name)
		}
	})

	t.Run("Invert Is An Involution", func(t *testing.T) {
		for _, r := range records {
			anti, err := db.Invert(r.Name)
			require.NoError(t, err)
			back, err := db.Invert(anti)
			require.NoError(t, err, "inversion of %s", anti)
			assert.Equal(t, r.Name, back)
		}
	})

	t.Run("Self Conjugate", func(t *testing.T) {
		for _, r := range records {
			assert.Equal(t, r.Name == r.Anti, IsSelfConjugate(db, r.Name), "self-conjugate flag of %s", r.Name)
		}
	})

	t.Run("Unknown Particle", func(t *testing.T) {
		_, err := db.NameToPDGID("no-such-particle~")
		assert.ErrorIs(t, err, domain.ErrParticleNotFound)
		_, err = db.Invert("no-such-particle~")
		assert.ErrorIs(t, err, domain.ErrParticleNotFound)
		assert.False(t, IsSelfConjugate(db, "no-such-particle~"))
	})
}
