package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/decaytable/pkg/domain"
)

// Record describes one particle known to the in-memory database.
type Record struct {
	Name          string
	PDGID         int
	SelfConjugate bool
}

// DB implements ports.ParticleDB using in-memory maps.
// Safe for concurrent use.
type DB struct {
	mu     sync.RWMutex
	byName map[string]Record
	byID   map[int]string
}

// NewDB creates a database from the given records.
func NewDB(records ...Record) (*DB, error) {
	db := &DB{
		byName: make(map[string]Record, len(records)),
		byID:   make(map[int]string, len(records)),
	}
	for _, r := range records {
		if err := db.Add(r); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Default returns a database seeded with the built-in EvtGen catalogue.
func Default() *DB {
	db, err := NewDB(Catalogue()...)
	if err != nil {
		// The catalogue is static; a failure here is a programming error.
		panic(err)
	}
	return db
}

// Add registers a record. Names and ids must be unique.
func (db *DB) Add(r Record) error {
	if r.Name == "" {
		return fmt.Errorf("particle record missing name")
	}
	if r.PDGID == 0 {
		return fmt.Errorf("particle %s: pdg id must be non-zero", r.Name)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.byName[r.Name]; ok {
		return fmt.Errorf("particle %s already registered", r.Name)
	}
	if other, ok := db.byID[r.PDGID]; ok {
		return fmt.Errorf("pdg id %d already registered as %s", r.PDGID, other)
	}
	db.byName[r.Name] = r
	db.byID[r.PDGID] = r.Name
	return nil
}

// NameToPDGID returns the PDG id of name.
func (db *DB) NameToPDGID(name string) (int, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	r, ok := db.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrParticleNotFound, name)
	}
	return r.PDGID, nil
}

// Invert returns the antiparticle name, looked up through the opposite PDG id.
func (db *DB) Invert(name string) (string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	r, ok := db.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrParticleNotFound, name)
	}
	if r.SelfConjugate {
		return r.Name, nil
	}
	anti, ok := db.byID[-r.PDGID]
	if !ok {
		return "", fmt.Errorf("%w: antiparticle of %s (pdg id %d)", domain.ErrParticleNotFound, name, -r.PDGID)
	}
	return anti, nil
}

// Names returns all registered names, sorted.
func (db *DB) Names() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	names := make([]string, 0, len(db.byName))
	for n := range db.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
