// Package file loads particle catalogues from YAML files.
//
// A catalogue lists particles by EvtGen name and PDG id. An entry may name its
// antiparticle, which is registered with the negated id:
//
//	builtin: true        # start from the built-in catalogue
//	particles:
//	  - name: D0
//	    pdgid: 421
//	    anti: anti-D0
//	  - name: pi0
//	    pdgid: "111"
//	    self_conjugate: true
package file

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/decaytable/pkg/adapters/memory"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

type document struct {
	Builtin   bool             `yaml:"builtin"`
	Particles []map[string]any `yaml:"particles"`
}

type entry struct {
	Name          string `mapstructure:"name"`
	PDGID         int    `mapstructure:"pdgid"`
	SelfConjugate bool   `mapstructure:"self_conjugate"`
	Anti          string `mapstructure:"anti"`
}

// Load reads the catalogue at path into a new database.
func Load(path string) (*memory.DB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read particle catalogue: %w", err)
	}
	db, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}

// Decode reads a YAML catalogue from r.
func Decode(r io.Reader) (*memory.DB, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse particle catalogue: %w", err)
	}

	var base []memory.Record
	if doc.Builtin {
		base = memory.Catalogue()
	}
	db, err := memory.NewDB(base...)
	if err != nil {
		return nil, err
	}

	for i, raw := range doc.Particles {
		records, err := decodeEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		for _, rec := range records {
			if err := db.Add(rec); err != nil {
				return nil, fmt.Errorf("particle %d: %w", i, err)
			}
		}
	}
	return db, nil
}

// decodeEntry accepts loosely typed YAML (ids and flags given as strings).
func decodeEntry(raw map[string]any) ([]memory.Record, error) {
	var e entry
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &e,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode particle: %w", err)
	}

	if e.SelfConjugate && e.Anti != "" && e.Anti != e.Name {
		return nil, fmt.Errorf("%s is self-conjugate but names antiparticle %s", e.Name, e.Anti)
	}
	selfConj := e.SelfConjugate || (e.Anti != "" && e.Anti == e.Name)
	records := []memory.Record{{Name: e.Name, PDGID: e.PDGID, SelfConjugate: selfConj}}
	if e.Anti != "" && e.Anti != e.Name {
		records = append(records, memory.Record{Name: e.Anti, PDGID: -e.PDGID})
	}
	return records, nil
}
