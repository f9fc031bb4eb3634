// Package dto holds the wire representations shared by the HTTP and MCP adapters.
package dto

import (
	"github.com/aretw0/decaytable"
	"github.com/aretw0/decaytable/pkg/chain"
	"github.com/aretw0/decaytable/pkg/domain"
)

// DecayMode is the JSON form of one decay mode.
type DecayMode struct {
	BF          float64  `json:"bf" jsonschema_description:"Branching fraction"`
	Daughters   []string `json:"daughters" jsonschema_description:"Decay products in file order"`
	Model       string   `json:"model" jsonschema_description:"Decay model name"`
	ModelParams []any    `json:"model_params" jsonschema_description:"Model parameters, numbers or symbols"`
}

// Chain is the JSON form of a decay chain.
type Chain struct {
	Mother string      `json:"mother"`
	Modes  []ChainMode `json:"modes"`
}

// ChainMode is one mode of a Chain.
type ChainMode struct {
	BF          float64   `json:"bf"`
	Model       string    `json:"model"`
	ModelParams []any     `json:"model_params"`
	Products    []Product `json:"products"`
}

// Product is a daughter, with its own decay when it was expanded.
type Product struct {
	Name  string `json:"name"`
	Decay *Chain `json:"decay,omitempty"`
}

// FinalState is the JSON form of an exclusive final state.
type FinalState struct {
	BF        float64  `json:"bf" jsonschema_description:"Summed branching fraction"`
	Daughters []string `json:"daughters" jsonschema_description:"Final-state particles, sorted"`
}

// Flat is the JSON form of a flattened chain.
type Flat struct {
	Mother     string   `json:"mother" jsonschema_description:"The decaying particle"`
	BF         float64  `json:"bf" jsonschema_description:"Product of the fractions along the chain"`
	Daughters  []string `json:"daughters" jsonschema_description:"Final particles, sorted"`
	Model      string   `json:"model" jsonschema_description:"Model of the top-level decay"`
	Descriptor string   `json:"descriptor" jsonschema_description:"Text form, e.g. D0 -> K_S0 gamma gamma"`
}

// Params converts model parameters to plain JSON values.
func Params(params []domain.Param) []any {
	out := make([]any, len(params))
	for i, p := range params {
		out[i] = p.Any()
	}
	return out
}

// Modes converts displayed mode rows.
func Modes(rows []decaytable.ModeRow) []DecayMode {
	out := make([]DecayMode, len(rows))
	for i, r := range rows {
		out[i] = DecayMode{BF: r.BF, Daughters: r.Daughters, Model: r.Model, ModelParams: Params(r.ModelParams)}
	}
	return out
}

// FromChain converts a decay chain, sub-decays included.
func FromChain(c *chain.Chain) *Chain {
	out := &Chain{Mother: c.Mother, Modes: make([]ChainMode, len(c.Modes))}
	for i, m := range c.Modes {
		cm := ChainMode{BF: m.BF, Model: m.Model, ModelParams: Params(m.ModelParams)}
		for _, p := range m.Products {
			prod := Product{Name: p.Name}
			if p.Sub != nil {
				prod.Decay = FromChain(p.Sub)
			}
			cm.Products = append(cm.Products, prod)
		}
		out.Modes[i] = cm
	}
	return out
}

// FinalStates converts enumerated final states.
func FinalStates(states []chain.FinalState) []FinalState {
	out := make([]FinalState, len(states))
	for i, fs := range states {
		out[i] = FinalState{BF: fs.BF, Daughters: fs.Daughters.List()}
	}
	return out
}

// Flatten collapses c with chain.Flatten and converts the result.
func Flatten(c *chain.Chain, stable ...string) (*Flat, error) {
	flat, err := chain.Flatten(c, stable...)
	if err != nil {
		return nil, err
	}
	bf, err := flat.BF()
	if err != nil {
		return nil, err
	}
	desc, err := chain.Descriptor(flat, chain.DefaultOuter, chain.DefaultInner)
	if err != nil {
		return nil, err
	}
	m := flat.Modes[0]
	return &Flat{Mother: flat.Mother, BF: bf, Daughters: m.Names(), Model: m.Model, Descriptor: desc}, nil
}
