package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/decaytable/internal/presentation/graph"
	"github.com/aretw0/decaytable/pkg/chain"
	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d0Chain(t *testing.T) *chain.Chain {
	t.Helper()
	table, err := domain.NewTable([]domain.Decay{
		{Mother: "D0", Lines: []domain.DecayLine{{BF: 0.0124, Daughters: []string{"K_S0", "pi0"}, Model: "PHSP"}}},
		{Mother: "K_S0", Lines: []domain.DecayLine{{BF: 0.692, Daughters: []string{"pi+", "pi-"}, Model: "PHSP"}}},
	})
	require.NoError(t, err)
	c, err := chain.Build(table, "D0")
	require.NoError(t, err)
	return c
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Node Shapes",
			contains: []string{
				"graph TD\n",
				"n0((\"D0\"))",
				"n1[[\"K_S0\"]]",
				"n2[\"pi+\"]",
				"n4[\"pi0\"]",
			},
		},
		{
			name: "Edges Carry Mode",
			contains: []string{
				"n0 -- \"0.0124 PHSP\" --> n1",
				"n1 -- \"0.692 PHSP\" --> n2",
				"n1 -- \"0.692 PHSP\" --> n3",
			},
		},
		{
			name:    "Stable Overlay",
			overlay: &graph.Overlay{Stable: []string{"pi0", "pi+"}},
			contains: []string{
				"classDef stable",
				"class n2,n4 stable;",
			},
		},
		{
			name:     "No Overlay For Unknown Names",
			overlay:  &graph.Overlay{Stable: []string{"B0"}},
			excludes: []string{"classDef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(d0Chain(t), tt.overlay)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestGenerateMermaid_EscapesQuotes(t *testing.T) {
	c := &chain.Chain{Mother: `X"`, Modes: []chain.Mode{{BF: 1, Model: "PHSP", Products: []chain.Product{{Name: "a"}}}}}
	out := graph.GenerateMermaid(c, nil)
	assert.Contains(t, out, `n0(("X'"))`)
	assert.Equal(t, 1, strings.Count(out, "-->"))
}
