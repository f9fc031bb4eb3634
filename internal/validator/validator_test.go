package validator

import (
	"strings"
	"testing"

	"github.com/aretw0/decaytable/pkg/adapters/memory"
	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(t *testing.T, decays ...domain.Decay) *domain.Table {
	t.Helper()
	tb, err := domain.NewTable(decays)
	require.NoError(t, err)
	return tb
}

func decay(mother string, bf float64, daughters ...string) domain.Decay {
	return domain.Decay{Mother: mother, Lines: []domain.DecayLine{{BF: bf, Daughters: daughters, Model: "PHSP"}}}
}

func TestValidateTable(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		tb := table(t,
			decay("D0", 0.0124, "K_S0", "pi0"),
			decay("K_S0", 0.692, "pi+", "pi-"),
		)
		r := ValidateTable(tb, memory.Default())
		assert.Empty(t, r.Findings)
		assert.NoError(t, r.Err())
	})

	t.Run("Cycle", func(t *testing.T) {
		tb := table(t,
			decay("A", 1, "B", "c"),
			decay("B", 1, "A"),
			decay("X", 1, "X", "X"),
		)
		r := ValidateTable(tb, nil)
		errs := r.Errors()
		require.Len(t, errs, 2)
		assert.Equal(t, "decay cycle A -> B -> A", errs[0].Message)
		assert.Equal(t, "decay cycle X -> X", errs[1].Message)

		err := r.Err()
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "found 2 errors:"))
	})

	t.Run("Warnings", func(t *testing.T) {
		tb := table(t,
			domain.Decay{Mother: "D0", Lines: []domain.DecayLine{
				{BF: 0.75, Daughters: []string{"K-", "pi+"}},
				{BF: 0.5, Daughters: []string{"MyK", "pi+"}},
			}},
			decay("anti-D0", 1, "ChargeConj(MyK)", "pi-"),
			domain.Decay{Mother: "Empty"},
		)
		r := ValidateTable(tb, memory.Default())
		assert.NoError(t, r.Err())

		var msgs []string
		for _, f := range r.Findings {
			assert.Equal(t, SeverityWarning, f.Severity)
			msgs = append(msgs, f.Mother+": "+f.Message)
		}
		assert.ElementsMatch(t, []string{
			"D0: branching fractions sum to 1.25",
			"D0: unknown particle MyK",
			"Empty: no decay modes",
			"anti-D0: unresolved charge conjugate ChargeConj(MyK)",
		}, msgs)
	})

	t.Run("Empty Mode", func(t *testing.T) {
		r := ValidateTable(table(t, decay("A", 1)), nil)
		require.Len(t, r.Errors(), 1)
		assert.Equal(t, "decay mode with no daughters", r.Errors()[0].Message)
	})
}
