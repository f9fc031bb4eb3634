package resolve_test

import (
	"testing"

	"github.com/aretw0/decaytable/internal/extract"
	"github.com/aretw0/decaytable/internal/resolve"
	"github.com/aretw0/decaytable/pkg/adapters/memory"
	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decay(mother string, daughters ...string) domain.Decay {
	return domain.Decay{Mother: mother, Lines: []domain.DecayLine{
		{BF: 1, Daughters: daughters, Model: "PHSP"},
	}}
}

func TestConjugateDecays_ParticleDB(t *testing.T) {
	decays := []domain.Decay{decay("D0", "K-", "pi+", "pi0")}
	var diags domain.Diagnostics

	out := resolve.ConjugateDecays(decays, []string{"anti-D0"}, resolve.Conjugator{DB: memory.Default()}, &diags)

	require.Len(t, out, 2)
	assert.Empty(t, diags)
	assert.Equal(t, "anti-D0", out[1].Mother)
	assert.Equal(t, []string{"K+", "pi-", "pi0"}, out[1].Lines[0].Daughters)
	assert.Equal(t, []string{"K-", "pi+", "pi0"}, out[0].Lines[0].Daughters, "source decay untouched")
}

func TestConjugateDecays_PairTable(t *testing.T) {
	tests := []struct {
		name  string
		pairs [][2]string
	}{
		{"Declared Forward", [][2]string{{"MyB0", "Myanti-B0"}, {"MyD+", "MyD-"}}},
		{"Declared Reversed", [][2]string{{"Myanti-B0", "MyB0"}, {"MyD-", "MyD+"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs := extract.NewPairs()
			for _, p := range tt.pairs {
				pairs.Add(p[0], p[1])
			}
			decays := []domain.Decay{decay("MyB0", "MyD-", "pi+")}
			var diags domain.Diagnostics

			out := resolve.ConjugateDecays(decays, []string{"Myanti-B0"},
				resolve.Conjugator{Pairs: pairs, DB: memory.Default()}, &diags)

			require.Len(t, out, 2)
			assert.Empty(t, diags)
			assert.Equal(t, "Myanti-B0", out[1].Mother)
			assert.Equal(t, []string{"MyD+", "pi-"}, out[1].Lines[0].Daughters)
		})
	}
}

func TestConjugateDecays_Placeholder(t *testing.T) {
	pairs := extract.NewPairs()
	pairs.Add("MyD0", "Myanti-D0")
	decays := []domain.Decay{decay("MyD0", "MyK*0", "pi0", "MyK*0")}
	var diags domain.Diagnostics

	out := resolve.ConjugateDecays(decays, []string{"Myanti-D0"},
		resolve.Conjugator{Pairs: pairs, DB: memory.Default()}, &diags)

	require.Len(t, out, 2)
	assert.Equal(t, []string{"ChargeConj(MyK*0)", "pi0", "ChargeConj(MyK*0)"}, out[1].Lines[0].Daughters)
}

func TestConjugateDecays_NoDatabase(t *testing.T) {
	decays := []domain.Decay{decay("ChargeConj(X)", "a", "b")}
	var diags domain.Diagnostics

	out := resolve.ConjugateDecays(decays, []string{"X"}, resolve.Conjugator{}, &diags)

	require.Len(t, out, 2, "the source of X falls back to the placeholder name")
	assert.Equal(t, "X", out[1].Mother)
	assert.Equal(t, []string{"ChargeConj(a)", "ChargeConj(b)"}, out[1].Lines[0].Daughters)
}

func TestConjugateDecays_SourceNotFound(t *testing.T) {
	var diags domain.Diagnostics
	out := resolve.ConjugateDecays(nil, []string{"anti-B0"}, resolve.Conjugator{DB: memory.Default()}, &diags)

	assert.Empty(t, out)
	require.Len(t, diags, 1)
	assert.Equal(t, domain.DiagSourceNotFound, diags[0].Kind)
	assert.Equal(t, []string{"anti-B0"}, diags[0].Names)
}

func TestConjugateDecays_Shadowed(t *testing.T) {
	decays := []domain.Decay{decay("D0", "K-", "pi+"), decay("anti-D0", "K+", "pi-", "pi0")}
	var diags domain.Diagnostics

	out := resolve.ConjugateDecays(decays, []string{"anti-D0"}, resolve.Conjugator{DB: memory.Default()}, &diags)

	require.Len(t, out, 2)
	assert.Equal(t, []string{"K+", "pi-", "pi0"}, out[1].Lines[0].Daughters)
	require.Len(t, diags, 1)
	assert.Equal(t, domain.DiagCDecayShadowed, diags[0].Kind)
}

func TestConjugateDecays_SelfConjugateGuard(t *testing.T) {
	db, err := memory.NewDB(
		memory.Record{Name: "X0", PDGID: 9000111, SelfConjugate: true},
		memory.Record{Name: "pi+", PDGID: 211},
		memory.Record{Name: "pi-", PDGID: -211},
	)
	require.NoError(t, err)

	pairs := extract.NewPairs()
	pairs.Add("X0", "MyX0")
	decays := []domain.Decay{decay("X0", "pi+", "pi-")}
	var diags domain.Diagnostics

	out := resolve.ConjugateDecays(decays, []string{"MyX0"}, resolve.Conjugator{Pairs: pairs, DB: db}, &diags)

	assert.Len(t, out, 1, "no entry is inserted for a self-conjugate source")
	require.Len(t, diags, 1)
	assert.Equal(t, domain.DiagSelfConjugateRequest, diags[0].Kind)
	assert.Equal(t, []string{"MyX0", "X0"}, diags[0].Names)
}

func TestConjugator_MemoizesWithinOneDecay(t *testing.T) {
	pairs := extract.NewPairs()
	pairs.Add("MyB0", "Myanti-B0")
	src := domain.Decay{Mother: "MyB0", Lines: []domain.DecayLine{
		{BF: 0.5, Daughters: []string{"MyB0", "gamma"}, Model: "PHSP"},
		{BF: 0.5, Daughters: []string{"Unknown", "Unknown"}, Model: "PHSP"},
	}}

	out := resolve.Conjugator{Pairs: pairs, DB: memory.Default()}.Conjugate(src, "Myanti-B0")

	assert.Equal(t, "Myanti-B0", out.Mother)
	assert.Equal(t, []string{"Myanti-B0", "gamma"}, out.Lines[0].Daughters)
	assert.Equal(t, []string{"ChargeConj(Unknown)", "ChargeConj(Unknown)"}, out.Lines[1].Daughters)
}
