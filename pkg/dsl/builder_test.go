package dsl_test

import (
	"testing"

	"github.com/aretw0/decaytable"
	"github.com/aretw0/decaytable/internal/compiler"
	"github.com/aretw0/decaytable/pkg/adapters/memory"
	"github.com/aretw0/decaytable/pkg/dsl"
	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dstar() *dsl.Builder {
	b := dsl.New()
	b.Define("dm", 0.5)
	b.ModelAlias("MyVSS", "VSS", "dm")
	b.ChargeConj("MyD0", "Myanti-D0")
	b.Photos(true)

	b.Decay("D*+").
		Mode(0.677, "D0", "pi+").Alias("MyVSS").
		Mode(0.307, "D+", "pi0").Model("VSS")
	b.CDecay("D*-")

	b.Decay("D0").
		Mode(0.0124, "K_S0", "pi0").Photos().Model("PHSP").
		Mode(0.0389, "K-", "pi+").Model("D_DALITZ", 1, 2.5, "tag")
	b.CopyDecay("MyD0", "D0")
	return b
}

func TestBuilder_Text(t *testing.T) {
	text, err := dstar().Text()
	require.NoError(t, err)
	assert.Equal(t, `Define dm 0.5
ModelAlias MyVSS VSS dm;
ChargeConj MyD0 Myanti-D0
yesPhotos

Decay D*+
0.677 D0 pi+ MyVSS;
0.307 D+ pi0 VSS;
Enddecay
CDecay D*-

Decay D0
0.0124 K_S0 pi0 PHOTOS PHSP;
0.0389 K- pi+ D_DALITZ 1 2.5 tag;
Enddecay
CopyDecay MyD0 D0
End
`, text)
}

func TestBuilder_MatchesParser(t *testing.T) {
	b := dstar()
	root, err := b.Build()
	require.NoError(t, err)
	text, err := b.Text()
	require.NoError(t, err)

	parsed, err := compiler.NewParser(nil).Parse([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, parsed.String(), root.String())
}

func TestBuilder_DecayIsReused(t *testing.T) {
	b := dsl.New()
	b.Decay("K_S0").Mode(0.692, "pi+", "pi-").Model("PHSP")
	b.Decay("K_S0").Mode(0.307, "pi0", "pi0").Model("PHSP")

	root, err := b.Build()
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Len(t, root.Children[0].Children, 3, "mother plus two lines")
}

func TestBuilder_Errors(t *testing.T) {
	b := dsl.New()
	b.Decay("D0").Mode(0.5, "K-", "pi+")
	_, err := b.Build()
	assert.ErrorContains(t, err, "mode 1 has no model")

	b = dsl.New()
	b.Decay("D0").Mode(-0.5, "K-", "pi+").Model("PHSP")
	_, err = b.Text()
	assert.ErrorContains(t, err, "negative branching fraction")
}

func TestBuilder_Resolves(t *testing.T) {
	root, err := dstar().Build()
	require.NoError(t, err)

	p := decaytable.FromTree(root, decaytable.WithParticleDB(memory.Default()))
	require.NoError(t, p.Parse())

	lines, err := p.DecayModeDetails("D*+")
	require.NoError(t, err)
	assert.Equal(t, "VSS", lines[0].Model)
	assert.Equal(t, []domain.Param{domain.Number(0.5)}, lines[0].ModelParams)
	assert.True(t, lines[0].UsesRadiativeCorrection)

	names, err := p.ListDecayMotherNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"D*+", "D0", "MyD0", "D*-"}, names)
}
