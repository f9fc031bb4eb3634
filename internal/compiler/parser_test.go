package compiler_test

import (
	"errors"
	"testing"

	"github.com/aretw0/decaytable/internal/compiler"
	"github.com/aretw0/decaytable/pkg/cst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *cst.Node {
	t.Helper()
	root, err := compiler.NewParser(nil).Parse([]byte(src))
	require.NoError(t, err)
	return root
}

func TestParser_Statements(t *testing.T) {
	root := parse(t, `
Define dm 0.507e12
Alias MyD0 D0
ChargeConj MyD0 Myanti-D0
ModelAlias SLBKPOLE_DtoKlnu SLBKPOLE 1.0 0.314 1.0 2.1;
CopyDecay MyD0 D0
CDecay anti-D0
yesPhotos
JetSetPar MSTJ(26)=0
PythiaBothParam HadronLevel:Hadronize=off
SetLineshapePW D_1+ D*+ pi0 2
End
`)
	require.Len(t, root.Children, 10)

	kinds := make([]cst.Kind, len(root.Children))
	for i, c := range root.Children {
		kinds[i] = c.Kind
	}
	assert.Equal(t, []cst.Kind{
		cst.KindDefine, cst.KindAlias, cst.KindChargeConj, cst.KindModelAlias,
		cst.KindCopyDecay, cst.KindCDecay, cst.KindGlobalPhotos, cst.KindJetSetDef,
		cst.KindPythiaDef, cst.KindLineshapePW,
	}, kinds)

	assert.Equal(t, `(define label:"dm" value:"0.507e12")`, root.Children[0].String())
	assert.Equal(t, 2, root.Children[0].Line)
	assert.Equal(t,
		`(model_alias label:"SLBKPOLE_DtoKlnu" (model model_name:"SLBKPOLE" (model_options value:"1.0" value:"0.314" value:"1.0" value:"2.1")))`,
		root.Children[3].String())
	assert.Equal(t, `(global_photos yes:"yesPhotos")`, root.Children[6].String())
	assert.Equal(t, `(jetset_def label:"MSTJ" value:"26" value:"0")`, root.Children[7].String())
	assert.Equal(t, `(pythia_def label:"HadronLevel" label:"Hadronize" label:"off")`, root.Children[8].String())
	assert.Equal(t, `(setlspw particle:"D_1+" particle:"D*+" particle:"pi0" value:"2")`, root.Children[9].String())
}

func TestParser_Decay(t *testing.T) {
	root := parse(t, `
Decay D*+
0.677  D0 pi+   VSS;
0.016  D+ gamma PHOTOS VSS_BMIX dm;
0.307  D+ pi0   MyAlias;
Enddecay
ModelAlias MyAlias PHSP;
`)
	require.Len(t, root.Children, 2)
	decay := root.Children[0]
	require.Equal(t, cst.KindDecay, decay.Kind)
	require.Len(t, decay.Children, 4)

	assert.Equal(t, `particle:"D*+"`, decay.Child(0).String())
	assert.Equal(t, `(decayline value:"0.677" particle:"D0" particle:"pi+" (model model_name:"VSS"))`, decay.Child(1).String())
	assert.Equal(t,
		`(decayline value:"0.016" particle:"D+" particle:"gamma" photos:"PHOTOS" (model model_name:"VSS_BMIX" (model_options label:"dm")))`,
		decay.Child(2).String())
	assert.Equal(t, `(decayline value:"0.307" particle:"D+" particle:"pi0" (model model_label:"MyAlias"))`, decay.Child(3).String(),
		"an alias declared later in the file is still recognized")
	assert.Equal(t, 3, decay.Child(1).Line)
}

func TestParser_ConcatenatedWithoutEnd(t *testing.T) {
	root := parse(t, "Decay pi0\n0.988 gamma gamma PHSP;\nEnddecay\nDecay K_S0\n0.692 pi+ pi- PHSP;\nEnddecay\n")
	assert.Len(t, root.Find(cst.KindDecay), 2)
	assert.Len(t, root.Find(cst.KindDecayLine), 2)
}

func TestParser_LeadingByteOrderMark(t *testing.T) {
	root := parse(t, "\ufeffDefine dm 0.5\nEnd\n")
	require.Len(t, root.Children, 1)
	assert.Equal(t, `(define label:"dm" value:"0.5")`, root.Children[0].String())
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"Unknown Statement", "Frobnicate X"},
		{"Missing Model", "Decay X\n1.0 a b;\nEnddecay"},
		{"Missing Enddecay", "Decay X\n1.0 a b PHSP;"},
		{"Non Numeric BF", "Decay X\nhalf a b PHSP;\nEnddecay"},
		{"Non Numeric Define", "Define x y"},
		{"Alias With Options", "ModelAlias A PHSP;\nDecay X\n1.0 a A 3;\nEnddecay"},
		{"PHOTOS Before Particle", "Decay X\n1.0 a PHOTOS b PHSP;\nEnddecay"},
		{"Unknown Alias Model", "ModelAlias A NOT_A_MODEL;"},
		{"Statement After End", "End\nCDecay X"},
		{"Malformed JetSetPar", "JetSetPar MSTJ26=0"},
		{"Malformed Pythia", "PythiaGenericParam Hadronize"},
		{"Missing Semicolon", "ModelAlias A PHSP 1 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compiler.NewParser(nil).Parse([]byte(tt.src))
			require.Error(t, err)
			var syn *compiler.SyntaxError
			assert.True(t, errors.As(err, &syn), "expected SyntaxError, got %T", err)
		})
	}
}

func TestParser_ErrorPosition(t *testing.T) {
	_, err := compiler.NewParser(nil).Parse([]byte("Decay X\n1.0 a b;\nEnddecay"))
	var syn *compiler.SyntaxError
	require.True(t, errors.As(err, &syn))
	assert.Equal(t, 2, syn.Pos.Line)
	assert.Contains(t, err.Error(), "without a model")
}
