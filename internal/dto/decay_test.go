package dto

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/decaytable"
	"github.com/aretw0/decaytable/pkg/chain"
	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModes(t *testing.T) {
	rows := []decaytable.ModeRow{{
		BF:          0.5,
		Daughters:   []string{"K-", "pi+"},
		Model:       "VSS",
		ModelParams: []domain.Param{domain.Number(1.5), domain.Symbol("dm")},
	}}
	data, err := json.Marshal(Modes(rows))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"bf":0.5,"daughters":["K-","pi+"],"model":"VSS","model_params":[1.5,"dm"]}]`, string(data))
}

func TestFromChain(t *testing.T) {
	ks := &chain.Chain{Mother: "K_S0", Modes: []chain.Mode{{
		BF: 0.692, Model: "PHSP",
		Products: []chain.Product{{Name: "pi+"}, {Name: "pi-"}},
	}}}
	d0 := &chain.Chain{Mother: "D0", Modes: []chain.Mode{{
		BF: 0.0124, Model: "PHSP",
		Products: []chain.Product{{Name: "K_S0", Sub: ks}, {Name: "pi0"}},
	}}}

	got := FromChain(d0)
	require.Len(t, got.Modes, 1)
	assert.Equal(t, "K_S0", got.Modes[0].Products[0].Decay.Mother)
	assert.Nil(t, got.Modes[0].Products[1].Decay)

	data, err := json.Marshal(got.Modes[0].Products[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"pi0"}`, string(data))
}

func TestFinalStates(t *testing.T) {
	got := FinalStates([]chain.FinalState{{BF: 0.25, Daughters: chain.NewDaughters("pi0", "K_S0", "pi0")}})
	require.Len(t, got, 1)
	assert.Equal(t, 0.25, got[0].BF)
	assert.Equal(t, []string{"K_S0", "pi0", "pi0"}, got[0].Daughters)
}
