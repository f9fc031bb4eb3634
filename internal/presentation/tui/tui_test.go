package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/decaytable"
	"github.com/aretw0/decaytable/internal/presentation/tui"
	"github.com/aretw0/decaytable/pkg/chain"
	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ksChain() *chain.Chain {
	return &chain.Chain{Mother: "D0", Modes: []chain.Mode{{
		BF: 0.0124, Model: "PHSP",
		Products: []chain.Product{
			{Name: "K_S0", Sub: &chain.Chain{Mother: "K_S0", Modes: []chain.Mode{{
				BF: 0.692, Model: "PHSP",
				Products: []chain.Product{{Name: "pi+"}, {Name: "pi-"}},
			}}}},
			{Name: "pi0"},
		},
	}}}
}

func TestWriteTree_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tui.WriteTree(&buf, ksChain(), tui.NewPalette(termenv.Ascii)))
	assert.Equal(t, `D0 [0.0124 PHSP]
+--> K_S0 [0.692 PHSP]
|    +--> pi+
|    +--> pi-
+--> pi0
`, buf.String())
}

func TestWriteTree_Colored(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tui.WriteTree(&buf, ksChain(), tui.NewPalette(termenv.ANSI256)))
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "K_S0")
	assert.Equal(t, 5, strings.Count(out, "\n"))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "0.1.0\n", tui.NewPalette(termenv.Ascii))
	assert.Equal(t, "decaytable 0.1.0\n", buf.String())
}

func TestModesMarkdown(t *testing.T) {
	md := tui.ModesMarkdown("D*+", []decaytable.ModeRow{
		{BF: 0.677, Daughters: []string{"D0", "pi+"}, Model: "VSS"},
		{BF: 0.307, Daughters: []string{"D+", "pi0"}, Model: "SVS", ModelParams: []domain.Param{domain.Number(1), domain.Symbol("a|b")}},
	})
	assert.Equal(t, "## `D*+` decay modes\n\n"+
		"| BF | Daughters | Model | Parameters |\n"+
		"|---:|---|---|---|\n"+
		"| 0.677 | `D0` `pi+` | VSS |  |\n"+
		"| 0.307 | `D+` `pi0` | SVS | 1 a\\|b |\n", md)

	render, err := tui.NewRenderer("notty")
	require.NoError(t, err)
	out, err := render(md)
	require.NoError(t, err)
	assert.Contains(t, out, "VSS")
	assert.Contains(t, out, "0.677")
}
