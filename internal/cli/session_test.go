package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/decaytable/pkg/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDec = `
Decay D0
0.0124 K_S0 pi0 PHSP;
Enddecay
CDecay anti-D0
Decay K_S0
0.692 pi+ pi- PHSP;
Enddecay
End
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	dec := writeFile(t, dir, "d0.dec", sampleDec)

	t.Run("Defaults", func(t *testing.T) {
		s, err := Open(Options{Files: []string{dec}, ConfigPath: "", Stable: []string{"pi0"}})
		require.NoError(t, err)

		names, err := s.Parser.ListDecayMotherNames()
		require.NoError(t, err)
		assert.Equal(t, []string{"D0", "K_S0", "anti-D0"}, names)
		assert.Equal(t, []string{"pi0"}, s.Stable())
		assert.Equal(t, chain.DefaultMaxDepth, s.Config.MaxDepth)

		var buf bytes.Buffer
		require.NoError(t, s.WriteMetrics(&buf))
		assert.Empty(t, buf.String(), "metrics are off unless requested")
	})

	t.Run("Config And Flags", func(t *testing.T) {
		cfg := writeFile(t, dir, "cfg.yaml", "stable: [K_S0, pi0]\ncharge_conjugates: true\nlog_level: error\n")
		s, err := Open(Options{Files: []string{dec}, ConfigPath: cfg, Stable: []string{"pi0", "eta"}, NoCC: true, Metrics: true})
		require.NoError(t, err)

		names, err := s.Parser.ListDecayMotherNames()
		require.NoError(t, err)
		assert.Equal(t, []string{"D0", "K_S0"}, names, "--no-cc wins over the config file")
		assert.Equal(t, []string{"K_S0", "pi0", "eta"}, s.Stable())

		var buf bytes.Buffer
		require.NoError(t, s.WriteMetrics(&buf))
		assert.Contains(t, buf.String(), "decaytable_decays 2")
	})

	t.Run("Particle Catalogue", func(t *testing.T) {
		db := writeFile(t, dir, "particles.yaml", "particles:\n  - {name: D0, pdgid: 421, anti: MyantiD0}\n")
		s, err := Open(Options{Files: []string{dec}, ParticleDB: db})
		require.NoError(t, err)
		names, err := s.Parser.ListDecayMotherNames()
		require.NoError(t, err)
		assert.Equal(t, []string{"D0", "K_S0"}, names, "anti-D0 has no known source in this catalogue")
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := Open(Options{})
		assert.Error(t, err)

		_, err = Open(Options{Files: []string{dec}, ConfigPath: filepath.Join(dir, "missing.yaml")})
		assert.ErrorIs(t, err, os.ErrNotExist)

		_, err = Open(Options{Files: []string{dec}, LogLevel: "chatty"})
		assert.Error(t, err)

		bad := writeFile(t, dir, "bad.dec", "Decay D0\n")
		_, err = Open(Options{Files: []string{bad}})
		assert.Error(t, err)
	})
}

func TestPaletteFor_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))
	assert.Equal(t, "notty", MarkdownStyle(&buf, false))
	assert.Equal(t, "x", PaletteFor(&buf, false).Final("x"))
}
