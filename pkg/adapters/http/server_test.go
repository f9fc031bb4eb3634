package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/aretw0/decaytable"
	"github.com/aretw0/decaytable/internal/dto"
	"github.com/aretw0/decaytable/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const d0Dec = `
Decay D0
0.0124 K_S0 pi0 PHSP;
Enddecay
Decay K_S0
0.692 pi+ pi- PHSP;
0.307 pi0 pi0 PHSP;
Enddecay
Decay pi0
0.98823 gamma gamma PHSP;
Enddecay
Decay Loop
1.0 Loop PHSP;
Enddecay
End
`

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	p := decaytable.FromString(d0Dec, decaytable.WithParticleDB(memory.Default()))
	require.NoError(t, p.Parse())
	h, err := NewHandler(p, nil)
	require.NoError(t, err)
	return h
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	return w
}

func TestLoadSpec(t *testing.T) {
	doc, err := LoadSpec(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	assert.NotNil(t, doc.Paths.Find("/decays/{mother}/chain"))
	assert.NotNil(t, doc.Paths.Find("/decays/{mother}/flat"))
}

func TestServer(t *testing.T) {
	h := newTestHandler(t)

	t.Run("Health And Info", func(t *testing.T) {
		w := get(t, h, "/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

		w = get(t, h, "/info")
		require.Equal(t, http.StatusOK, w.Code)
		var info map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
		assert.Equal(t, "decaytable-http", info["app"])
		assert.Equal(t, "1.0.0", info["api_version"])
	})

	t.Run("Spec", func(t *testing.T) {
		w := get(t, h, "/openapi.yaml")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "openapi: 3.0.3")
	})

	t.Run("List Decays", func(t *testing.T) {
		w := get(t, h, "/decays")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"mothers":["D0","K_S0","pi0","Loop"]}`, w.Body.String())
	})

	t.Run("Decay Modes", func(t *testing.T) {
		w := get(t, h, "/decays/K_S0?ascending=true")
		require.Equal(t, http.StatusOK, w.Code)
		var modes []dto.DecayMode
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &modes))
		require.Len(t, modes, 2)
		assert.Equal(t, []string{"pi0", "pi0"}, modes[0].Daughters)
		assert.Equal(t, "PHSP", modes[0].Model)

		w = get(t, h, "/decays/K_S0?normalize=true&scale=0.5")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &modes))
		assert.InDelta(t, 0.5, modes[0].BF+modes[1].BF, 1e-12)
	})

	t.Run("Chain", func(t *testing.T) {
		w := get(t, h, "/decays/D0/chain")
		require.Equal(t, http.StatusOK, w.Code)
		var c dto.Chain
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
		assert.Equal(t, "D0", c.Mother)
		require.Len(t, c.Modes, 1)
		require.Len(t, c.Modes[0].Products, 2)
		require.NotNil(t, c.Modes[0].Products[0].Decay)
		assert.Equal(t, "K_S0", c.Modes[0].Products[0].Decay.Mother)

		w = get(t, h, "/decays/D0/chain?stable=K_S0&stable=pi0")
		require.Equal(t, http.StatusOK, w.Code)
		c = dto.Chain{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
		assert.Nil(t, c.Modes[0].Products[0].Decay)
		assert.Nil(t, c.Modes[0].Products[1].Decay)
	})

	t.Run("Final States", func(t *testing.T) {
		w := get(t, h, "/decays/D0/final?stable="+url.QueryEscape("K_S0"))
		require.Equal(t, http.StatusOK, w.Code)
		var states []dto.FinalState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &states))
		require.Len(t, states, 1)
		assert.ElementsMatch(t, []string{"K_S0", "gamma", "gamma"}, states[0].Daughters)
		assert.InDelta(t, 0.0124*0.98823, states[0].BF, 1e-12)
	})

	t.Run("Flat Decay", func(t *testing.T) {
		w := get(t, h, "/decays/D0/flat?stable=K_S0")
		require.Equal(t, http.StatusOK, w.Code)
		var flat dto.Flat
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &flat))
		assert.Equal(t, "D0", flat.Mother)
		assert.Equal(t, []string{"K_S0", "gamma", "gamma"}, flat.Daughters)
		assert.InDelta(t, 0.0124*0.98823, flat.BF, 1e-12)
		assert.Equal(t, "D0 -> K_S0 gamma gamma", flat.Descriptor)

		w = get(t, h, "/decays/pi0/flat")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &flat))
		assert.InDelta(t, 0.98823, flat.BF, 1e-12)

		assert.Equal(t, http.StatusUnprocessableEntity, get(t, h, "/decays/D0/flat").Code)
		assert.Equal(t, http.StatusNotFound, get(t, h, "/decays/B0/flat").Code)
	})

	t.Run("Errors", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(t, h, "/decays/B0").Code)
		assert.Equal(t, http.StatusNotFound, get(t, h, "/decays/B0/chain").Code)
		assert.Equal(t, http.StatusBadRequest, get(t, h, "/decays/K_S0?normalize=true&scale=2").Code)
		assert.Equal(t, http.StatusBadRequest, get(t, h, "/decays/K_S0?scale=abc").Code)
		assert.Equal(t, http.StatusUnprocessableEntity, get(t, h, "/decays/Loop/chain").Code)
	})

	t.Run("CORS Preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/decays", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
