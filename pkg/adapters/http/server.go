// Package http exposes a resolved decay table as a read-only JSON API.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/decaytable"
	"github.com/aretw0/decaytable/internal/dto"
	"github.com/aretw0/decaytable/pkg/chain"
	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var rawSpec []byte

// Table is the query surface served over HTTP. *decaytable.Parser implements it.
type Table interface {
	ListDecayMotherNames() ([]string, error)
	DecayModes(mother string, opts decaytable.PrintOptions) ([]decaytable.ModeRow, error)
	BuildDecayChains(mother string, stable ...string) (*chain.Chain, error)
	FinalStates(mother string, stable ...string) ([]chain.FinalState, error)
}

var _ Table = (*decaytable.Parser)(nil)

// Server answers decay table queries.
type Server struct {
	Table  Table
	Logger *slog.Logger

	spec *openapi3.T
}

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

// NewHandler creates the HTTP handler for table.
func NewHandler(table Table, logger *slog.Logger) (http.Handler, error) {
	spec, err := LoadSpec(context.Background())
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	s := &Server{Table: table, Logger: logger, spec: spec}

	r := chi.NewRouter()
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/decays", s.ListDecays)
	r.Route("/decays/{mother}", func(r chi.Router) {
		r.Get("/", s.GetDecayModes)
		r.Get("/chain", s.GetDecayChain)
		r.Get("/final", s.GetFinalStates)
		r.Get("/flat", s.GetFlatDecay)
	})
	return enableCORS(r), nil
}

// ListenAndServe serves handler on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{Addr: addr, Handler: handler}
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if s.spec != nil && s.spec.Info != nil {
		apiVersion = s.spec.Info.Version
	}
	s.writeJSON(w, map[string]string{
		"app":         "decaytable-http",
		"version":     strings.TrimSpace(decaytable.Version),
		"api_version": apiVersion,
	})
}

// ListDecays handles the GET /decays request.
func (s *Server) ListDecays(w http.ResponseWriter, r *http.Request) {
	names, err := s.Table.ListDecayMotherNames()
	if err != nil {
		s.fail(w, "ListDecays", err)
		return
	}
	s.writeJSON(w, map[string][]string{"mothers": names})
}

// GetDecayModes handles the GET /decays/{mother} request.
func (s *Server) GetDecayModes(w http.ResponseWriter, r *http.Request) {
	mother, ok := s.mother(w, r)
	if !ok {
		return
	}
	opts := decaytable.DefaultPrintOptions()
	q := r.URL.Query()
	for name, dest := range map[string]any{"ascending": &opts.Ascending, "normalize": &opts.Normalize, "scale": &opts.Scale} {
		if err := runtime.BindQueryParameter("form", true, false, name, q, dest); err != nil {
			http.Error(w, fmt.Sprintf("Invalid parameter %s: %v", name, err), http.StatusBadRequest)
			return
		}
	}

	rows, err := s.Table.DecayModes(mother, opts)
	if err != nil {
		s.fail(w, "GetDecayModes", err)
		return
	}
	s.writeJSON(w, dto.Modes(rows))
}

// GetDecayChain handles the GET /decays/{mother}/chain request.
func (s *Server) GetDecayChain(w http.ResponseWriter, r *http.Request) {
	mother, stable, ok := s.chainParams(w, r)
	if !ok {
		return
	}
	c, err := s.Table.BuildDecayChains(mother, stable...)
	if err != nil {
		s.fail(w, "GetDecayChain", err)
		return
	}
	s.writeJSON(w, dto.FromChain(c))
}

// GetFinalStates handles the GET /decays/{mother}/final request.
func (s *Server) GetFinalStates(w http.ResponseWriter, r *http.Request) {
	mother, stable, ok := s.chainParams(w, r)
	if !ok {
		return
	}
	states, err := s.Table.FinalStates(mother, stable...)
	if err != nil {
		s.fail(w, "GetFinalStates", err)
		return
	}
	s.writeJSON(w, dto.FinalStates(states))
}

// GetFlatDecay handles the GET /decays/{mother}/flat request.
func (s *Server) GetFlatDecay(w http.ResponseWriter, r *http.Request) {
	mother, stable, ok := s.chainParams(w, r)
	if !ok {
		return
	}
	c, err := s.Table.BuildDecayChains(mother, stable...)
	if err != nil {
		s.fail(w, "GetFlatDecay", err)
		return
	}
	flat, err := dto.Flatten(c, stable...)
	if err != nil {
		s.fail(w, "GetFlatDecay", err)
		return
	}
	s.writeJSON(w, flat)
}

func (s *Server) mother(w http.ResponseWriter, r *http.Request) (string, bool) {
	var mother string
	err := runtime.BindStyledParameterWithOptions("simple", "mother", chi.URLParam(r, "mother"), &mother,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid parameter mother: %v", err), http.StatusBadRequest)
		return "", false
	}
	return mother, true
}

func (s *Server) chainParams(w http.ResponseWriter, r *http.Request) (string, []string, bool) {
	mother, ok := s.mother(w, r)
	if !ok {
		return "", nil, false
	}
	var stable []string
	if err := runtime.BindQueryParameter("form", true, false, "stable", r.URL.Query(), &stable); err != nil {
		http.Error(w, fmt.Sprintf("Invalid parameter stable: %v", err), http.StatusBadRequest)
		return "", nil, false
	}
	return mother, stable, true
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.Logger.Error(op+" failed", "err", err)
	} else {
		s.Logger.Debug(op+" rejected", "err", err, "status", status)
	}
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	var scale *domain.InvalidScaleRangeError
	switch {
	case errors.Is(err, domain.ErrDecayNotFound):
		return http.StatusNotFound
	case errors.As(err, &scale):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDecayCycle), errors.Is(err, domain.ErrChainTooDeep),
		errors.Is(err, domain.ErrTooManyFinalStates), errors.Is(err, domain.ErrAmbiguousChain):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}
