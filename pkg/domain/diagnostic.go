package domain

import (
	"fmt"
	"strings"
)

// DiagnosticKind classifies a recoverable problem found while resolving a decay file.
type DiagnosticKind int

const (
	DiagSourceNotFound DiagnosticKind = iota
	DiagSelfConjugateRequest
	DiagDuplicateDecay
	DiagReparse
	DiagPhotosRedeclared
	DiagCDecayShadowed
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagSourceNotFound:
		return "source_not_found"
	case DiagSelfConjugateRequest:
		return "self_conjugate_request"
	case DiagDuplicateDecay:
		return "duplicate_decay"
	case DiagReparse:
		return "reparse"
	case DiagPhotosRedeclared:
		return "photos_redeclared"
	case DiagCDecayShadowed:
		return "cdecay_shadowed"
	default:
		return fmt.Sprintf("diagnostic(%d)", int(k))
	}
}

// Diagnostic is a recoverable finding. Processing continues after it is emitted.
type Diagnostic struct {
	Kind    DiagnosticKind
	Names   []string
	Message string
}

func (d Diagnostic) String() string {
	if len(d.Names) == 0 {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", d.Kind, strings.Join(d.Names, ", "), d.Message)
}

// Diagnostics collects diagnostics in emission order.
type Diagnostics []Diagnostic

// Add appends a diagnostic.
func (ds *Diagnostics) Add(kind DiagnosticKind, msg string, names ...string) Diagnostic {
	d := Diagnostic{Kind: kind, Names: names, Message: msg}
	*ds = append(*ds, d)
	return d
}

// OfKind returns the diagnostics of the given kind.
func (ds Diagnostics) OfKind(kind DiagnosticKind) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
