package domain

import (
	"errors"
	"fmt"
)

// ErrNotParsed is returned by queries issued before Parse.
var ErrNotParsed = errors.New("decay file not parsed")

// ErrDecayNotFound is returned when a mother has no decay lines in the table.
var ErrDecayNotFound = errors.New("decay not found")

// ErrParticleNotFound is returned by particle databases for unknown names or ids.
var ErrParticleNotFound = errors.New("particle not found")

// ErrDuplicateMother is returned when a table is built with a repeated mother.
var ErrDuplicateMother = errors.New("duplicate mother")

// ErrDecayCycle is returned when a decay chain expands a particle into itself.
var ErrDecayCycle = errors.New("decay cycle")

// ErrAmbiguousChain is returned when an operation needs exactly one mode per particle.
var ErrAmbiguousChain = errors.New("decay chain does not have exactly one mode per particle")

// ErrChainTooDeep is returned when chain expansion exceeds the configured depth.
var ErrChainTooDeep = errors.New("decay chain too deep")

// ErrTooManyFinalStates is returned when final-state enumeration exceeds its limit.
var ErrTooManyFinalStates = errors.New("too many final states")

// MalformedInputError reports a syntax tree node that violates the node-shape contract.
type MalformedInputError struct {
	Kind   string
	Line   int
	Detail string
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed %s node at line %d: %s", e.Kind, e.Line, e.Detail)
	}
	return fmt.Sprintf("malformed %s node: %s", e.Kind, e.Detail)
}

// UnresolvedAliasError reports a decay line referencing an undefined ModelAlias.
type UnresolvedAliasError struct {
	Name   string
	Mother string
}

func (e *UnresolvedAliasError) Error() string {
	return fmt.Sprintf("unresolved model alias %q in decay of %s", e.Name, e.Mother)
}

// InvalidScaleRangeError reports a normalization scale outside (0, 1].
type InvalidScaleRangeError struct {
	Scale float64
}

func (e *InvalidScaleRangeError) Error() string {
	return fmt.Sprintf("normalization scale %g outside (0, 1]", e.Scale)
}
