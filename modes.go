package decaytable

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aretw0/decaytable/pkg/domain"
)

// PrintOptions controls DecayModes and PrintDecayModes.
type PrintOptions struct {
	PrintModel bool // append model name and parameters
	Ascending  bool // sort by increasing branching fraction

	// Normalize rescales the displayed fractions so they sum to Scale.
	// The table itself is never modified.
	Normalize bool
	Scale     float64
}

// DefaultPrintOptions prints models, sorted by decreasing branching fraction.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{PrintModel: true, Scale: 1}
}

// ModeRow is one displayed decay mode.
type ModeRow struct {
	BF          float64
	Daughters   []string
	Model       string
	ModelParams []domain.Param
}

// Label renders the daughters, and the model when printModel is set, in
// fixed-width columns.
func (r ModeRow) Label(printModel bool) string {
	names := strings.Join(r.Daughters, "  ")
	if !printModel {
		return fmt.Sprintf("%-50s", names)
	}
	return fmt.Sprintf("%-50s %15s %s", names, r.Model, domain.FormatParams(r.ModelParams))
}

// DecayModes returns the modes of mother sorted by branching fraction.
func (p *Parser) DecayModes(mother string, opts PrintOptions) ([]ModeRow, error) {
	if opts.Normalize && !(opts.Scale > 0 && opts.Scale <= 1) {
		return nil, &domain.InvalidScaleRangeError{Scale: opts.Scale}
	}
	lines, err := p.DecayModeDetails(mother)
	if err != nil {
		return nil, err
	}

	var sum float64
	rows := make([]ModeRow, len(lines))
	for i, l := range lines {
		rows[i] = ModeRow{BF: l.BF, Daughters: l.Daughters, Model: l.Model, ModelParams: l.ModelParams}
		sum += l.BF
	}
	if opts.Normalize && sum > 0 {
		for i := range rows {
			rows[i].BF = rows[i].BF * opts.Scale / sum
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if opts.Ascending {
			return rows[i].BF < rows[j].BF
		}
		return rows[i].BF > rows[j].BF
	})
	return rows, nil
}

// PrintDecayModes writes one line per mode of mother to w:
//
//	    0.692 : pi+  pi-                                                   PHSP
func (p *Parser) PrintDecayModes(w io.Writer, mother string, opts PrintOptions) error {
	rows, err := p.DecayModes(mother, opts)
	if err != nil {
		return err
	}
	for _, r := range rows {
		line := strings.TrimRight(fmt.Sprintf("%12.6g : %s", r.BF, r.Label(opts.PrintModel)), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
