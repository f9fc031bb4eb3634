package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/aretw0/decaytable/pkg/ports"
)

// Severity ranks a finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Finding is one problem found in a decay table.
type Finding struct {
	Severity Severity
	Mother   string
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Severity, f.Mother, f.Message)
}

// Report collects the findings of ValidateTable, ordered by mother.
type Report struct {
	Findings []Finding
}

// Errors returns the error-level findings.
func (r Report) Errors() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			out = append(out, f)
		}
	}
	return out
}

// Err summarizes the error-level findings, or returns nil.
func (r Report) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	lines := make([]string, len(errs))
	for i, f := range errs {
		lines[i] = fmt.Sprintf("%s: %s", f.Mother, f.Message)
	}
	return fmt.Errorf("found %d errors:\n- %s", len(errs), strings.Join(lines, "\n- "))
}

// BFTolerance is the slack allowed above 1 for a mother's summed fractions.
const BFTolerance = 1e-6

// ValidateTable checks the decay graph for cycles and reports modes whose
// fractions exceed unity. With a database it also reports particle names
// the database does not know. db may be nil.
func ValidateTable(t *domain.Table, db ports.ParticleDB) Report {
	v := &validation{table: t, db: db, state: make(map[string]int)}
	for _, m := range t.Mothers() {
		v.checkMother(m)
	}
	for _, m := range t.Mothers() {
		if v.state[m] == unvisited {
			v.visit(m, nil)
		}
	}
	sort.SliceStable(v.findings, func(i, j int) bool {
		return v.findings[i].Mother < v.findings[j].Mother
	})
	return Report{Findings: v.findings}
}

const (
	unvisited = iota
	inProgress
	done
)

type validation struct {
	table    *domain.Table
	db       ports.ParticleDB
	state    map[string]int
	findings []Finding
	unknown  map[string]bool
	cycles   map[string]bool
}

func (v *validation) add(sev Severity, mother, format string, args ...any) {
	v.findings = append(v.findings, Finding{Severity: sev, Mother: mother, Message: fmt.Sprintf(format, args...)})
}

func (v *validation) checkMother(m string) {
	lines, _ := v.table.Lines(m)
	if len(lines) == 0 {
		v.add(SeverityWarning, m, "no decay modes")
		return
	}
	var sum float64
	for _, l := range lines {
		sum += l.BF
		if len(l.Daughters) == 0 {
			v.add(SeverityError, m, "decay mode with no daughters")
		}
	}
	if sum > 1+BFTolerance {
		v.add(SeverityWarning, m, "branching fractions sum to %g", sum)
	}

	v.checkName(m, m)
	for _, l := range lines {
		for _, d := range l.Daughters {
			v.checkName(m, d)
		}
	}
}

func (v *validation) checkName(mother, name string) {
	if domain.IsConjugatePlaceholder(name) {
		v.add(SeverityWarning, mother, "unresolved charge conjugate %s", name)
		return
	}
	if v.db == nil {
		return
	}
	if v.unknown == nil {
		v.unknown = make(map[string]bool)
	}
	if v.unknown[name] {
		return
	}
	if _, err := v.db.NameToPDGID(name); err != nil {
		v.unknown[name] = true
		v.add(SeverityWarning, mother, "unknown particle %s", name)
	}
}

// visit walks the decay graph depth first; reaching a mother that is still
// in progress closes a cycle.
func (v *validation) visit(m string, path []string) {
	v.state[m] = inProgress
	path = append(path, m)
	lines, _ := v.table.Lines(m)
	for _, l := range lines {
		for _, d := range l.Daughters {
			if !v.table.Has(d) {
				continue
			}
			switch v.state[d] {
			case inProgress:
				start := indexOf(path, d)
				cycle := strings.Join(append(append([]string(nil), path[start:]...), d), " -> ")
				if v.cycles == nil {
					v.cycles = make(map[string]bool)
				}
				if !v.cycles[cycle] {
					v.cycles[cycle] = true
					v.add(SeverityError, d, "decay cycle %s", cycle)
				}
			case unvisited:
				v.visit(d, path)
			}
		}
	}
	v.state[m] = done
}

func indexOf(path []string, name string) int {
	for i, p := range path {
		if p == name {
			return i
		}
	}
	return 0
}
