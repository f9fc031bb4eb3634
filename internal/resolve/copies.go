package resolve

import (
	"fmt"

	"github.com/aretw0/decaytable/internal/extract"
	"github.com/aretw0/decaytable/pkg/domain"
)

// CopyDecays appends a relabelled deep copy of the source decay for every
// directive. Copies only see decays present before the stage started.
func CopyDecays(decays []domain.Decay, copies []extract.CopyDirective, diags *domain.Diagnostics) []domain.Decay {
	n := len(decays)
	for _, c := range copies {
		i, ok := indexOf(decays[:n], c.Source)
		if !ok {
			diags.Add(domain.DiagSourceNotFound,
				fmt.Sprintf("CopyDecay %s: no Decay statement for %s, copy skipped", c.Target, c.Source),
				c.Target, c.Source)
			continue
		}
		cp := decays[i].Clone()
		cp.Mother = c.Target
		cp.Line = 0
		decays = append(decays, cp)
	}
	return decays
}
