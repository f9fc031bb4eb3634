package resolve

import (
	"fmt"

	"github.com/aretw0/decaytable/pkg/domain"
)

// RemoveDuplicates keeps the first decay of every mother and drops the rest,
// reporting each redefined mother once.
func RemoveDuplicates(decays []domain.Decay, diags *domain.Diagnostics) []domain.Decay {
	seen := make(map[string]int, len(decays))
	var order []string
	out := decays[:0:0]
	for _, d := range decays {
		if _, dup := seen[d.Mother]; !dup {
			out = append(out, d)
		} else if seen[d.Mother] == 1 {
			order = append(order, d.Mother)
		}
		seen[d.Mother]++
	}
	for _, m := range order {
		diags.Add(domain.DiagDuplicateDecay,
			fmt.Sprintf("%s is defined %d times with Decay; keeping the first definition", m, seen[m]),
			m)
	}
	return out
}
