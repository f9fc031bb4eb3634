package resolve

import "github.com/aretw0/decaytable/pkg/domain"

// indexOf returns the position of the first decay of mother.
func indexOf(decays []domain.Decay, mother string) (int, bool) {
	for i, d := range decays {
		if d.Mother == mother {
			return i, true
		}
	}
	return -1, false
}
