package resolve

import (
	"github.com/aretw0/decaytable/internal/extract"
	"github.com/aretw0/decaytable/pkg/domain"
)

// ExpandModelAliases replaces every ModelAlias reference with a copy of the
// aliased model name and options. It fails on the first undefined alias.
func ExpandModelAliases(decays []domain.Decay, aliases map[string]extract.ModelAlias) error {
	for i := range decays {
		for j := range decays[i].Lines {
			line := &decays[i].Lines[j]
			if line.Model != "" || line.ModelAlias == "" {
				continue
			}
			def, ok := aliases[line.ModelAlias]
			if !ok {
				return &domain.UnresolvedAliasError{Name: line.ModelAlias, Mother: decays[i].Mother}
			}
			line.Model = def.Model
			line.ModelParams = append([]domain.Param(nil), def.Params...)
		}
	}
	return nil
}
