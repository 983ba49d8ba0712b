package game

import (
	"fmt"

	"qlaunch/internal/domain"
)

// Sentinels returned by RandomItem when there is nothing to pick from.
const (
	NoRandomOption = "0"
	NoRandomMap    = ""
)

// RandomItem returns the launch value of a random class, skill or map. Maps
// are picked from the mod last listed with GetMaps. Any other kind is a
// programming error and panics.
func (h *Handler) RandomItem(kind domain.ItemType) string {
	switch kind {
	case domain.ItemClass:
		return h.pick(realValues(h.classes), NoRandomOption)
	case domain.ItemSkill:
		return h.pick(realValues(h.skills), NoRandomOption)
	case domain.ItemMap:
		h.mu.RLock()
		names := h.mapNames.Values()
		h.mu.RUnlock()
		return h.pick(names, NoRandomMap)
	default:
		panic(fmt.Errorf("game: RandomItem(%s): %w", kind, domain.ErrUnknownItemType))
	}
}

func (h *Handler) pick(values []string, none string) string {
	if len(values) == 0 {
		return none
	}
	return values[h.randn(len(values))]
}

func realValues(opts []domain.Option) []string {
	var out []string
	for _, o := range opts {
		if !o.IsSynthetic() {
			out = append(out, o.Value)
		}
	}
	return out
}
