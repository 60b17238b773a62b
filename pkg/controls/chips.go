package controls

import (
	"fmt"

	"github.com/hylla/browse/pkg/state"
	"github.com/hylla/browse/pkg/types"
)

// KindPrice marks the synthetic price chip; the real facet kinds come
// from types.
const KindPrice types.FacetKind = "price"

// Chip is one removable token for an active filter value.
type Chip struct {
	Label string          `json:"label"`
	Kind  types.FacetKind `json:"kind"`
	Value string          `json:"value,omitempty"`
}

// DeriveChips lists one chip per selected season and style plus the
// price summary chip. The price chip appears once an upper bound
// exists, which is after the first fetch initializes maxPrice or the
// user commits a range.
func DeriveChips(filters types.Filters) []Chip {
	chips := make([]Chip, 0, filters.Seasons.Len()+filters.Styles.Len()+1)
	for _, v := range filters.Seasons.Values() {
		chips = append(chips, Chip{Label: v, Kind: types.FacetSeason, Value: v})
	}
	for _, v := range filters.Styles.Values() {
		chips = append(chips, Chip{Label: v, Kind: types.FacetStyle, Value: v})
	}
	if filters.Price.To > 0 {
		chips = append(chips, Chip{
			Label: fmt.Sprintf("Price: $%d - $%d", filters.Price.From, filters.Price.To),
			Kind:  KindPrice,
		})
	}
	return chips
}

// ChipBar exposes chip derivation and removal against the store.
type ChipBar struct {
	store *state.Store
}

func NewChipBar(store *state.Store) *ChipBar {
	return &ChipBar{store: store}
}

func (c *ChipBar) Chips() []Chip {
	return DeriveChips(c.store.Filters())
}

// Remove removes one chip. The price chip resets the committed range to
// the full discovered bounds.
func (c *ChipBar) Remove(chip Chip) {
	if chip.Kind == KindPrice {
		c.store.ResetPrice()
		return
	}
	c.store.RemoveFacetValue(chip.Kind, chip.Value)
}

// ClearAll resets price and empties both facet sets; keyword and
// category stay as they are.
func (c *ChipBar) ClearAll() {
	c.store.ClearAll()
}
