package controls

import (
	"github.com/hylla/browse/pkg/state"
	"github.com/hylla/browse/pkg/types"
)

// MinGap is the smallest span the two thumbs may be apart. Drags are
// clamped against the opposite thumb, never rejected.
const MinGap = 10

// PriceSlider is the dual-thumb range control. Dragging only moves the
// transient value; nothing reaches the committed filters or the network
// until Submit. A drag fires many intermediate values per interaction,
// so committing each one would flood the URL and the product service.
type PriceSlider struct {
	store  *state.Store
	bounds types.PriceRange
	value  types.PriceRange
}

func NewPriceSlider(store *state.Store) *PriceSlider {
	s := &PriceSlider{store: store}
	s.Sync()
	return s
}

// Sync pulls the committed range and discovered bounds back into the
// slider, after a commit, a clear-all or a maxPrice discovery.
func (s *PriceSlider) Sync() {
	s.bounds = types.PriceRange{From: 0, To: s.store.MaxPrice()}
	s.value = s.store.Filters().Price
	if s.value.To == 0 {
		s.value.To = s.bounds.To
	}
}

func (s *PriceSlider) Bounds() types.PriceRange { return s.bounds }
func (s *PriceSlider) Value() types.PriceRange  { return s.value }

// SetMin drags the lower thumb, clamped to [0, upper - MinGap].
func (s *PriceSlider) SetMin(value int) {
	upper := s.value.To - MinGap
	if upper < s.bounds.From {
		upper = s.bounds.From
	}
	s.value.From = types.Clamp(value, s.bounds.From, upper)
}

// SetMax drags the upper thumb, clamped to [lower + MinGap, maxPrice].
func (s *PriceSlider) SetMax(value int) {
	lower := s.value.From + MinGap
	if lower > s.bounds.To {
		lower = s.bounds.To
	}
	s.value.To = types.Clamp(value, lower, s.bounds.To)
}

// Submit copies the transient range into the committed filters, which
// reserializes the URL and triggers a fetch.
func (s *PriceSlider) Submit() {
	s.store.CommitPrice(s.value.From, s.value.To)
}
