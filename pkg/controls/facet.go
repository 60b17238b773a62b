package controls

import (
	"github.com/hylla/browse/pkg/state"
	"github.com/hylla/browse/pkg/types"
)

// FacetMode only affects presentation; both modes share the same toggle
// semantics.
type FacetMode int

const (
	ModeCheckbox FacetMode = iota
	ModeChips
)

// MultiSelect is the toggle-set control for one facet. Toggles commit
// to the store immediately: facet edits are cheap, discrete and
// low-frequency, unlike price drags.
type MultiSelect struct {
	store *state.Store
	kind  types.FacetKind
	Mode  FacetMode
}

func NewMultiSelect(store *state.Store, kind types.FacetKind, mode FacetMode) *MultiSelect {
	return &MultiSelect{store: store, kind: kind, Mode: mode}
}

func (m *MultiSelect) Options() []string {
	return m.store.Options().For(m.kind)
}

func (m *MultiSelect) Selected() types.StringSet {
	return m.store.Filters().Set(m.kind)
}

func (m *MultiSelect) IsSelected(value string) bool {
	return m.Selected().Has(value)
}

func (m *MultiSelect) Select(value string) {
	m.store.AddFacetValue(m.kind, value)
}

func (m *MultiSelect) Remove(value string) {
	m.store.RemoveFacetValue(m.kind, value)
}

func (m *MultiSelect) Toggle(value string) {
	if m.IsSelected(value) {
		m.Remove(value)
	} else {
		m.Select(value)
	}
}
