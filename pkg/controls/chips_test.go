package controls

import (
	"testing"

	"github.com/hylla/browse/pkg/state"
	"github.com/hylla/browse/pkg/types"
)

func TestDeriveChips(t *testing.T) {
	filters := types.NewFilters()
	filters.Seasons.Add("Winter")
	filters.Seasons.Add("Summer")
	filters.Styles.Add("Casual")
	filters.Price = types.PriceRange{From: 50, To: 200}

	chips := DeriveChips(filters)
	if len(chips) != 4 {
		t.Fatalf("Expected 4 chips, got %d: %v", len(chips), chips)
	}
	if chips[0].Label != "Summer" || chips[1].Label != "Winter" {
		t.Errorf("Expected sorted season chips, got %v", chips[:2])
	}
	if chips[2].Kind != types.FacetStyle || chips[2].Value != "Casual" {
		t.Errorf("Expected style chip, got %v", chips[2])
	}
	last := chips[len(chips)-1]
	if last.Kind != KindPrice || last.Label != "Price: $50 - $200" {
		t.Errorf("Expected price chip, got %v", last)
	}
}

func TestDeriveChipsWithoutPriceBound(t *testing.T) {
	chips := DeriveChips(types.NewFilters())
	if len(chips) != 0 {
		t.Errorf("Expected no chips before any bound exists, got %v", chips)
	}
}

func TestChipRemoval(t *testing.T) {
	store := state.NewStore(types.DefaultFacetOptions(), state.NewMemoryNavigator("/collections/women", nil))
	store.InitMaxPrice(250)
	store.AddFacetValue(types.FacetSeason, "Summer")
	store.CommitPrice(50, 200)
	bar := NewChipBar(store)

	bar.Remove(Chip{Kind: types.FacetSeason, Value: "Summer"})
	if store.Filters().Seasons.Len() != 0 {
		t.Errorf("Expected season removed, got %v", store.Filters().Seasons.Values())
	}

	bar.Remove(Chip{Kind: KindPrice})
	if got := store.Filters().Price; got.From != 0 || got.To != 250 {
		t.Errorf("Expected price reset to {0,250}, got %v", got)
	}
}

func TestChipBarClearAll(t *testing.T) {
	store := state.NewStore(types.DefaultFacetOptions(), state.NewMemoryNavigator("/collections/women", nil))
	store.InitMaxPrice(250)
	store.AddFacetValue(types.FacetSeason, "Summer")
	store.AddFacetValue(types.FacetStyle, "Gym")
	store.SetKeyword("dress")
	store.SubmitKeyword()
	NewChipBar(store).ClearAll()

	filters := store.Filters()
	if filters.Seasons.Len() != 0 || filters.Styles.Len() != 0 {
		t.Errorf("Expected facet sets cleared, got %v / %v", filters.Seasons.Values(), filters.Styles.Values())
	}
	if filters.Keyword != "dress" {
		t.Errorf("Expected keyword untouched, got %q", filters.Keyword)
	}
	if chips := NewChipBar(store).Chips(); len(chips) != 1 || chips[0].Kind != KindPrice {
		t.Errorf("Expected only the full-range price chip, got %v", chips)
	}
}

func TestMultiSelectToggle(t *testing.T) {
	store := state.NewStore(types.DefaultFacetOptions(), state.NewMemoryNavigator("/collections/women", nil))
	ms := NewMultiSelect(store, types.FacetSeason, ModeCheckbox)

	ms.Toggle("Summer")
	if !ms.IsSelected("Summer") {
		t.Error("Expected Summer selected after toggle")
	}
	ms.Toggle("Summer")
	if ms.IsSelected("Summer") {
		t.Error("Expected Summer deselected after second toggle")
	}

	ms.Toggle("NotASeason")
	if store.Filters().Seasons.Len() != 0 {
		t.Errorf("Expected unknown value rejected, got %v", store.Filters().Seasons.Values())
	}
}
