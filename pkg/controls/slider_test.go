package controls

import (
	"testing"

	"github.com/hylla/browse/pkg/state"
	"github.com/hylla/browse/pkg/types"
)

func newSliderStore(maxPrice int) *state.Store {
	store := state.NewStore(types.DefaultFacetOptions(), state.NewMemoryNavigator("/collections/women", nil))
	store.InitMaxPrice(float64(maxPrice))
	return store
}

func TestSliderClampsToMinGap(t *testing.T) {
	slider := NewPriceSlider(newSliderStore(250))

	slider.SetMax(100)
	slider.SetMin(95)
	if v := slider.Value(); v.From != 90 {
		t.Errorf("Expected lower thumb clamped to 90, got %v", v.From)
	}

	slider.SetMin(40)
	slider.SetMax(45)
	if v := slider.Value(); v.To != 50 {
		t.Errorf("Expected upper thumb clamped to 50, got %v", v.To)
	}
}

func TestSliderGapNeverBelowMinGap(t *testing.T) {
	slider := NewPriceSlider(newSliderStore(250))
	drags := []struct {
		min bool
		v   int
	}{
		{true, 240}, {false, 0}, {true, -50}, {false, 600},
		{true, 249}, {false, 1}, {true, 125}, {false, 125},
	}
	for _, d := range drags {
		if d.min {
			slider.SetMin(d.v)
		} else {
			slider.SetMax(d.v)
		}
		v := slider.Value()
		if v.To-v.From < MinGap {
			t.Fatalf("Gap below %d after drag %+v: %v", MinGap, d, v)
		}
		if v.From < 0 || v.To > 250 {
			t.Fatalf("Thumb outside bounds after drag %+v: %v", d, v)
		}
	}
}

func TestSliderDragDoesNotTouchCommittedPrice(t *testing.T) {
	store := newSliderStore(250)
	changes := 0
	store.OnChange(func() { changes++ })
	slider := NewPriceSlider(store)

	slider.SetMin(50)
	slider.SetMax(200)
	if changes != 0 {
		t.Fatalf("Expected dragging to cause no store change, got %d", changes)
	}
	if got := store.Filters().Price; got.From != 0 || got.To != 250 {
		t.Errorf("Expected committed price untouched {0,250}, got %v", got)
	}

	slider.Submit()
	if changes != 1 {
		t.Errorf("Expected submit to commit once, got %d", changes)
	}
	if got := store.Filters().Price; got.From != 50 || got.To != 200 {
		t.Errorf("Expected committed price {50,200}, got %v", got)
	}
}

func TestSliderSyncAfterClearAll(t *testing.T) {
	store := newSliderStore(250)
	slider := NewPriceSlider(store)
	slider.SetMin(50)
	slider.SetMax(200)
	slider.Submit()

	store.ClearAll()
	slider.Sync()
	if v := slider.Value(); v.From != 0 || v.To != 250 {
		t.Errorf("Expected slider back at full range, got %v", v)
	}
}
