package browse

import (
	"github.com/hylla/browse/pkg/controls"
	"github.com/hylla/browse/pkg/types"
)

type FacetView struct {
	Options  []string `json:"options"`
	Selected []string `json:"selected"`
}

type PriceView struct {
	Bounds types.PriceRange `json:"bounds"`
	Value  types.PriceRange `json:"value"`
}

// View is everything a renderer needs for one frame of the page.
type View struct {
	Collection *types.Collection   `json:"collection,omitempty"`
	Category   *types.Category     `json:"category,omitempty"`
	Phase      string              `json:"phase"`
	Products   []types.Product     `json:"products"`
	Sort       types.SortKey       `json:"sort"`
	Page       types.PageState     `json:"page"`
	Window     []controls.PageItem `json:"window"`
	CanPrev    bool                `json:"canPrev"`
	CanNext    bool                `json:"canNext"`
	Chips      []controls.Chip     `json:"chips"`
	Price      PriceView           `json:"price"`
	Seasons    FacetView           `json:"seasons"`
	Styles     FacetView           `json:"styles"`
	Keyword    string              `json:"keyword"`
	Url        string              `json:"url"`
	Notices    []string            `json:"notices,omitempty"`
}

// View assembles the current frame. Safe to call at any point,
// including before resolution or the first fetch completes.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, phase := s.resolver.State()
	filters := s.store.Filters()
	sortKey := s.store.SortKey()

	view := View{
		Collection: s.resolver.Collection(),
		Category:   s.resolver.Category(),
		Phase:      phase.String(),
		Products:   []types.Product{},
		Sort:       sortKey,
		Page:       s.store.Page(),
		Chips:      controls.DeriveChips(filters),
		Price: PriceView{
			Bounds: s.slider.Bounds(),
			Value:  s.slider.Value(),
		},
		Seasons: FacetView{
			Options:  s.seasons.Options(),
			Selected: filters.Seasons.Values(),
		},
		Styles: FacetView{
			Options:  s.styles.Options(),
			Selected: filters.Styles.Values(),
		},
		Keyword: filters.Keyword,
		Url:     s.nav.Url(),
		Notices: s.notices.Drain(),
	}
	view.Window = controls.ComputeWindow(view.Page.CurrentPage, view.Page.TotalPages)
	view.CanPrev = view.Page.CurrentPage > 1
	view.CanNext = view.Page.CurrentPage < view.Page.TotalPages
	if result := s.coordinator.Result(); result != nil {
		view.Products = types.Sorted(result.Products, sortKey)
	}
	return view
}
