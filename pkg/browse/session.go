package browse

import (
	"context"
	"net/url"
	"sync"

	"github.com/hylla/browse/pkg/controls"
	"github.com/hylla/browse/pkg/notify"
	"github.com/hylla/browse/pkg/query"
	"github.com/hylla/browse/pkg/resolve"
	"github.com/hylla/browse/pkg/shopapi"
	"github.com/hylla/browse/pkg/state"
	"github.com/hylla/browse/pkg/types"
)

// Session is one browsing page instance: the store, resolver and
// coordinator wired together for a collection route. All interaction
// goes through session methods, which serialize access the way a UI
// event loop would; only fetch responses arrive from other goroutines.
type Session struct {
	mu sync.Mutex

	collectionSlug string
	categorySlug   string

	nav         *state.MemoryNavigator
	store       *state.Store
	resolver    *resolve.Resolver
	coordinator *query.Coordinator
	notices     *notify.Collector

	slider     *controls.PriceSlider
	seasons    *controls.MultiSelect
	styles     *controls.MultiSelect
	pagination *controls.Pagination
	chips      *controls.ChipBar

	resolving sync.WaitGroup
}

// NewSession builds a session for a route. The query values are the
// incoming URL's, hydrated into the store before anything resolves.
func NewSession(client shopapi.Client, options types.FacetOptions, collectionSlug, categorySlug string, queryValues url.Values) *Session {
	path := "/collections/" + collectionSlug
	if categorySlug != "" {
		path += "/" + categorySlug
	}
	s := &Session{
		collectionSlug: collectionSlug,
		categorySlug:   categorySlug,
		nav:            state.NewMemoryNavigator(path, queryValues),
		notices:        &notify.Collector{},
	}
	s.store = state.NewStore(options, s.nav)
	s.store.SetCollectionSlug(collectionSlug)
	s.resolver = resolve.NewResolver(client, s.notices)
	s.coordinator = query.NewCoordinator(client, s.notices)

	s.slider = controls.NewPriceSlider(s.store)
	s.seasons = controls.NewMultiSelect(s.store, types.FacetSeason, controls.ModeCheckbox)
	s.styles = controls.NewMultiSelect(s.store, types.FacetStyle, controls.ModeChips)
	s.pagination = controls.NewPagination(s.store)
	s.chips = controls.NewChipBar(s.store)

	s.store.Hydrate(queryValues)
	s.slider.Sync()
	return s
}

// Mount wires the dependency chain and starts resolution. The initial
// fetch is buffered until both route slugs resolve; edits made in the
// meantime collapse into that one fetch.
func (s *Session) Mount(ctx context.Context) {
	s.store.OnChange(func() {
		s.coordinator.Request(ctx, s.store.Filters(), s.store.Page().CurrentPage)
	})
	s.coordinator.OnResult(func(r query.Result) {
		s.mu.Lock()
		s.store.ApplyTotal(r.TotalRecords)
		s.store.InitMaxPrice(r.MaxPrice)
		s.slider.Sync()
		s.mu.Unlock()
	})
	s.resolver.OnReady(func(resolved resolve.ResolvedContext) {
		s.coordinator.OpenGate(ctx, resolved)
	})

	s.coordinator.Request(ctx, s.store.Filters(), s.store.Page().CurrentPage)
	s.resolving.Add(1)
	go func() {
		defer s.resolving.Done()
		s.resolver.Resolve(ctx, s.collectionSlug, s.categorySlug)
	}()
}

// Settle blocks until resolution and any issued fetches finish. Useful
// for the request-scoped BFF path and tests; an interactive frontend
// just keeps reading View.
func (s *Session) Settle() {
	s.resolving.Wait()
	s.coordinator.Wait()
}

func (s *Session) Store() *state.Store { return s.store }

// --- facet toggles (immediate commit) ---

func (s *Session) ToggleSeason(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seasons.Toggle(value)
}

func (s *Session) ToggleStyle(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.styles.Toggle(value)
}

// --- price slider (transient until submit) ---

func (s *Session) DragPriceMin(value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slider.SetMin(value)
}

func (s *Session) DragPriceMax(value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slider.SetMax(value)
}

func (s *Session) SubmitPrice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slider.Submit()
	s.slider.Sync()
}

// --- keyword (explicit submit) ---

func (s *Session) SetKeyword(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.SetKeyword(value)
}

func (s *Session) SubmitKeyword() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.SubmitKeyword()
}

// --- pagination ---

func (s *Session) SelectPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagination.Select(page)
}

func (s *Session) SelectEllipsis() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagination.SelectEllipsis()
}

func (s *Session) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagination.Next()
}

func (s *Session) PrevPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pagination.Prev()
}

// --- chips ---

func (s *Session) RemoveChip(chip controls.Chip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chips.Remove(chip)
}

func (s *Session) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chips.ClearAll()
}

// --- sort ---

func (s *Session) SetSort(key types.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.SetSort(key)
}

// ClickCategory navigates to a category path. The gate closes, the
// context re-resolves from scratch and the buffered fetch runs when it
// reopens.
func (s *Session) ClickCategory(ctx context.Context, category *types.Category) {
	s.mu.Lock()
	s.coordinator.CloseGate()
	if category != nil {
		s.categorySlug = types.Slugify(category.Name)
	} else {
		s.categorySlug = ""
	}
	categorySlug := s.categorySlug
	s.store.SetCategory(category)
	s.mu.Unlock()

	s.resolving.Add(1)
	go func() {
		defer s.resolving.Done()
		s.resolver.Resolve(ctx, s.collectionSlug, categorySlug)
	}()
}
