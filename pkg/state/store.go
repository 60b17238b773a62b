package state

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/hylla/browse/pkg/types"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// queryState is the flat shape of the browsing query string. The facet
// lists are comma-joined single parameters, decoded manually below.
type queryState struct {
	Page      int    `schema:"page"`
	PriceFrom int    `schema:"price_from"`
	PriceTo   int    `schema:"price_to"`
	Season    string `schema:"season"`
	Style     string `schema:"style"`
	Keyword   string `schema:"keyword"`
	Sort      string `schema:"sort"`
}

// Store is the committed filter model plus page, the only writer of the
// query parameters it owns. Every mutation reserializes through the
// navigator; no other component touches the URL.
//
// The store itself is not synchronized; the owning session serializes
// access the way a UI event loop would.
type Store struct {
	options types.FacetOptions
	nav     Navigator

	collectionSlug string

	filters  types.Filters
	page     types.PageState
	sortKey  types.SortKey
	maxPrice int

	pendingKeyword string
	onChange       func()
}

func NewStore(options types.FacetOptions, nav Navigator) *Store {
	return &Store{
		options: options,
		nav:     nav,
		filters: types.NewFilters(),
		page:    types.PageState{CurrentPage: 1},
		sortKey: types.SortDefault,
	}
}

// OnChange registers the single change subscriber (the coordinator's
// re-fetch trigger).
func (s *Store) OnChange(fn func()) { s.onChange = fn }

// SetCollectionSlug sets the path prefix used for category navigation.
func (s *Store) SetCollectionSlug(slug string) { s.collectionSlug = slug }

func (s *Store) Filters() types.Filters      { return s.filters.Clone() }
func (s *Store) Page() types.PageState       { return s.page }
func (s *Store) SortKey() types.SortKey      { return s.sortKey }
func (s *Store) MaxPrice() int               { return s.maxPrice }
func (s *Store) PendingKeyword() string      { return s.pendingKeyword }
func (s *Store) Options() types.FacetOptions { return s.options }

// Hydrate loads filters, page and sort from an externally supplied query
// string. Malformed or out-of-range values fall back to their defaults
// rather than erroring; the URL is editable by anyone.
func (s *Store) Hydrate(query url.Values) {
	qs := queryState{}
	// decode errors mean a malformed parameter; valid fields are still
	// populated, the rest keep their zero defaults
	_ = decoder.Decode(&qs, query)

	s.page.CurrentPage = qs.Page
	if s.page.CurrentPage < 1 {
		s.page.CurrentPage = 1
	}

	from := max(qs.PriceFrom, 0)
	to := max(qs.PriceTo, 0)
	if to > 0 && from > to {
		// inverted range is treated as absent
		from, to = 0, 0
	}
	s.filters.Price = types.PriceRange{From: from, To: to}

	s.filters.Seasons = s.parseFacetList(types.FacetSeason, qs.Season)
	s.filters.Styles = s.parseFacetList(types.FacetStyle, qs.Style)
	s.filters.Keyword = strings.TrimSpace(qs.Keyword)
	s.pendingKeyword = s.filters.Keyword
	s.sortKey = types.ParseSortKey(qs.Sort)
}

func (s *Store) parseFacetList(kind types.FacetKind, joined string) types.StringSet {
	set := types.NewStringSet()
	if joined == "" {
		return set
	}
	for _, value := range strings.Split(joined, ",") {
		value = strings.TrimSpace(value)
		if s.options.Allows(kind, value) {
			set.Add(value)
		}
	}
	return set
}

// Serialize writes the current state back out. Empty and zero fields are
// omitted entirely; page is always present so shared links are explicit
// about position.
func (s *Store) Serialize() url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(s.page.CurrentPage))
	// the full default range {0, maxPrice} stays out of the URL, so a
	// freshly discovered price ceiling never dirties a shared link
	if s.filters.Price.From > 0 {
		query.Set("price_from", strconv.Itoa(s.filters.Price.From))
	}
	if s.filters.Price.To > 0 && (s.filters.Price.From > 0 || s.filters.Price.To != s.maxPrice) {
		query.Set("price_to", strconv.Itoa(s.filters.Price.To))
	}
	if s.filters.Seasons.Len() > 0 {
		query.Set("season", s.filters.Seasons.Join())
	}
	if s.filters.Styles.Len() > 0 {
		query.Set("style", s.filters.Styles.Join())
	}
	if s.filters.Keyword != "" {
		query.Set("keyword", s.filters.Keyword)
	}
	if s.sortKey != types.SortDefault {
		query.Set("sort", string(s.sortKey))
	}
	return query
}

// changed reserializes to the URL and wakes the subscriber. Filter edits
// reset the page to 1; only the pagination controls pick other pages.
func (s *Store) changed(resetPage bool) {
	if resetPage {
		s.page.CurrentPage = 1
	}
	if s.nav != nil {
		s.nav.ReplaceQuery(s.Serialize())
	}
	if s.onChange != nil {
		s.onChange()
	}
}

// CommitPrice copies a committed range into the filters. Bounds are
// clamped to [0, maxPrice] once a max price is known.
func (s *Store) CommitPrice(from, to int) {
	if s.maxPrice > 0 {
		from = types.Clamp(from, 0, s.maxPrice)
		to = types.Clamp(to, 0, s.maxPrice)
	}
	if from > to {
		from, to = to, from
	}
	s.filters.Price = types.PriceRange{From: from, To: to}
	s.changed(true)
}

func (s *Store) AddFacetValue(kind types.FacetKind, value string) {
	if !s.options.Allows(kind, value) {
		return
	}
	set := s.filters.Set(kind)
	if set.Has(value) {
		return
	}
	set.Add(value)
	s.changed(true)
}

// RemoveFacetValue is idempotent; removing an absent value is a no-op
// with no navigation side effect.
func (s *Store) RemoveFacetValue(kind types.FacetKind, value string) {
	set := s.filters.Set(kind)
	if !set.Has(value) {
		return
	}
	set.Remove(value)
	s.changed(true)
}

// SetKeyword only updates the working value; nothing is committed until
// SubmitKeyword runs.
func (s *Store) SetKeyword(value string) {
	s.pendingKeyword = value
}

func (s *Store) SubmitKeyword() {
	keyword := strings.TrimSpace(s.pendingKeyword)
	if keyword == s.filters.Keyword {
		return
	}
	s.filters.Keyword = keyword
	s.changed(true)
}

// SetCategory performs a full path navigation: category is encoded in
// the route, not the query string.
func (s *Store) SetCategory(category *types.Category) {
	s.filters.Category = category
	s.page.CurrentPage = 1
	path := "/collections/" + s.collectionSlug
	if category != nil {
		path += "/" + types.Slugify(category.Name)
	}
	if s.nav != nil {
		s.nav.NavigatePath(path, s.Serialize())
	}
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *Store) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if page == s.page.CurrentPage {
		return
	}
	s.page.CurrentPage = page
	s.changed(false)
}

func (s *Store) SetSort(key types.SortKey) {
	if key == s.sortKey {
		return
	}
	s.sortKey = key
	// sort is page-local; reserialize without refetching
	if s.nav != nil {
		s.nav.ReplaceQuery(s.Serialize())
	}
}

// ClearAll resets the price to the full discovered range and empties
// both facet sets. Keyword and category stay untouched.
func (s *Store) ClearAll() {
	s.filters.Price = types.PriceRange{From: 0, To: s.maxPrice}
	s.filters.Seasons = types.NewStringSet()
	s.filters.Styles = types.NewStringSet()
	s.changed(true)
}

// ResetPrice puts the committed range back to the full bounds. Wired to
// the price chip's remove affordance.
func (s *Store) ResetPrice() {
	full := types.PriceRange{From: 0, To: s.maxPrice}
	if s.filters.Price == full {
		return
	}
	s.filters.Price = full
	s.changed(true)
}

// InitMaxPrice records the server-discovered price ceiling. The first
// discovery also initializes an unset committed upper bound, without a
// change notification: the fetch that discovered it already reflects it.
func (s *Store) InitMaxPrice(maxPrice float64) {
	ceiling := int(math.Ceil(maxPrice))
	if ceiling <= 0 {
		return
	}
	s.maxPrice = ceiling
	if s.filters.Price.To == 0 {
		s.filters.Price.To = ceiling
	}
}

// ApplyTotal folds a fetch result's record count into the page state.
func (s *Store) ApplyTotal(totalRecords int) {
	s.page.SetTotal(totalRecords)
}
