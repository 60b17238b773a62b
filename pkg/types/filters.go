package types

import (
	"slices"
	"strings"
)

type FacetKind string

const (
	FacetSeason FacetKind = "season"
	FacetStyle  FacetKind = "style"
)

// FacetOptions holds the fixed value enumerations for the toggle facets.
// Hydration drops values outside these lists.
type FacetOptions struct {
	Seasons []string `toml:"seasons"`
	Styles  []string `toml:"styles"`
}

func DefaultFacetOptions() FacetOptions {
	return FacetOptions{
		Seasons: []string{"Spring", "Summer", "Autumn", "Winter"},
		Styles:  []string{"Casual", "Formal", "Party", "Gym"},
	}
}

func (o FacetOptions) For(kind FacetKind) []string {
	if kind == FacetStyle {
		return o.Styles
	}
	return o.Seasons
}

func (o FacetOptions) Allows(kind FacetKind, value string) bool {
	return slices.Contains(o.For(kind), value)
}

// StringSet is an unordered facet value set.
type StringSet map[string]struct{}

func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *StringSet) Add(value string) {
	if *s == nil {
		*s = make(StringSet)
	}
	(*s)[value] = struct{}{}
}

// Remove is a no-op when the value is absent. Removing the last value
// leaves an empty set, which callers treat the same as an absent facet.
func (s StringSet) Remove(value string) {
	delete(s, value)
}

func (s StringSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

func (s StringSet) Len() int { return len(s) }

// Values returns the members sorted, for stable serialization.
func (s StringSet) Values() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

func (s StringSet) Join() string {
	return strings.Join(s.Values(), ",")
}

func (s StringSet) Clone() StringSet {
	out := make(StringSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// PriceRange is a closed price interval in whole currency units.
type PriceRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (p PriceRange) IsZero() bool {
	return p.From == 0 && p.To == 0
}

// Filters is the committed filter model, the single source the URL is
// serialized from.
type Filters struct {
	Price    PriceRange
	Seasons  StringSet
	Styles   StringSet
	Category *Category
	Keyword  string
}

func NewFilters() Filters {
	return Filters{
		Seasons: NewStringSet(),
		Styles:  NewStringSet(),
	}
}

func (f Filters) Set(kind FacetKind) StringSet {
	if kind == FacetStyle {
		return f.Styles
	}
	return f.Seasons
}

func (f *Filters) Clone() Filters {
	out := *f
	out.Seasons = f.Seasons.Clone()
	out.Styles = f.Styles.Clone()
	return out
}

func (f *Filters) Equal(other *Filters) bool {
	if f.Price != other.Price || f.Keyword != other.Keyword {
		return false
	}
	if (f.Category == nil) != (other.Category == nil) {
		return false
	}
	if f.Category != nil && f.Category.Id != other.Category.Id {
		return false
	}
	return slices.Equal(f.Seasons.Values(), other.Seasons.Values()) &&
		slices.Equal(f.Styles.Values(), other.Styles.Values())
}
