package types

import (
	"testing"
	"time"
)

func testProducts() []Product {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Product{
		{Id: "a", BasePrice: 30, RatingAvg: 4.0, CreatedAt: base.AddDate(0, 1, 0)},
		{Id: "b", BasePrice: 10, RatingAvg: 4.8, CreatedAt: base},
		{Id: "c", BasePrice: 20, RatingAvg: 4.8, CreatedAt: base.AddDate(0, 2, 0)},
	}
}

func ids(products []Product) string {
	out := ""
	for _, p := range products {
		out += p.Id
	}
	return out
}

func TestSortedDefaultKeepsServerOrder(t *testing.T) {
	products := testProducts()
	sorted := Sorted(products, SortDefault)
	if ids(sorted) != "abc" {
		t.Errorf("Expected server order abc, got %v", ids(sorted))
	}
}

func TestSortedByPrice(t *testing.T) {
	if got := ids(Sorted(testProducts(), SortPriceAsc)); got != "bca" {
		t.Errorf("Expected bca, got %v", got)
	}
	if got := ids(Sorted(testProducts(), SortPriceDesc)); got != "acb" {
		t.Errorf("Expected acb, got %v", got)
	}
}

func TestSortedByRatingIsStable(t *testing.T) {
	// b and c tie on rating; stable sort keeps server order between them
	if got := ids(Sorted(testProducts(), SortRating)); got != "bca" {
		t.Errorf("Expected bca, got %v", got)
	}
}

func TestSortedByAge(t *testing.T) {
	if got := ids(Sorted(testProducts(), SortNewest)); got != "cab" {
		t.Errorf("Expected cab, got %v", got)
	}
	if got := ids(Sorted(testProducts(), SortOldest)); got != "bac" {
		t.Errorf("Expected bac, got %v", got)
	}
}

func TestSortedDoesNotMutateInput(t *testing.T) {
	products := testProducts()
	Sorted(products, SortPriceAsc)
	if ids(products) != "abc" {
		t.Errorf("Expected input untouched, got %v", ids(products))
	}
}

func TestParseSortKey(t *testing.T) {
	if got := ParseSortKey("price-desc"); got != SortPriceDesc {
		t.Errorf("Expected price-desc, got %v", got)
	}
	if got := ParseSortKey("whatever"); got != SortDefault {
		t.Errorf("Expected default for unknown key, got %v", got)
	}
	if got := ParseSortKey(""); got != SortDefault {
		t.Errorf("Expected default for empty key, got %v", got)
	}
}

func TestPagesFor(t *testing.T) {
	cases := []struct {
		records int
		pages   int
	}{
		{0, 0},
		{1, 1},
		{12, 1},
		{13, 2},
		{120, 10},
	}
	for _, c := range cases {
		if got := PagesFor(c.records); got != c.pages {
			t.Errorf("PagesFor(%d): expected %d, got %d", c.records, c.pages, got)
		}
	}
}

func TestSlugify(t *testing.T) {
	if got := Slugify("Party Dresses"); got != "party-dresses" {
		t.Errorf("Expected party-dresses, got %v", got)
	}
	if !SlugMatches("DRESSES", "Dresses") {
		t.Error("Expected slug match to be case insensitive")
	}
	if SlugMatches("skirts", "Dresses") {
		t.Error("Expected mismatching slug to fail")
	}
}
