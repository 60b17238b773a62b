package browse

import (
	"context"
	"net/url"
	"testing"

	"github.com/hylla/browse/pkg/shopapi"
	"github.com/hylla/browse/pkg/types"
)

func newStub() *shopapi.StubClient {
	return &shopapi.StubClient{
		Collections: []types.Collection{{Id: "col-w", Name: "Women"}},
		Categories: []types.Category{
			{Id: "cat-d", Name: "Dresses", CollectionId: "col-w"},
		},
		Products: []types.Product{
			{Id: "p1", BasePrice: 120},
			{Id: "p2", BasePrice: 80},
		},
		MaxPrice: 250,
	}
}

func mount(t *testing.T, stub *shopapi.StubClient, categorySlug string, query url.Values) *Session {
	t.Helper()
	sess := NewSession(stub, types.DefaultFacetOptions(), "women", categorySlug, query)
	sess.Mount(context.Background())
	sess.Settle()
	return sess
}

func TestMountResolvesAndFetches(t *testing.T) {
	stub := newStub()
	sess := mount(t, stub, "dresses", url.Values{"page": []string{"1"}})

	queries := stub.Queries()
	if len(queries) != 1 {
		t.Fatalf("Expected exactly one initial fetch, got %d", len(queries))
	}
	if queries[0].CollectionId != "col-w" || queries[0].CategoryId != "cat-d" {
		t.Errorf("Expected resolved ids on the query, got %+v", queries[0])
	}

	view := sess.View()
	if view.Phase != "ready" {
		t.Errorf("Expected ready phase, got %v", view.Phase)
	}
	if len(view.Products) != 2 {
		t.Errorf("Expected 2 products, got %d", len(view.Products))
	}
	if view.Page.TotalRecords != 2 || view.Page.TotalPages != 1 {
		t.Errorf("Expected totals folded into page state, got %+v", view.Page)
	}
}

func TestSeasonToggleUpdatesUrlAndRefetches(t *testing.T) {
	stub := newStub()
	sess := mount(t, stub, "dresses", url.Values{"page": []string{"1"}})

	sess.ToggleSeason("Summer")
	sess.Settle()

	if got := sess.View().Url; got != "/collections/women/dresses?page=1&season=Summer" {
		t.Errorf("Unexpected url %v", got)
	}
	last := stub.LastQuery()
	if len(last.Seasons) != 1 || last.Seasons[0] != "Summer" {
		t.Errorf("Expected fetch with seasons=Summer, got %+v", last)
	}
}

func TestMaxPriceInitializesCommittedBound(t *testing.T) {
	stub := newStub()
	sess := mount(t, stub, "", nil)

	if got := sess.Store().Filters().Price; got.From != 0 || got.To != 250 {
		t.Errorf("Expected committed price {0,250} after discovery, got %v", got)
	}
	view := sess.View()
	if view.Price.Bounds.To != 250 {
		t.Errorf("Expected slider bounds up to 250, got %+v", view.Price.Bounds)
	}
}

func TestPageChangeUsesCommittedPriceNotTransient(t *testing.T) {
	stub := newStub()
	stub.Products = make([]types.Product, 30) // 3 pages
	sess := mount(t, stub, "", nil)

	sess.DragPriceMin(50)
	sess.DragPriceMax(200)
	sess.SelectPage(2)
	sess.Settle()

	last := stub.LastQuery()
	if last.Offset != types.PageSize {
		t.Fatalf("Expected page 2 offset, got %+v", last)
	}
	// committed range is the discovered {0,250}: from omitted, to sent
	if last.PriceFrom != 0 || last.PriceTo != 250 {
		t.Errorf("Expected committed price {0,250}, got from=%d to=%d", last.PriceFrom, last.PriceTo)
	}
}

func TestSubmitPriceCommitsTransient(t *testing.T) {
	stub := newStub()
	sess := mount(t, stub, "", nil)

	sess.DragPriceMin(50)
	sess.DragPriceMax(200)
	sess.SubmitPrice()
	sess.Settle()

	last := stub.LastQuery()
	if last.PriceFrom != 50 || last.PriceTo != 200 {
		t.Errorf("Expected committed {50,200}, got from=%d to=%d", last.PriceFrom, last.PriceTo)
	}
	if got := sess.Store().Filters().Price; got.From != 50 || got.To != 200 {
		t.Errorf("Expected committed price, got %v", got)
	}
}

func TestUnresolvableCollectionNeverFetches(t *testing.T) {
	stub := newStub()
	sess := NewSession(stub, types.DefaultFacetOptions(), "kids", "", nil)
	sess.Mount(context.Background())
	sess.Settle()

	sess.ToggleSeason("Summer")
	sess.Settle()

	if len(stub.Queries()) != 0 {
		t.Errorf("Expected no product fetch for unresolved collection, got %d", len(stub.Queries()))
	}
	view := sess.View()
	if view.Phase != "collection-not-found" {
		t.Errorf("Expected collection-not-found, got %v", view.Phase)
	}
	if len(view.Notices) == 0 {
		t.Error("Expected a user-facing notice")
	}
}

func TestClickCategoryNavigatesAndRefetches(t *testing.T) {
	stub := newStub()
	sess := mount(t, stub, "", nil)

	sess.ClickCategory(context.Background(), &types.Category{Id: "cat-d", Name: "Dresses", CollectionId: "col-w"})
	sess.Settle()

	view := sess.View()
	if view.Url != "/collections/women/dresses?page=1" {
		t.Errorf("Expected category path navigation, got %v", view.Url)
	}
	last := stub.LastQuery()
	if last.CategoryId != "cat-d" {
		t.Errorf("Expected category-scoped fetch, got %+v", last)
	}
}

func TestViewBeforeSettleIsSafe(t *testing.T) {
	stub := newStub()
	sess := NewSession(stub, types.DefaultFacetOptions(), "women", "", nil)

	view := sess.View()
	if len(view.Products) != 0 {
		t.Errorf("Expected empty products before mount, got %d", len(view.Products))
	}
	if view.Phase != "idle" {
		t.Errorf("Expected idle phase, got %v", view.Phase)
	}
}

func TestSortAppliesToFetchedPageOnly(t *testing.T) {
	stub := newStub()
	sess := mount(t, stub, "", nil)
	fetches := len(stub.Queries())

	sess.SetSort(types.SortPriceAsc)
	sess.Settle()

	if len(stub.Queries()) != fetches {
		t.Errorf("Expected sort change to cause no fetch, got %d", len(stub.Queries())-fetches)
	}
	view := sess.View()
	if view.Products[0].Id != "p2" {
		t.Errorf("Expected cheapest first, got %v", view.Products[0].Id)
	}
}
