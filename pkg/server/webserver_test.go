package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/hylla/browse/pkg/browse"
	"github.com/hylla/browse/pkg/shopapi"
	"github.com/hylla/browse/pkg/types"
)

func newStub() *shopapi.StubClient {
	return &shopapi.StubClient{
		Collections: []types.Collection{{Id: "col-w", Name: "Women"}},
		Categories: []types.Category{
			{Id: "cat-d", Name: "Dresses", CollectionId: "col-w"},
		},
		Products: []types.Product{{Id: "p1", BasePrice: 99}},
		MaxPrice: 250,
	}
}

func TestBrowseEndpoint(t *testing.T) {
	stub := newStub()
	ws := WebServer{Client: stub, Options: types.DefaultFacetOptions()}
	handler := ws.ClientHandler()

	req := httptest.NewRequest(http.MethodGet, "/browse/women/dresses?page=1&season=Summer", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var view browse.View
	if err := sonic.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("Expected a view payload, got %v", err)
	}
	if view.Phase != "ready" {
		t.Errorf("Expected ready phase, got %v", view.Phase)
	}
	if len(view.Products) != 1 || view.Products[0].Id != "p1" {
		t.Errorf("Expected products in view, got %+v", view.Products)
	}
	if len(view.Seasons.Selected) != 1 || view.Seasons.Selected[0] != "Summer" {
		t.Errorf("Expected hydrated season selection, got %v", view.Seasons.Selected)
	}

	last := stub.LastQuery()
	if last.CollectionId != "col-w" || last.CategoryId != "cat-d" {
		t.Errorf("Expected resolved ids, got %+v", last)
	}
	if len(last.Seasons) != 1 || last.Seasons[0] != "Summer" {
		t.Errorf("Expected seasons=Summer on the product query, got %+v", last)
	}
}

func TestBrowseEndpointSetsSessionCookie(t *testing.T) {
	ws := WebServer{Client: newStub(), Options: types.DefaultFacetOptions()}
	rec := httptest.NewRecorder()
	ws.ClientHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/browse/women", nil))

	cookies := rec.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == "sid" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a sid cookie, got %v", cookies)
	}
}

func TestBrowseUnknownCollectionStillResponds(t *testing.T) {
	ws := WebServer{Client: newStub(), Options: types.DefaultFacetOptions()}
	rec := httptest.NewRecorder()
	ws.ClientHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/browse/kids", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected a degraded 200, got %d", rec.Code)
	}
	var view browse.View
	if err := sonic.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("Expected a view payload, got %v", err)
	}
	if view.Phase != "collection-not-found" {
		t.Errorf("Expected collection-not-found, got %v", view.Phase)
	}
	if len(view.Notices) == 0 {
		t.Error("Expected a notice in the view")
	}
	if len(view.Products) != 0 {
		t.Errorf("Expected no products, got %d", len(view.Products))
	}
}

func TestCollectionsEndpoint(t *testing.T) {
	ws := WebServer{Client: newStub(), Options: types.DefaultFacetOptions()}
	rec := httptest.NewRecorder()
	ws.ClientHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/collections", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var collections []types.Collection
	if err := sonic.Unmarshal(rec.Body.Bytes(), &collections); err != nil {
		t.Fatalf("Expected collections payload, got %v", err)
	}
	if len(collections) != 1 || collections[0].Name != "Women" {
		t.Errorf("Expected the women collection, got %+v", collections)
	}
}
