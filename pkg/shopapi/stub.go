package shopapi

import (
	"context"
	"sync"

	"github.com/hylla/browse/pkg/types"
)

// StubClient is an in-memory Client used in tests and local wiring. It
// records every product query it receives; BeforeProducts can delay or
// reorder responses to exercise the staleness guard.
type StubClient struct {
	Collections []types.Collection
	Categories  []types.Category
	Products    []types.Product
	MaxPrice    float64

	CollectionsErr error
	CategoriesErr  error
	ProductsErr    error

	BeforeProducts func(q ProductQuery)
	Respond        func(q ProductQuery) *ProductPage

	mu      sync.Mutex
	queries []ProductQuery
}

func (s *StubClient) GetCollections(ctx context.Context, keyword string) ([]types.Collection, error) {
	if s.CollectionsErr != nil {
		return nil, s.CollectionsErr
	}
	return s.Collections, nil
}

func (s *StubClient) GetCategories(ctx context.Context) ([]types.Category, error) {
	if s.CategoriesErr != nil {
		return nil, s.CategoriesErr
	}
	return s.Categories, nil
}

func (s *StubClient) GetProducts(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.mu.Unlock()
	if s.BeforeProducts != nil {
		s.BeforeProducts(q)
	}
	if s.ProductsErr != nil {
		return nil, s.ProductsErr
	}
	if s.Respond != nil {
		return s.Respond(q), nil
	}
	from := q.Offset
	if from > len(s.Products) {
		from = len(s.Products)
	}
	to := from + q.Limit
	if q.Limit <= 0 || to > len(s.Products) {
		to = len(s.Products)
	}
	return &ProductPage{
		Products:     s.Products[from:to],
		MaxPrice:     s.MaxPrice,
		TotalRecords: len(s.Products),
	}, nil
}

// Queries returns a copy of the product queries seen so far.
func (s *StubClient) Queries() []ProductQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ProductQuery, len(s.queries))
	copy(out, s.queries)
	return out
}

// LastQuery returns the most recent product query, or a zero value.
func (s *StubClient) LastQuery() ProductQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		return ProductQuery{}
	}
	return s.queries[len(s.queries)-1]
}
