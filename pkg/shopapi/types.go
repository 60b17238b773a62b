package shopapi

import (
	"context"

	"github.com/hylla/browse/pkg/types"
)

// ProductQuery carries only the fields a caller wants sent; zero/empty
// fields are omitted from the outgoing request.
type ProductQuery struct {
	Limit        int
	Offset       int
	CollectionId string
	CategoryId   string
	PriceFrom    int
	PriceTo      int
	Seasons      []string
	Styles       []string
	Keyword      string
}

// ProductPage is one fetched page of results. MaxPrice is the highest
// base price across the matched set, used to bound the price slider.
type ProductPage struct {
	Products     []types.Product
	MaxPrice     float64
	TotalRecords int
}

// Client is the remote collaborator surface the browsing engine consumes.
type Client interface {
	GetCollections(ctx context.Context, keyword string) ([]types.Collection, error)
	GetCategories(ctx context.Context) ([]types.Category, error)
	GetProducts(ctx context.Context, q ProductQuery) (*ProductPage, error)
}
