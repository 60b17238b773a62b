package server

import (
	"context"
	"time"

	"github.com/hylla/browse/pkg/shopapi"
	"github.com/hylla/browse/pkg/types"
)

const lookupTtl = 10 * time.Minute

// CachedClient caches the collection and category lists in front of the
// remote services: they change rarely and every slug resolution reads
// them. Product queries always go to the origin. Cache errors degrade
// to a direct lookup.
type CachedClient struct {
	Origin shopapi.Client
	Cache  *Cache
}

func (c *CachedClient) GetCollections(ctx context.Context, keyword string) ([]types.Collection, error) {
	if c.Cache == nil {
		return c.Origin.GetCollections(ctx, keyword)
	}
	key := "collections:" + keyword
	var collections []types.Collection
	if err := c.Cache.Get(ctx, key, &collections); err == nil {
		return collections, nil
	}
	collections, err := c.Origin.GetCollections(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if err := c.Cache.Set(ctx, key, collections, lookupTtl); err != nil {
		cacheErrors.Inc()
	}
	return collections, nil
}

func (c *CachedClient) GetCategories(ctx context.Context) ([]types.Category, error) {
	if c.Cache == nil {
		return c.Origin.GetCategories(ctx)
	}
	var categories []types.Category
	if err := c.Cache.Get(ctx, "categories", &categories); err == nil {
		return categories, nil
	}
	categories, err := c.Origin.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.Cache.Set(ctx, "categories", categories, lookupTtl); err != nil {
		cacheErrors.Inc()
	}
	return categories, nil
}

func (c *CachedClient) GetProducts(ctx context.Context, q shopapi.ProductQuery) (*shopapi.ProductPage, error) {
	return c.Origin.GetProducts(ctx, q)
}
