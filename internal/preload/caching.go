package preload

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/merkulovlad/orderpipe/internal/cache"
	"github.com/merkulovlad/orderpipe/internal/model"
	"github.com/merkulovlad/orderpipe/internal/repository"
)

// CachingPreloader wraps a base fetch with the data caches. For each
// of the three data types it partitions the requested
// ids into hit/miss against that type's cache, fetches only the miss
// set from the repository, writes the fetched values back, and merges
// hit+fetched before returning. The three data types still fetch their
// miss sets concurrently, preserving the Preloader's three-way
// parallelism guarantee.
type CachingPreloader struct {
	repo           repository.Repository
	customerCache  cache.InterfaceCache[model.Customer]
	inventoryCache cache.InterfaceCache[model.Inventory]
	pricingCache   cache.InterfaceCache[model.Pricing]
}

var _ Preloader = (*CachingPreloader)(nil)

func NewCachingPreloader(
	repo repository.Repository,
	customerCache cache.InterfaceCache[model.Customer],
	inventoryCache cache.InterfaceCache[model.Inventory],
	pricingCache cache.InterfaceCache[model.Pricing],
) *CachingPreloader {
	return &CachingPreloader{
		repo:           repo,
		customerCache:  customerCache,
		inventoryCache: inventoryCache,
		pricingCache:   pricingCache,
	}
}

func (p *CachingPreloader) Preload(ctx context.Context, orderIDs []string) (model.ProcessingContext, error) {
	g, gctx := errgroup.WithContext(ctx)

	var customers map[string]model.Customer
	var inventory map[string]model.Inventory
	var pricing map[string]model.Pricing

	g.Go(func() error {
		result, err := fetchWithCache(gctx, orderIDs, p.customerCache, p.repo.BatchFetchCustomerData)
		customers = result
		return err
	})
	g.Go(func() error {
		result, err := fetchWithCache(gctx, orderIDs, p.inventoryCache, p.repo.BatchFetchInventoryData)
		inventory = result
		return err
	})
	g.Go(func() error {
		result, err := fetchWithCache(gctx, orderIDs, p.pricingCache, p.repo.BatchFetchPricingData)
		pricing = result
		return err
	})

	if err := g.Wait(); err != nil {
		return model.ProcessingContext{}, err
	}

	return model.ProcessingContext{Customers: customers, Inventory: inventory, Pricing: pricing}, nil
}

// fetchWithCache partitions ids into (hit, miss) against c, fetches only
// the miss set via fetch, writes results back to the cache, and merges
// hit+fetched. An empty miss set short-circuits the fetch call.
func fetchWithCache[V any](
	ctx context.Context,
	ids []string,
	c cache.InterfaceCache[V],
	fetch func(context.Context, []string) (map[string]V, error),
) (map[string]V, error) {
	merged := make(map[string]V, len(ids))
	var miss []string

	for _, id := range ids {
		if v, ok := c.Get(id); ok {
			merged[id] = v
			continue
		}
		miss = append(miss, id)
	}

	if len(miss) == 0 {
		return merged, nil
	}

	fetched, err := fetch(ctx, miss)
	if err != nil {
		return nil, err
	}
	for id, v := range fetched {
		c.Set(id, v)
		merged[id] = v
	}
	return merged, nil
}
