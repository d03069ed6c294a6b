// Package preload performs the three-way parallel, chunked batch fetch
// of reference data for a list of order ids, with an optional caching
// decorator.
package preload

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/merkulovlad/orderpipe/internal/model"
	"github.com/merkulovlad/orderpipe/internal/repository"
)

// Preloader builds a ProcessingContext for a batch of order ids.
type Preloader interface {
	Preload(ctx context.Context, orderIDs []string) (model.ProcessingContext, error)
}

// BasePreloader spawns three sibling tasks (customer, inventory,
// pricing) against the repository and joins before returning. Each
// task's internal chunk parallelism is the repository's own concern
// (its dbConcurrency setting); this stage guarantees only that the
// three top-level fetches run concurrently.
type BasePreloader struct {
	repo repository.Repository
}

var _ Preloader = (*BasePreloader)(nil)

func NewBasePreloader(repo repository.Repository) *BasePreloader {
	return &BasePreloader{repo: repo}
}

func (p *BasePreloader) Preload(ctx context.Context, orderIDs []string) (model.ProcessingContext, error) {
	g, gctx := errgroup.WithContext(ctx)

	var customers map[string]model.Customer
	var inventory map[string]model.Inventory
	var pricing map[string]model.Pricing

	g.Go(func() error {
		c, err := p.repo.BatchFetchCustomerData(gctx, orderIDs)
		customers = c
		return err
	})
	g.Go(func() error {
		i, err := p.repo.BatchFetchInventoryData(gctx, orderIDs)
		inventory = i
		return err
	})
	g.Go(func() error {
		pr, err := p.repo.BatchFetchPricingData(gctx, orderIDs)
		pricing = pr
		return err
	})

	if err := g.Wait(); err != nil {
		return model.ProcessingContext{}, err
	}

	return model.ProcessingContext{Customers: customers, Inventory: inventory, Pricing: pricing}, nil
}
