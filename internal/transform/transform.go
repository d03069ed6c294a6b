// Package transform applies the pure per-order business function
// computing a ProcessedOrder from an Order plus the preloaded
// ProcessingContext, fanned out under a global counting semaphore.
package transform

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"

	"github.com/merkulovlad/orderpipe/internal/logger"
	"github.com/merkulovlad/orderpipe/internal/model"
	"github.com/merkulovlad/orderpipe/internal/pipelineerr"
	"github.com/merkulovlad/orderpipe/internal/trace"
)

const (
	tierBonusGold    = "0.10"
	tierBonusPremium = "0.05"
)

// Transformer fans one goroutine per order out to a bounded semaphore,
// applies the pure transform, and collects successes/failures
// concurrently. It never returns an error itself; per-order failures
// are captured as FailedOrder entries.
type Transformer struct {
	log                   logger.InterfaceLogger
	processingConcurrency int64
	processedBy           string
}

func New(log logger.InterfaceLogger, processingConcurrency int64, processedBy string) *Transformer {
	if processingConcurrency <= 0 {
		processingConcurrency = 100
	}
	return &Transformer{log: log, processingConcurrency: processingConcurrency, processedBy: processedBy}
}

// ProcessOrders applies the transform to every order, gated by the
// transformer's processingConcurrency semaphore. Context cancellation
// surfaces as a FailedOrder with ExceptionType "InterruptedException"
// for any order whose permit acquisition was interrupted; orders whose
// work already started run to completion.
func (t *Transformer) ProcessOrders(ctx context.Context, orders []model.Order, pc model.ProcessingContext) ([]model.ProcessedOrder, []model.FailedOrder) {
	sem := semaphore.NewWeighted(t.processingConcurrency)
	info := trace.FromContext(ctx)

	var mu sync.Mutex
	successes := make([]model.ProcessedOrder, 0, len(orders))
	failures := make([]model.FailedOrder, 0)

	var wg sync.WaitGroup
	for _, order := range orders {
		order := order
		wg.Add(1)
		go func() {
			defer wg.Done()
			taskSpan := info.NewSpan()

			if err := sem.Acquire(ctx, 1); err != nil {
				mu.Lock()
				failures = append(failures, model.FailedOrder{
					Order:         order,
					ErrorMessage:  err.Error(),
					ExceptionType: "InterruptedException",
				})
				mu.Unlock()
				return
			}
			defer sem.Release(1)

			processed, err := transformOne(order, pc, t.processedBy)
			processed.TraceID = taskSpan.TraceID
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				te := &pipelineerr.TransformError{OrderID: order.ID, Err: err}
				failures = append(failures, model.FailedOrder{
					Order:         order,
					ErrorMessage:  te.Error(),
					ExceptionType: "TransformError",
				})
				return
			}
			successes = append(successes, processed)
		}()
	}
	wg.Wait()

	return successes, failures
}

// transformOne computes the per-order final price and shipping status.
// It degrades deterministically when reference data is absent and never
// returns an error today; the signature keeps that option open for a
// future validation rule.
func transformOne(order model.Order, pc model.ProcessingContext, processedBy string) (model.ProcessedOrder, error) {
	customer, hasCustomer := pc.Customers[order.ID]
	inventory, hasInventory := pc.Inventory[order.ID]
	pricing, hasPricing := pc.Pricing[order.ID]

	customerName := "Unknown"
	customerTier := model.TierStandard
	if hasCustomer {
		customerName = customer.Name
		customerTier = customer.Tier
	}

	finalPrice := decimal.Zero
	if hasPricing {
		finalPrice = computeFinalPrice(pricing, customerTier)
	}

	warehouse := "UNKNOWN"
	status := model.StatusPendingInventory
	if hasInventory {
		warehouse = inventory.WarehouseLocation
		status = inventoryStatus(inventory.QuantityAvailable)
	}

	return model.ProcessedOrder{
		OrderID:           order.ID,
		CustomerID:        order.CustomerID,
		CustomerName:      customerName,
		CustomerTier:      customerTier,
		FinalPrice:        finalPrice,
		WarehouseLocation: warehouse,
		Status:            status,
		ProcessedAt:       time.Now().UTC(),
		ProcessedBy:       processedBy,
	}, nil
}

// computeFinalPrice applies finalPrice = round2(basePrice *
// (1 - discountEffective) * (1 + taxRate)), half-up at scale 2.
func computeFinalPrice(p model.Pricing, tier string) decimal.Decimal {
	discountEffective := p.Discount.Add(tierBonus(tier))
	factor := decimal.NewFromInt(1).Sub(discountEffective)
	taxed := decimal.NewFromInt(1).Add(p.TaxRate)
	return p.BasePrice.Mul(factor).Mul(taxed).Round(2)
}

func tierBonus(tier string) decimal.Decimal {
	switch tier {
	case model.TierGold:
		return decimal.RequireFromString(tierBonusGold)
	case model.TierPremium:
		return decimal.RequireFromString(tierBonusPremium)
	default:
		return decimal.Zero
	}
}

func inventoryStatus(qty int) string {
	switch {
	case qty > 10:
		return model.StatusReadyToShip
	case qty > 0:
		return model.StatusLowStock
	default:
		return model.StatusBackorder
	}
}
