package transform

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/merkulovlad/orderpipe/internal/model"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestProcessOrders_HappyPathScenario1(t *testing.T) {
	orders := []model.Order{
		{ID: "O1", CustomerID: "CUST-1", Amount: mustDecimal(t, "50")},
		{ID: "O2", CustomerID: "CUST-1", Amount: mustDecimal(t, "150")},
		{ID: "O3", CustomerID: "CUST-1", Amount: mustDecimal(t, "1000")},
	}

	pc := model.NewProcessingContext()
	for _, o := range orders {
		pc.Customers[o.ID] = model.Customer{CustomerID: "CUST-1", Name: "Acme Corp", Tier: model.TierGold}
		pc.Inventory[o.ID] = model.Inventory{OrderID: o.ID, QuantityAvailable: 20, WarehouseLocation: "WH-EAST"}
		pc.Pricing[o.ID] = model.Pricing{
			OrderID:   o.ID,
			BasePrice: o.Amount,
			Discount:  decimal.Zero,
			TaxRate:   mustDecimal(t, "0.08"),
		}
	}

	tr := New(nopLogger{}, 0, "worker-1")
	successes, failures := tr.ProcessOrders(context.Background(), orders, pc)

	require.Empty(t, failures)
	require.Len(t, successes, 3)

	byID := map[string]model.ProcessedOrder{}
	for _, s := range successes {
		byID[s.OrderID] = s
	}
	require.Equal(t, "48.6", byID["O1"].FinalPrice.String())
	require.Equal(t, "145.8", byID["O2"].FinalPrice.String())
	require.Equal(t, "972", byID["O3"].FinalPrice.String())
	for _, s := range successes {
		require.Equal(t, model.StatusReadyToShip, s.Status)
	}
}

func TestTransformOne_MissingPricingYieldsZero(t *testing.T) {
	order := model.Order{ID: "O1", CustomerID: "C1"}
	pc := model.NewProcessingContext()
	pc.Inventory["O1"] = model.Inventory{QuantityAvailable: 5}

	out, err := transformOne(order, pc, "worker-1")
	require.NoError(t, err)
	require.True(t, out.FinalPrice.IsZero())
	require.Equal(t, model.StatusLowStock, out.Status)
	require.Equal(t, "Unknown", out.CustomerName)
}

func TestTransformOne_MissingInventoryIsPendingInventory(t *testing.T) {
	order := model.Order{ID: "O1"}
	pc := model.NewProcessingContext()

	out, err := transformOne(order, pc, "worker-1")
	require.NoError(t, err)
	require.Equal(t, model.StatusPendingInventory, out.Status)
}

func TestInventoryStatus_Boundaries(t *testing.T) {
	require.Equal(t, model.StatusReadyToShip, inventoryStatus(11))
	require.Equal(t, model.StatusLowStock, inventoryStatus(10))
	require.Equal(t, model.StatusLowStock, inventoryStatus(1))
	require.Equal(t, model.StatusBackorder, inventoryStatus(0))
}

func TestProcessOrders_CountsPartition(t *testing.T) {
	orders := []model.Order{{ID: "O1"}, {ID: "O2"}, {ID: "O3"}}
	pc := model.NewProcessingContext()
	tr := New(nopLogger{}, 2, "worker-1")

	successes, failures := tr.ProcessOrders(context.Background(), orders, pc)
	require.Equal(t, len(orders), len(successes)+len(failures))
}

func TestProcessOrders_CancelledContextYieldsInterrupted(t *testing.T) {
	orders := []model.Order{{ID: "O1"}, {ID: "O2"}}
	pc := model.NewProcessingContext()
	// Zero capacity forces every acquire onto the wait path, where a
	// cancelled context is observed immediately rather than racing
	// past it on an uncontended fast path.
	tr := &Transformer{log: nopLogger{}, processingConcurrency: 0, processedBy: "worker-1"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	successes, failures := tr.ProcessOrders(ctx, orders, pc)
	require.Empty(t, successes)
	require.Len(t, failures, 2)
	for _, f := range failures {
		require.Equal(t, "InterruptedException", f.ExceptionType)
	}
}

type nopLogger struct{}

func (nopLogger) Info(args ...interface{})                  {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Error(args ...interface{})                 {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatal(args ...interface{})                 {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}
func (nopLogger) Sync() error                               { return nil }
