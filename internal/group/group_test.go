package group

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/merkulovlad/orderpipe/internal/model"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func TestGroup_ByCustomerScenario2(t *testing.T) {
	orders := []model.ProcessedOrder{
		{OrderID: "O1", CustomerID: "CUST-1", FinalPrice: d(t, "48.60")},
		{OrderID: "O2", CustomerID: "CUST-1", FinalPrice: d(t, "145.80")},
		{OrderID: "O3", CustomerID: "CUST-1", FinalPrice: d(t, "972.00")},
	}
	g := New(Config{Strategy: StrategyByCustomer, MinGroupSize: 2})

	grouped, individuals := g.Group(orders)
	require.Empty(t, individuals)
	require.Len(t, grouped, 1)
	require.Equal(t, 3, grouped[0].OrderCount)
	require.Equal(t, "1166.4", grouped[0].TotalAmount.String())
}

func TestGroup_BelowMinGroupSizeDegradesToIndividual(t *testing.T) {
	orders := []model.ProcessedOrder{
		{OrderID: "O1", CustomerID: "A"},
		{OrderID: "O2", CustomerID: "B"},
	}
	g := New(Config{Strategy: StrategyByCustomer, MinGroupSize: 2})

	grouped, individuals := g.Group(orders)
	require.Empty(t, grouped)
	require.Len(t, individuals, 2)
}

func TestGroup_None(t *testing.T) {
	orders := []model.ProcessedOrder{{OrderID: "O1"}, {OrderID: "O2"}}
	g := New(Config{Strategy: StrategyNone})

	grouped, individuals := g.Group(orders)
	require.Empty(t, grouped)
	require.Len(t, individuals, 2)
}

func TestGroup_ByWarehouseUnknownFallback(t *testing.T) {
	orders := []model.ProcessedOrder{
		{OrderID: "O1", WarehouseLocation: ""},
		{OrderID: "O2", WarehouseLocation: ""},
	}
	g := New(Config{Strategy: StrategyByWarehouse, MinGroupSize: 2})

	grouped, individuals := g.Group(orders)
	require.Empty(t, individuals)
	require.Len(t, grouped, 1)
	require.Equal(t, "UNKNOWN", grouped[0].GroupingKey)
}

func TestGroup_HighValuePartition(t *testing.T) {
	orders := []model.ProcessedOrder{
		{OrderID: "O1", FinalPrice: d(t, "1000")},
		{OrderID: "O2", FinalPrice: d(t, "2000")},
		{OrderID: "O3", FinalPrice: d(t, "10")},
	}
	g := New(Config{Strategy: StrategyHighValue, HighValueThreshold: d(t, "500"), MinGroupSize: 2})

	grouped, individuals := g.Group(orders)
	require.Len(t, grouped, 1)
	require.Equal(t, 2, grouped[0].OrderCount)
	require.Equal(t, "HIGH_VALUE", grouped[0].GroupingKey)
	require.Len(t, individuals, 1)
	require.Equal(t, "O3", individuals[0].OrderID)
}

func TestGroup_HighValueBelowMinGroupSizeAllIndividual(t *testing.T) {
	orders := []model.ProcessedOrder{
		{OrderID: "O1", FinalPrice: d(t, "1000")},
		{OrderID: "O2", FinalPrice: d(t, "10")},
	}
	g := New(Config{Strategy: StrategyHighValue, HighValueThreshold: d(t, "500"), MinGroupSize: 2})

	grouped, individuals := g.Group(orders)
	require.Empty(t, grouped)
	require.Len(t, individuals, 2)
}

func TestGroup_CountsPartitionInvariant(t *testing.T) {
	orders := []model.ProcessedOrder{
		{OrderID: "O1", CustomerID: "A"},
		{OrderID: "O2", CustomerID: "A"},
		{OrderID: "O3", CustomerID: "B"},
	}
	g := New(Config{Strategy: StrategyByCustomer, MinGroupSize: 2})

	grouped, individuals := g.Group(orders)
	total := len(individuals)
	for _, gm := range grouped {
		total += gm.OrderCount
	}
	require.Equal(t, len(orders), total)
}
