// Package group partitions processed orders into grouped messages and
// individual messages, driven by a configured strategy.
package group

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/merkulovlad/orderpipe/internal/model"
)

const (
	StrategyByCustomer  = "BY_CUSTOMER"
	StrategyByWarehouse = "BY_WAREHOUSE"
	StrategyByTier      = "BY_TIER"
	StrategyHighValue   = "HIGH_VALUE"
	StrategyNone        = "NONE"
)

// Config selects the grouping strategy and its parameters.
type Config struct {
	Strategy           string
	HighValueThreshold decimal.Decimal
	MinGroupSize       int
}

// Grouper partitions a successes list into grouped messages and
// leftover individuals per the configured strategy.
type Grouper struct {
	cfg Config

	// idGen produces unique group ids; overridable in tests.
	idGen func(key string, seq int) string
}

func New(cfg Config) *Grouper {
	if cfg.MinGroupSize <= 0 {
		cfg.MinGroupSize = 2
	}
	return &Grouper{
		cfg: cfg,
		idGen: func(key string, seq int) string {
			return uuid.New().String()
		},
	}
}

// Group partitions orders into grouped messages and individuals. NONE
// always returns everything as individuals.
func (g *Grouper) Group(orders []model.ProcessedOrder) ([]model.GroupedMessage, []model.ProcessedOrder) {
	switch g.cfg.Strategy {
	case StrategyByCustomer:
		return g.groupByKey(orders, "CUSTOMER", func(o model.ProcessedOrder) string { return o.CustomerID })
	case StrategyByWarehouse:
		return g.groupByKey(orders, "WAREHOUSE", func(o model.ProcessedOrder) string {
			if o.WarehouseLocation == "" {
				return "UNKNOWN"
			}
			return o.WarehouseLocation
		})
	case StrategyByTier:
		return g.groupByKey(orders, "TIER", func(o model.ProcessedOrder) string {
			if o.CustomerTier == "" {
				return model.TierStandard
			}
			return o.CustomerTier
		})
	case StrategyHighValue:
		return g.groupHighValue(orders)
	default:
		return nil, orders
	}
}

func (g *Grouper) groupByKey(orders []model.ProcessedOrder, groupType string, keyOf func(model.ProcessedOrder) string) ([]model.GroupedMessage, []model.ProcessedOrder) {
	buckets := make(map[string][]model.ProcessedOrder)
	var keys []string
	for _, o := range orders {
		k := keyOf(o)
		if _, ok := buckets[k]; !ok {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], o)
	}
	sort.Strings(keys)

	var grouped []model.GroupedMessage
	var individuals []model.ProcessedOrder
	seq := 0
	for _, k := range keys {
		bucket := buckets[k]
		if len(bucket) >= g.cfg.MinGroupSize {
			seq++
			grouped = append(grouped, g.buildGroup(k, groupType, bucket, seq))
			continue
		}
		individuals = append(individuals, bucket...)
	}
	return grouped, individuals
}

// groupHighValue partitions by finalPrice >= threshold. The high half
// becomes one HIGH_VALUE group if it meets minGroupSize; everything
// else (low half, and a too-small high half) is individual.
func (g *Grouper) groupHighValue(orders []model.ProcessedOrder) ([]model.GroupedMessage, []model.ProcessedOrder) {
	var high, low []model.ProcessedOrder
	for _, o := range orders {
		if o.FinalPrice.GreaterThanOrEqual(g.cfg.HighValueThreshold) {
			high = append(high, o)
		} else {
			low = append(low, o)
		}
	}

	if len(high) >= g.cfg.MinGroupSize {
		return []model.GroupedMessage{g.buildGroup("HIGH_VALUE", StrategyHighValue, high, 1)}, low
	}
	return nil, append(low, high...)
}

func (g *Grouper) buildGroup(key, groupType string, orders []model.ProcessedOrder, seq int) model.GroupedMessage {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.FinalPrice)
	}
	return model.GroupedMessage{
		GroupID:     g.idGen(key, seq),
		GroupingKey: key,
		GroupType:   groupType,
		Orders:      orders,
		OrderCount:  len(orders),
		TotalAmount: total,
	}
}
