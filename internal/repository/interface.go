// Package repository provides typed, chunked, retrying batch readers
// over the relational store for Customer/Inventory/Pricing keyed by
// order id, plus single-row readers for partner/unit status.
package repository

import (
	"context"

	"github.com/merkulovlad/orderpipe/internal/model"
)

// Repository is the contract the rest of the pipeline depends on.
type Repository interface {
	FindOrdersByIDs(ctx context.Context, ids []string) ([]model.Order, error)
	BatchFetchCustomerData(ctx context.Context, ids []string) (map[string]model.Customer, error)
	BatchFetchInventoryData(ctx context.Context, ids []string) (map[string]model.Inventory, error)
	BatchFetchPricingData(ctx context.Context, ids []string) (map[string]model.Pricing, error)
	FindTradingPartnerByName(ctx context.Context, name string) (*model.PartnerStatus, error)
	FindBusinessUnitByName(ctx context.Context, name string) (*model.UnitStatus, error)
}
