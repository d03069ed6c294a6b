// Package model holds the data types shared across the order pipeline.
// All entities are treated as immutable snapshots for the lifetime of a
// single pipeline run; only the caches in internal/cache own long-lived
// copies.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is the input-topic payload. EventType partitions into
// grouped-types and individual-types; anything else is individual.
type Event struct {
	EventID            string `json:"eventId"`
	EventType          string `json:"eventType"`
	TradingPartnerName string `json:"tradingPartnerName"`
	BusinessUnitName   string `json:"businessUnitName"`
}

// DedupKey is partner+"::"+unit, the scope-granularity idempotency key.
func (e Event) DedupKey() string {
	return e.TradingPartnerName + "::" + e.BusinessUnitName
}

// Order is a pending-order snapshot read from the document store.
type Order struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"createdAt"`
}

const (
	StatusPending   = "PENDING"
	StatusProcessed = "PROCESSED"
)

// Customer tier values.
const (
	TierStandard = "STANDARD"
	TierPremium  = "PREMIUM"
	TierGold     = "GOLD"
)

type Customer struct {
	CustomerID string
	Name       string
	Email      string
	Tier       string
}

type Inventory struct {
	OrderID           string
	SKU               string
	QuantityAvailable int
	WarehouseLocation string
}

type Pricing struct {
	OrderID   string
	BasePrice decimal.Decimal
	Discount  decimal.Decimal
	TaxRate   decimal.Decimal
}

// Status values for partner/unit records.
const (
	StatusActive    = "ACTIVE"
	StatusInactive  = "INACTIVE"
	StatusSuspended = "SUSPENDED"
)

type PartnerStatus struct {
	ID        string
	Name      string
	Status    string
	UpdatedAt time.Time
}

type UnitStatus struct {
	ID        string
	Name      string
	Status    string
	UpdatedAt time.Time
}

// IsActive reports whether a partner/unit status is ACTIVE. It takes the
// status string only; callers treat a missing (nil) record as non-active
// before calling it.
func IsActive(status string) bool {
	return status == StatusActive
}

// ProcessingContext is the triple of reference-data maps keyed by order
// id, consumed by the transform. Any value may be absent.
type ProcessingContext struct {
	Customers map[string]Customer
	Inventory map[string]Inventory
	Pricing   map[string]Pricing
}

func NewProcessingContext() ProcessingContext {
	return ProcessingContext{
		Customers: make(map[string]Customer),
		Inventory: make(map[string]Inventory),
		Pricing:   make(map[string]Pricing),
	}
}

// ProcessedOrder status values.
const (
	StatusReadyToShip      = "READY_TO_SHIP"
	StatusLowStock         = "LOW_STOCK"
	StatusBackorder        = "BACKORDER"
	StatusPendingInventory = "PENDING_INVENTORY"
)

type ProcessedOrder struct {
	OrderID           string          `json:"orderId"`
	CustomerID        string          `json:"customerId"`
	CustomerName      string          `json:"customerName"`
	CustomerTier      string          `json:"customerTier"`
	FinalPrice        decimal.Decimal `json:"finalPrice"`
	WarehouseLocation string          `json:"warehouseLocation"`
	Status            string          `json:"status"`
	ProcessedAt       time.Time       `json:"processedAt"`
	ProcessedBy       string          `json:"processedBy"`
	TraceID           string          `json:"traceId"`
}

type GroupedMessage struct {
	GroupID     string           `json:"groupId"`
	GroupingKey string           `json:"groupingKey"`
	GroupType   string           `json:"groupType"`
	Orders      []ProcessedOrder `json:"orders"`
	OrderCount  int              `json:"orderCount"`
	TotalAmount decimal.Decimal  `json:"totalAmount"`
	GroupedAt   time.Time        `json:"groupedAt"`
	GroupedBy   string           `json:"groupedBy"`
	TraceID     string           `json:"traceId"`
}

type FailedOrder struct {
	Order         Order
	ErrorMessage  string
	ExceptionType string
}

type Timings struct {
	PreloadMs    int64
	ProcessingMs int64
	PublishMs    int64
	TotalMs      int64
}

type Result struct {
	Successes []ProcessedOrder
	Failures  []FailedOrder
	Timings   Timings
}
