package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/merkulovlad/orderpipe/internal/logger"
	"github.com/merkulovlad/orderpipe/internal/model"
)

var ErrNotFound = errors.New("not found")

const (
	qSelOrders = `
SELECT order_id, customer_id, status, amount, created_at
FROM orders WHERE order_id IN (%s)`

	qSelCustomers = `
SELECT o.order_id, c.customer_id, c.name, c.email, c.tier
FROM customers c JOIN orders o ON c.customer_id = o.customer_id
WHERE o.order_id IN (%s)`

	qSelInventory = `
SELECT oi.order_id, i.sku, i.quantity_available, i.warehouse_location
FROM inventory i JOIN order_items oi ON i.sku = oi.sku
WHERE oi.order_id IN (%s)`

	qSelPricing = `
SELECT order_id, base_price, discount, tax_rate
FROM order_pricing WHERE order_id IN (%s)`

	qSelPartnerByName = `
SELECT id, name, status, updated_at FROM trading_partners WHERE name = $1`

	qSelUnitByName = `
SELECT id, name, status, updated_at FROM business_units WHERE name = $1`
)

// PostgresRepository is the lib/pq-backed Repository implementation.
type PostgresRepository struct {
	db            *sql.DB
	log           logger.InterfaceLogger
	chunkSize     int
	maxRetries    int
	retryDelayMs  int
	dbConcurrency int
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository builds a Repository over an open *sql.DB.
// dbConcurrency bounds per-reader chunk parallelism; 0 keeps the
// default of sequential chunk execution.
func NewPostgresRepository(db *sql.DB, log logger.InterfaceLogger, chunkSize, maxRetries, retryDelayMs, dbConcurrency int) *PostgresRepository {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	return &PostgresRepository{
		db:            db,
		log:           log,
		chunkSize:     chunkSize,
		maxRetries:    maxRetries,
		retryDelayMs:  retryDelayMs,
		dbConcurrency: dbConcurrency,
	}
}

func (r *PostgresRepository) opts(op string) chunkedFetchOptions {
	return chunkedFetchOptions{
		ChunkSize:     r.chunkSize,
		MaxRetries:    r.maxRetries,
		RetryDelayMs:  r.retryDelayMs,
		DBConcurrency: r.dbConcurrency,
		Op:            op,
		Log:           r.log,
	}
}

// placeholders builds "$1,$2,...,$n" for an IN clause.
func placeholders(n int) string {
	ph := make([]string, n)
	for i := 0; i < n; i++ {
		ph[i] = "$" + strconv.Itoa(i+1)
	}
	return strings.Join(ph, ",")
}

func toArgs(ids []string) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func (r *PostgresRepository) FindOrdersByIDs(ctx context.Context, ids []string) ([]model.Order, error) {
	m, err := chunkedFetch(ctx, ids, r.opts("FindOrdersByIDs"), func(ctx context.Context, chunk []string) (map[string]model.Order, error) {
		query := fmt.Sprintf(qSelOrders, placeholders(len(chunk)))
		rows, err := r.db.QueryContext(ctx, query, toArgs(chunk)...)
		if err != nil {
			return nil, fmt.Errorf("select orders: %w", err)
		}
		defer rows.Close()

		out := make(map[string]model.Order, len(chunk))
		for rows.Next() {
			var o model.Order
			if err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.Amount, &o.CreatedAt); err != nil {
				return nil, fmt.Errorf("scan order: %w", err)
			}
			out[o.ID] = o
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("orders rows: %w", err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(m))
	for _, o := range m {
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *PostgresRepository) BatchFetchCustomerData(ctx context.Context, ids []string) (map[string]model.Customer, error) {
	return chunkedFetch(ctx, ids, r.opts("BatchFetchCustomerData"), func(ctx context.Context, chunk []string) (map[string]model.Customer, error) {
		query := fmt.Sprintf(qSelCustomers, placeholders(len(chunk)))
		rows, err := r.db.QueryContext(ctx, query, toArgs(chunk)...)
		if err != nil {
			return nil, fmt.Errorf("select customers: %w", err)
		}
		defer rows.Close()

		out := make(map[string]model.Customer, len(chunk))
		for rows.Next() {
			var orderID string
			var c model.Customer
			if err := rows.Scan(&orderID, &c.CustomerID, &c.Name, &c.Email, &c.Tier); err != nil {
				return nil, fmt.Errorf("scan customer: %w", err)
			}
			out[orderID] = c
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("customers rows: %w", err)
		}
		return out, nil
	})
}

func (r *PostgresRepository) BatchFetchInventoryData(ctx context.Context, ids []string) (map[string]model.Inventory, error) {
	return chunkedFetch(ctx, ids, r.opts("BatchFetchInventoryData"), func(ctx context.Context, chunk []string) (map[string]model.Inventory, error) {
		query := fmt.Sprintf(qSelInventory, placeholders(len(chunk)))
		rows, err := r.db.QueryContext(ctx, query, toArgs(chunk)...)
		if err != nil {
			return nil, fmt.Errorf("select inventory: %w", err)
		}
		defer rows.Close()

		out := make(map[string]model.Inventory, len(chunk))
		for rows.Next() {
			var orderID string
			var inv model.Inventory
			if err := rows.Scan(&orderID, &inv.SKU, &inv.QuantityAvailable, &inv.WarehouseLocation); err != nil {
				return nil, fmt.Errorf("scan inventory: %w", err)
			}
			inv.OrderID = orderID
			out[orderID] = inv
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("inventory rows: %w", err)
		}
		return out, nil
	})
}

func (r *PostgresRepository) BatchFetchPricingData(ctx context.Context, ids []string) (map[string]model.Pricing, error) {
	return chunkedFetch(ctx, ids, r.opts("BatchFetchPricingData"), func(ctx context.Context, chunk []string) (map[string]model.Pricing, error) {
		query := fmt.Sprintf(qSelPricing, placeholders(len(chunk)))
		rows, err := r.db.QueryContext(ctx, query, toArgs(chunk)...)
		if err != nil {
			return nil, fmt.Errorf("select pricing: %w", err)
		}
		defer rows.Close()

		out := make(map[string]model.Pricing, len(chunk))
		for rows.Next() {
			var p model.Pricing
			var basePrice, discount, taxRate decimal.Decimal
			if err := rows.Scan(&p.OrderID, &basePrice, &discount, &taxRate); err != nil {
				return nil, fmt.Errorf("scan pricing: %w", err)
			}
			p.BasePrice, p.Discount, p.TaxRate = basePrice, discount, taxRate
			out[p.OrderID] = p
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("pricing rows: %w", err)
		}
		return out, nil
	})
}

func (r *PostgresRepository) FindTradingPartnerByName(ctx context.Context, name string) (*model.PartnerStatus, error) {
	var p model.PartnerStatus
	err := r.db.QueryRowContext(ctx, qSelPartnerByName, name).Scan(&p.ID, &p.Name, &p.Status, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select trading partner: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepository) FindBusinessUnitByName(ctx context.Context, name string) (*model.UnitStatus, error) {
	var u model.UnitStatus
	err := r.db.QueryRowContext(ctx, qSelUnitByName, name).Scan(&u.ID, &u.Name, &u.Status, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select business unit: %w", err)
	}
	return &u, nil
}
