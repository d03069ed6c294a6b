// Package docstore queries the document store by (trading partner,
// business unit) scope, returning pending order snapshots. A failure
// here is fatal for the event.
package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/merkulovlad/orderpipe/internal/logger"
	"github.com/merkulovlad/orderpipe/internal/model"
	"github.com/merkulovlad/orderpipe/internal/pipelineerr"
)

// DefaultTopN is the fallback "top-N pending by creation time" scan size
// used when an event carries neither a partner nor a unit.
const DefaultTopN = 100

// OrderSource is the contract the Event Handler depends on.
type OrderSource interface {
	FetchOrdersForEvent(ctx context.Context, e model.Event) ([]model.Order, error)
	BatchUpdateOrderStatus(ctx context.Context, ids []string, status string)
}

type orderItem struct {
	SKU      string  `bson:"sku"`
	Quantity int     `bson:"quantity"`
	Price    float64 `bson:"price"`
}

type orderDocument struct {
	OrderID            string      `bson:"orderId"`
	CustomerID         string      `bson:"customerId"`
	TradingPartnerName string      `bson:"tradingPartnerName"`
	BusinessUnitName   string      `bson:"businessUnitName"`
	Status             string      `bson:"status"`
	Amount             float64     `bson:"amount"`
	CreatedAt          time.Time   `bson:"createdAt"`
	Items              []orderItem `bson:"items"`
}

// MongoOrderSource is the mongo-driver-backed OrderSource implementation.
type MongoOrderSource struct {
	col  *mongo.Collection
	log  logger.InterfaceLogger
	topN int
}

var _ OrderSource = (*MongoOrderSource)(nil)

// NewMongoOrderSource wraps the pending-order collection.
func NewMongoOrderSource(db *mongo.Database, log logger.InterfaceLogger) *MongoOrderSource {
	return &MongoOrderSource{col: db.Collection("pending_orders"), log: log, topN: DefaultTopN}
}

// FetchOrdersForEvent resolves the scope-filter strategy by presence of
// partner/unit on the event: both, partner only, unit only, then top-N
// pending by creation time. All variants filter to status == PENDING.
func (s *MongoOrderSource) FetchOrdersForEvent(ctx context.Context, e model.Event) ([]model.Order, error) {
	filter := bson.M{"status": model.StatusPending}
	opts := options.Find()

	switch resolveStrategy(e) {
	case strategyPartnerAndUnit:
		filter["tradingPartnerName"] = e.TradingPartnerName
		filter["businessUnitName"] = e.BusinessUnitName
	case strategyPartner:
		filter["tradingPartnerName"] = e.TradingPartnerName
	case strategyUnit:
		filter["businessUnitName"] = e.BusinessUnitName
	default:
		opts = opts.SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(int64(s.topN))
	}

	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, &pipelineerr.FetchError{Scope: scopeDescription(e), Err: fmt.Errorf("find pending orders: %w", err)}
	}
	defer cur.Close(ctx)

	var orders []model.Order
	for cur.Next(ctx) {
		var doc orderDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, &pipelineerr.FetchError{Scope: scopeDescription(e), Err: fmt.Errorf("decode pending order: %w", err)}
		}
		orders = append(orders, toOrder(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, &pipelineerr.FetchError{Scope: scopeDescription(e), Err: fmt.Errorf("cursor error: %w", err)}
	}
	return orders, nil
}

// BatchUpdateOrderStatus is a best-effort multi-document write; the
// caller never awaits it before commit.
func (s *MongoOrderSource) BatchUpdateOrderStatus(ctx context.Context, ids []string, status string) {
	if len(ids) == 0 {
		return
	}
	_, err := s.col.UpdateMany(ctx,
		bson.M{"orderId": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		s.log.Errorf("docstore: best-effort status update failed for %d orders: %v", len(ids), err)
	}
}

// scope-resolution strategy: both, partner only, unit only, top-N
// pending.
type scopeStrategy int

const (
	strategyPartnerAndUnit scopeStrategy = iota
	strategyPartner
	strategyUnit
	strategyTopN
)

func resolveStrategy(e model.Event) scopeStrategy {
	switch {
	case e.TradingPartnerName != "" && e.BusinessUnitName != "":
		return strategyPartnerAndUnit
	case e.TradingPartnerName != "":
		return strategyPartner
	case e.BusinessUnitName != "":
		return strategyUnit
	default:
		return strategyTopN
	}
}

func scopeDescription(e model.Event) string {
	return fmt.Sprintf("partner=%q unit=%q", e.TradingPartnerName, e.BusinessUnitName)
}

func toOrder(doc orderDocument) model.Order {
	return model.Order{
		ID:         doc.OrderID,
		CustomerID: doc.CustomerID,
		Status:     doc.Status,
		Amount:     decimal.NewFromFloat(doc.Amount),
		CreatedAt:  doc.CreatedAt,
	}
}
