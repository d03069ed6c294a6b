package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merkulovlad/orderpipe/internal/model"
	"github.com/merkulovlad/orderpipe/internal/preload"
	"github.com/merkulovlad/orderpipe/internal/publish"
	"github.com/merkulovlad/orderpipe/internal/transform"
)

type nopLogger struct{}

func (nopLogger) Info(args ...interface{})                  {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Error(args ...interface{})                 {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatal(args ...interface{})                 {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}
func (nopLogger) Sync() error                               { return nil }

type fakeQueueClient struct{ sent int }

func (f *fakeQueueClient) Send(ctx context.Context, destination string, headers map[string]string, body []byte) error {
	f.sent++
	return nil
}
func (f *fakeQueueClient) Close() error { return nil }

func TestOrchestrator_EmptyInputShortCircuits(t *testing.T) {
	base := preload.NewBasePreloader(nil)
	tr := transform.New(nopLogger{}, 0, "worker-1")
	pub := publish.New(&fakeQueueClient{}, nil, nopLogger{}, 0, "groups", "orders")
	orc := New(base, tr, pub)

	result, err := orc.Run(context.Background(), nil, false)
	require.NoError(t, err)
	require.Equal(t, model.Result{}, result)
}

func TestOrchestrator_RunPartitionsSuccessesAndFailures(t *testing.T) {
	repo := &fakeRepo{}
	base := preload.NewBasePreloader(repo)
	tr := transform.New(nopLogger{}, 0, "worker-1")
	client := &fakeQueueClient{}
	pub := publish.New(client, nil, nopLogger{}, 0, "groups", "orders")
	orc := New(base, tr, pub)

	orders := []model.Order{{ID: "O1"}, {ID: "O2"}}
	result, err := orc.Run(context.Background(), orders, false)
	require.NoError(t, err)
	require.Equal(t, len(orders), len(result.Successes)+len(result.Failures))
	require.Equal(t, len(result.Successes), client.sent)
}

type fakeRepo struct{}

func (f *fakeRepo) FindOrdersByIDs(ctx context.Context, ids []string) ([]model.Order, error) {
	return nil, nil
}
func (f *fakeRepo) BatchFetchCustomerData(ctx context.Context, ids []string) (map[string]model.Customer, error) {
	return map[string]model.Customer{}, nil
}
func (f *fakeRepo) BatchFetchInventoryData(ctx context.Context, ids []string) (map[string]model.Inventory, error) {
	return map[string]model.Inventory{}, nil
}
func (f *fakeRepo) BatchFetchPricingData(ctx context.Context, ids []string) (map[string]model.Pricing, error) {
	return map[string]model.Pricing{}, nil
}
func (f *fakeRepo) FindTradingPartnerByName(ctx context.Context, name string) (*model.PartnerStatus, error) {
	return nil, nil
}
func (f *fakeRepo) FindBusinessUnitByName(ctx context.Context, name string) (*model.UnitStatus, error) {
	return nil, nil
}
