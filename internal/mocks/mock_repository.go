// Code generated by hand in the style of mockgen for
// github.com/merkulovlad/orderpipe/internal/repository (Repository).
// Source: internal/repository/interface.go

package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	model "github.com/merkulovlad/orderpipe/internal/model"
)

// MockRepository is a mock of the Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
}

type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

func (m *MockRepository) FindOrdersByIDs(ctx context.Context, ids []string) ([]model.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindOrdersByIDs", ctx, ids)
	ret0, _ := ret[0].([]model.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRepositoryMockRecorder) FindOrdersByIDs(ctx, ids interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindOrdersByIDs", reflect.TypeOf((*MockRepository)(nil).FindOrdersByIDs), ctx, ids)
}

func (m *MockRepository) BatchFetchCustomerData(ctx context.Context, ids []string) (map[string]model.Customer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BatchFetchCustomerData", ctx, ids)
	ret0, _ := ret[0].(map[string]model.Customer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRepositoryMockRecorder) BatchFetchCustomerData(ctx, ids interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BatchFetchCustomerData", reflect.TypeOf((*MockRepository)(nil).BatchFetchCustomerData), ctx, ids)
}

func (m *MockRepository) BatchFetchInventoryData(ctx context.Context, ids []string) (map[string]model.Inventory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BatchFetchInventoryData", ctx, ids)
	ret0, _ := ret[0].(map[string]model.Inventory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRepositoryMockRecorder) BatchFetchInventoryData(ctx, ids interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BatchFetchInventoryData", reflect.TypeOf((*MockRepository)(nil).BatchFetchInventoryData), ctx, ids)
}

func (m *MockRepository) BatchFetchPricingData(ctx context.Context, ids []string) (map[string]model.Pricing, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BatchFetchPricingData", ctx, ids)
	ret0, _ := ret[0].(map[string]model.Pricing)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRepositoryMockRecorder) BatchFetchPricingData(ctx, ids interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BatchFetchPricingData", reflect.TypeOf((*MockRepository)(nil).BatchFetchPricingData), ctx, ids)
}

func (m *MockRepository) FindTradingPartnerByName(ctx context.Context, name string) (*model.PartnerStatus, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindTradingPartnerByName", ctx, name)
	ret0, _ := ret[0].(*model.PartnerStatus)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRepositoryMockRecorder) FindTradingPartnerByName(ctx, name interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindTradingPartnerByName", reflect.TypeOf((*MockRepository)(nil).FindTradingPartnerByName), ctx, name)
}

func (m *MockRepository) FindBusinessUnitByName(ctx context.Context, name string) (*model.UnitStatus, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindBusinessUnitByName", ctx, name)
	ret0, _ := ret[0].(*model.UnitStatus)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRepositoryMockRecorder) FindBusinessUnitByName(ctx, name interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindBusinessUnitByName", reflect.TypeOf((*MockRepository)(nil).FindBusinessUnitByName), ctx, name)
}
