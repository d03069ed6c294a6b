// Code generated by hand in the style of mockgen for
// github.com/merkulovlad/orderpipe/internal/docstore (OrderSource).
// Source: internal/docstore/docstore.go

package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	model "github.com/merkulovlad/orderpipe/internal/model"
)

// MockOrderSource is a mock of the OrderSource interface.
type MockOrderSource struct {
	ctrl     *gomock.Controller
	recorder *MockOrderSourceMockRecorder
}

type MockOrderSourceMockRecorder struct {
	mock *MockOrderSource
}

func NewMockOrderSource(ctrl *gomock.Controller) *MockOrderSource {
	mock := &MockOrderSource{ctrl: ctrl}
	mock.recorder = &MockOrderSourceMockRecorder{mock}
	return mock
}

func (m *MockOrderSource) EXPECT() *MockOrderSourceMockRecorder {
	return m.recorder
}

func (m *MockOrderSource) FetchOrdersForEvent(ctx context.Context, e model.Event) ([]model.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FetchOrdersForEvent", ctx, e)
	ret0, _ := ret[0].([]model.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockOrderSourceMockRecorder) FetchOrdersForEvent(ctx, e interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FetchOrdersForEvent", reflect.TypeOf((*MockOrderSource)(nil).FetchOrdersForEvent), ctx, e)
}

func (m *MockOrderSource) BatchUpdateOrderStatus(ctx context.Context, ids []string, status string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "BatchUpdateOrderStatus", ctx, ids, status)
}

func (mr *MockOrderSourceMockRecorder) BatchUpdateOrderStatus(ctx, ids, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BatchUpdateOrderStatus", reflect.TypeOf((*MockOrderSource)(nil).BatchUpdateOrderStatus), ctx, ids, status)
}
