// Code generated by hand in the style of mockgen for
// github.com/merkulovlad/orderpipe/internal/queueclient (QueueClient).
// Source: internal/queueclient/queueclient.go

package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockQueueClient is a mock of the QueueClient interface.
type MockQueueClient struct {
	ctrl     *gomock.Controller
	recorder *MockQueueClientMockRecorder
}

type MockQueueClientMockRecorder struct {
	mock *MockQueueClient
}

func NewMockQueueClient(ctrl *gomock.Controller) *MockQueueClient {
	mock := &MockQueueClient{ctrl: ctrl}
	mock.recorder = &MockQueueClientMockRecorder{mock}
	return mock
}

func (m *MockQueueClient) EXPECT() *MockQueueClientMockRecorder {
	return m.recorder
}

func (m *MockQueueClient) Send(ctx context.Context, destination string, headers map[string]string, body []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, destination, headers, body)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockQueueClientMockRecorder) Send(ctx, destination, headers, body interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockQueueClient)(nil).Send), ctx, destination, headers, body)
}

func (m *MockQueueClient) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockQueueClientMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockQueueClient)(nil).Close))
}
