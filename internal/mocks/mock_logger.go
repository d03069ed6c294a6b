// Code generated by hand in the style of mockgen for
// github.com/merkulovlad/orderpipe/internal/logger (InterfaceLogger).
// Source: internal/logger/logger.go

package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockInterfaceLogger is a mock of the InterfaceLogger interface.
type MockInterfaceLogger struct {
	ctrl     *gomock.Controller
	recorder *MockInterfaceLoggerMockRecorder
}

// MockInterfaceLoggerMockRecorder is the mock recorder for MockInterfaceLogger.
type MockInterfaceLoggerMockRecorder struct {
	mock *MockInterfaceLogger
}

// NewMockInterfaceLogger creates a new mock instance.
func NewMockInterfaceLogger(ctrl *gomock.Controller) *MockInterfaceLogger {
	mock := &MockInterfaceLogger{ctrl: ctrl}
	mock.recorder = &MockInterfaceLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInterfaceLogger) EXPECT() *MockInterfaceLoggerMockRecorder {
	return m.recorder
}

func (m *MockInterfaceLogger) Info(args ...interface{}) {
	m.ctrl.T.Helper()
	varArgs := []interface{}{}
	varArgs = append(varArgs, args...)
	m.ctrl.Call(m, "Info", varArgs...)
}

func (mr *MockInterfaceLoggerMockRecorder) Info(args ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MockInterfaceLogger)(nil).Info), args...)
}

func (m *MockInterfaceLogger) Infof(format string, args ...interface{}) {
	m.ctrl.T.Helper()
	varArgs := []interface{}{format}
	varArgs = append(varArgs, args...)
	m.ctrl.Call(m, "Infof", varArgs...)
}

func (mr *MockInterfaceLoggerMockRecorder) Infof(format interface{}, args ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varArgs := append([]interface{}{format}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Infof", reflect.TypeOf((*MockInterfaceLogger)(nil).Infof), varArgs...)
}

func (m *MockInterfaceLogger) Error(args ...interface{}) {
	m.ctrl.T.Helper()
	varArgs := []interface{}{}
	varArgs = append(varArgs, args...)
	m.ctrl.Call(m, "Error", varArgs...)
}

func (mr *MockInterfaceLoggerMockRecorder) Error(args ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MockInterfaceLogger)(nil).Error), args...)
}

func (m *MockInterfaceLogger) Errorf(format string, args ...interface{}) {
	m.ctrl.T.Helper()
	varArgs := []interface{}{format}
	varArgs = append(varArgs, args...)
	m.ctrl.Call(m, "Errorf", varArgs...)
}

func (mr *MockInterfaceLoggerMockRecorder) Errorf(format interface{}, args ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varArgs := append([]interface{}{format}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Errorf", reflect.TypeOf((*MockInterfaceLogger)(nil).Errorf), varArgs...)
}

func (m *MockInterfaceLogger) Fatal(args ...interface{}) {
	m.ctrl.T.Helper()
	varArgs := []interface{}{}
	varArgs = append(varArgs, args...)
	m.ctrl.Call(m, "Fatal", varArgs...)
}

func (mr *MockInterfaceLoggerMockRecorder) Fatal(args ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Fatal", reflect.TypeOf((*MockInterfaceLogger)(nil).Fatal), args...)
}

func (m *MockInterfaceLogger) Fatalf(format string, args ...interface{}) {
	m.ctrl.T.Helper()
	varArgs := []interface{}{format}
	varArgs = append(varArgs, args...)
	m.ctrl.Call(m, "Fatalf", varArgs...)
}

func (mr *MockInterfaceLoggerMockRecorder) Fatalf(format interface{}, args ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varArgs := append([]interface{}{format}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Fatalf", reflect.TypeOf((*MockInterfaceLogger)(nil).Fatalf), varArgs...)
}

func (m *MockInterfaceLogger) Sync() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sync")
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockInterfaceLoggerMockRecorder) Sync() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sync", reflect.TypeOf((*MockInterfaceLogger)(nil).Sync))
}
