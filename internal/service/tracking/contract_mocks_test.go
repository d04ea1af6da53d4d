// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
//

// Package tracking_test is a generated GoMock package.
package tracking_test

import (
	context "context"
	reflect "reflect"
	entities "service/internal/entities"
	logger "service/pkg/logger"

	gomock "go.uber.org/mock/gomock"
)

// MockhandlerLogger is a mock of handlerLogger interface.
type MockhandlerLogger struct {
	ctrl     *gomock.Controller
	recorder *MockhandlerLoggerMockRecorder
	isgomock struct{}
}

// MockhandlerLoggerMockRecorder is the mock recorder for MockhandlerLogger.
type MockhandlerLoggerMockRecorder struct {
	mock *MockhandlerLogger
}

// NewMockhandlerLogger creates a new mock instance.
func NewMockhandlerLogger(ctrl *gomock.Controller) *MockhandlerLogger {
	mock := &MockhandlerLogger{ctrl: ctrl}
	mock.recorder = &MockhandlerLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockhandlerLogger) EXPECT() *MockhandlerLoggerMockRecorder {
	return m.recorder
}

// Error mocks base method.
func (m *MockhandlerLogger) Error(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Error", varargs...)
}

// Error indicates an expected call of Error.
func (mr *MockhandlerLoggerMockRecorder) Error(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MockhandlerLogger)(nil).Error), varargs...)
}

// Info mocks base method.
func (m *MockhandlerLogger) Info(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Info", varargs...)
}

// Info indicates an expected call of Info.
func (mr *MockhandlerLoggerMockRecorder) Info(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MockhandlerLogger)(nil).Info), varargs...)
}

// Warn mocks base method.
func (m *MockhandlerLogger) Warn(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Warn", varargs...)
}

// Warn indicates an expected call of Warn.
func (mr *MockhandlerLoggerMockRecorder) Warn(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warn", reflect.TypeOf((*MockhandlerLogger)(nil).Warn), varargs...)
}

// With mocks base method.
func (m *MockhandlerLogger) With(fields ...logger.Field) logger.Logger {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "With", varargs...)
	ret0, _ := ret[0].(logger.Logger)
	return ret0
}

// With indicates an expected call of With.
func (mr *MockhandlerLoggerMockRecorder) With(fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "With", reflect.TypeOf((*MockhandlerLogger)(nil).With), fields...)
}

// MockPositionSource is a mock of PositionSource interface.
type MockPositionSource struct {
	ctrl     *gomock.Controller
	recorder *MockPositionSourceMockRecorder
	isgomock struct{}
}

// MockPositionSourceMockRecorder is the mock recorder for MockPositionSource.
type MockPositionSourceMockRecorder struct {
	mock *MockPositionSource
}

// NewMockPositionSource creates a new mock instance.
func NewMockPositionSource(ctrl *gomock.Controller) *MockPositionSource {
	mock := &MockPositionSource{ctrl: ctrl}
	mock.recorder = &MockPositionSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPositionSource) EXPECT() *MockPositionSourceMockRecorder {
	return m.recorder
}

// CurrentPosition mocks base method.
func (m *MockPositionSource) CurrentPosition(ctx context.Context, actorID string) (entities.ActorPosition, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CurrentPosition", ctx, actorID)
	ret0, _ := ret[0].(entities.ActorPosition)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CurrentPosition indicates an expected call of CurrentPosition.
func (mr *MockPositionSourceMockRecorder) CurrentPosition(ctx, actorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CurrentPosition", reflect.TypeOf((*MockPositionSource)(nil).CurrentPosition), ctx, actorID)
}

// MockLocationStore is a mock of LocationStore interface.
type MockLocationStore struct {
	ctrl     *gomock.Controller
	recorder *MockLocationStoreMockRecorder
	isgomock struct{}
}

// MockLocationStoreMockRecorder is the mock recorder for MockLocationStore.
type MockLocationStoreMockRecorder struct {
	mock *MockLocationStore
}

// NewMockLocationStore creates a new mock instance.
func NewMockLocationStore(ctrl *gomock.Controller) *MockLocationStore {
	mock := &MockLocationStore{ctrl: ctrl}
	mock.recorder = &MockLocationStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLocationStore) EXPECT() *MockLocationStoreMockRecorder {
	return m.recorder
}

// GetActorLocation mocks base method.
func (m *MockLocationStore) GetActorLocation(ctx context.Context, actorID string) (entities.ActorPosition, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActorLocation", ctx, actorID)
	ret0, _ := ret[0].(entities.ActorPosition)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActorLocation indicates an expected call of GetActorLocation.
func (mr *MockLocationStoreMockRecorder) GetActorLocation(ctx, actorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActorLocation", reflect.TypeOf((*MockLocationStore)(nil).GetActorLocation), ctx, actorID)
}

// SetActorLocation mocks base method.
func (m *MockLocationStore) SetActorLocation(ctx context.Context, position entities.ActorPosition) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetActorLocation", ctx, position)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetActorLocation indicates an expected call of SetActorLocation.
func (mr *MockLocationStoreMockRecorder) SetActorLocation(ctx, position any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetActorLocation", reflect.TypeOf((*MockLocationStore)(nil).SetActorLocation), ctx, position)
}

// MockErrandProvider is a mock of ErrandProvider interface.
type MockErrandProvider struct {
	ctrl     *gomock.Controller
	recorder *MockErrandProviderMockRecorder
	isgomock struct{}
}

// MockErrandProviderMockRecorder is the mock recorder for MockErrandProvider.
type MockErrandProviderMockRecorder struct {
	mock *MockErrandProvider
}

// NewMockErrandProvider creates a new mock instance.
func NewMockErrandProvider(ctrl *gomock.Controller) *MockErrandProvider {
	mock := &MockErrandProvider{ctrl: ctrl}
	mock.recorder = &MockErrandProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockErrandProvider) EXPECT() *MockErrandProviderMockRecorder {
	return m.recorder
}

// ActiveByRunner mocks base method.
func (m *MockErrandProvider) ActiveByRunner(ctx context.Context, runnerID string) (*entities.Errand, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ActiveByRunner", ctx, runnerID)
	ret0, _ := ret[0].(*entities.Errand)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ActiveByRunner indicates an expected call of ActiveByRunner.
func (mr *MockErrandProviderMockRecorder) ActiveByRunner(ctx, runnerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ActiveByRunner", reflect.TypeOf((*MockErrandProvider)(nil).ActiveByRunner), ctx, runnerID)
}

// GetByID mocks base method.
func (m *MockErrandProvider) GetByID(ctx context.Context, id string) (*entities.Errand, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*entities.Errand)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockErrandProviderMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockErrandProvider)(nil).GetByID), ctx, id)
}
