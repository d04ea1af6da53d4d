// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errand_test
//

// Package errand_test is a generated GoMock package.
package errand_test

import (
	context "context"
	reflect "reflect"
	entities "service/internal/entities"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// ActiveByRunner mocks base method.
func (m *MockRepository) ActiveByRunner(ctx context.Context, runnerID string) (*entities.Errand, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ActiveByRunner", ctx, runnerID)
	ret0, _ := ret[0].(*entities.Errand)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ActiveByRunner indicates an expected call of ActiveByRunner.
func (mr *MockRepositoryMockRecorder) ActiveByRunner(ctx, runnerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ActiveByRunner", reflect.TypeOf((*MockRepository)(nil).ActiveByRunner), ctx, runnerID)
}

// CompareAndSetRunner mocks base method.
func (m *MockRepository) CompareAndSetRunner(ctx context.Context, id, runnerID string) (*entities.Errand, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompareAndSetRunner", ctx, id, runnerID)
	ret0, _ := ret[0].(*entities.Errand)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CompareAndSetRunner indicates an expected call of CompareAndSetRunner.
func (mr *MockRepositoryMockRecorder) CompareAndSetRunner(ctx, id, runnerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompareAndSetRunner", reflect.TypeOf((*MockRepository)(nil).CompareAndSetRunner), ctx, id, runnerID)
}

// Create mocks base method.
func (m *MockRepository) Create(ctx context.Context, errandModify entities.ErrandModify) (*entities.Errand, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, errandModify)
	ret0, _ := ret[0].(*entities.Errand)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryMockRecorder) Create(ctx, errandModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepository)(nil).Create), ctx, errandModify)
}

// GetByID mocks base method.
func (m *MockRepository) GetByID(ctx context.Context, id string) (*entities.Errand, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*entities.Errand)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRepository)(nil).GetByID), ctx, id)
}

// ListByRole mocks base method.
func (m *MockRepository) ListByRole(ctx context.Context, actorID string, role entities.ActorRoleType, statusFilter []entities.ErrandStatusType) ([]entities.Errand, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByRole", ctx, actorID, role, statusFilter)
	ret0, _ := ret[0].([]entities.Errand)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByRole indicates an expected call of ListByRole.
func (mr *MockRepositoryMockRecorder) ListByRole(ctx, actorID, role, statusFilter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByRole", reflect.TypeOf((*MockRepository)(nil).ListByRole), ctx, actorID, role, statusFilter)
}

// UpdateStatus mocks base method.
func (m *MockRepository) UpdateStatus(ctx context.Context, id string, expectedStatus, newStatus entities.ErrandStatusType) (*entities.Errand, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, id, expectedStatus, newStatus)
	ret0, _ := ret[0].(*entities.Errand)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockRepositoryMockRecorder) UpdateStatus(ctx, id, expectedStatus, newStatus any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockRepository)(nil).UpdateStatus), ctx, id, expectedStatus, newStatus)
}

// MockCodeGenerator is a mock of CodeGenerator interface.
type MockCodeGenerator struct {
	ctrl     *gomock.Controller
	recorder *MockCodeGeneratorMockRecorder
	isgomock struct{}
}

// MockCodeGeneratorMockRecorder is the mock recorder for MockCodeGenerator.
type MockCodeGeneratorMockRecorder struct {
	mock *MockCodeGenerator
}

// NewMockCodeGenerator creates a new mock instance.
func NewMockCodeGenerator(ctrl *gomock.Controller) *MockCodeGenerator {
	mock := &MockCodeGenerator{ctrl: ctrl}
	mock.recorder = &MockCodeGeneratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCodeGenerator) EXPECT() *MockCodeGeneratorMockRecorder {
	return m.recorder
}

// Generate mocks base method.
func (m *MockCodeGenerator) Generate(ctx context.Context) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Generate", ctx)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Generate indicates an expected call of Generate.
func (mr *MockCodeGeneratorMockRecorder) Generate(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generate", reflect.TypeOf((*MockCodeGenerator)(nil).Generate), ctx)
}

// MockCodeMatcher is a mock of CodeMatcher interface.
type MockCodeMatcher struct {
	ctrl     *gomock.Controller
	recorder *MockCodeMatcherMockRecorder
	isgomock struct{}
}

// MockCodeMatcherMockRecorder is the mock recorder for MockCodeMatcher.
type MockCodeMatcherMockRecorder struct {
	mock *MockCodeMatcher
}

// NewMockCodeMatcher creates a new mock instance.
func NewMockCodeMatcher(ctrl *gomock.Controller) *MockCodeMatcher {
	mock := &MockCodeMatcher{ctrl: ctrl}
	mock.recorder = &MockCodeMatcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCodeMatcher) EXPECT() *MockCodeMatcherMockRecorder {
	return m.recorder
}

// Claim mocks base method.
func (m *MockCodeMatcher) Claim(ctx context.Context, code, runnerID string) (*entities.Errand, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Claim", ctx, code, runnerID)
	ret0, _ := ret[0].(*entities.Errand)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Claim indicates an expected call of Claim.
func (mr *MockCodeMatcherMockRecorder) Claim(ctx, code, runnerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Claim", reflect.TypeOf((*MockCodeMatcher)(nil).Claim), ctx, code, runnerID)
}

// MockDispatcher is a mock of Dispatcher interface.
type MockDispatcher struct {
	ctrl     *gomock.Controller
	recorder *MockDispatcherMockRecorder
	isgomock struct{}
}

// MockDispatcherMockRecorder is the mock recorder for MockDispatcher.
type MockDispatcherMockRecorder struct {
	mock *MockDispatcher
}

// NewMockDispatcher creates a new mock instance.
func NewMockDispatcher(ctrl *gomock.Controller) *MockDispatcher {
	mock := &MockDispatcher{ctrl: ctrl}
	mock.recorder = &MockDispatcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDispatcher) EXPECT() *MockDispatcherMockRecorder {
	return m.recorder
}

// OnTransition mocks base method.
func (m *MockDispatcher) OnTransition(ctx context.Context, event entities.TransitionEvent) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnTransition", ctx, event)
}

// OnTransition indicates an expected call of OnTransition.
func (mr *MockDispatcherMockRecorder) OnTransition(ctx, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnTransition", reflect.TypeOf((*MockDispatcher)(nil).OnTransition), ctx, event)
}

// MockTrackerControl is a mock of TrackerControl interface.
type MockTrackerControl struct {
	ctrl     *gomock.Controller
	recorder *MockTrackerControlMockRecorder
	isgomock struct{}
}

// MockTrackerControlMockRecorder is the mock recorder for MockTrackerControl.
type MockTrackerControlMockRecorder struct {
	mock *MockTrackerControl
}

// NewMockTrackerControl creates a new mock instance.
func NewMockTrackerControl(ctrl *gomock.Controller) *MockTrackerControl {
	mock := &MockTrackerControl{ctrl: ctrl}
	mock.recorder = &MockTrackerControlMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTrackerControl) EXPECT() *MockTrackerControlMockRecorder {
	return m.recorder
}

// Start mocks base method.
func (m *MockTrackerControl) Start(actorID string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Start", actorID)
}

// Start indicates an expected call of Start.
func (mr *MockTrackerControlMockRecorder) Start(actorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockTrackerControl)(nil).Start), actorID)
}

// Stop mocks base method.
func (m *MockTrackerControl) Stop(actorID string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Stop", actorID)
}

// Stop indicates an expected call of Stop.
func (mr *MockTrackerControlMockRecorder) Stop(actorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stop", reflect.TypeOf((*MockTrackerControl)(nil).Stop), actorID)
}

// MockPriceFactory is a mock of PriceFactory interface.
type MockPriceFactory struct {
	ctrl     *gomock.Controller
	recorder *MockPriceFactoryMockRecorder
	isgomock struct{}
}

// MockPriceFactoryMockRecorder is the mock recorder for MockPriceFactory.
type MockPriceFactoryMockRecorder struct {
	mock *MockPriceFactory
}

// NewMockPriceFactory creates a new mock instance.
func NewMockPriceFactory(ctrl *gomock.Controller) *MockPriceFactory {
	mock := &MockPriceFactory{ctrl: ctrl}
	mock.recorder = &MockPriceFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPriceFactory) EXPECT() *MockPriceFactoryMockRecorder {
	return m.recorder
}

// CalculatePrice mocks base method.
func (m *MockPriceFactory) CalculatePrice(distanceKm float64) float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CalculatePrice", distanceKm)
	ret0, _ := ret[0].(float64)
	return ret0
}

// CalculatePrice indicates an expected call of CalculatePrice.
func (mr *MockPriceFactoryMockRecorder) CalculatePrice(distanceKm any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CalculatePrice", reflect.TypeOf((*MockPriceFactory)(nil).CalculatePrice), distanceKm)
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
	isgomock struct{}
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}
