package iocache

import (
	"time"

	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetRunStore implements the StoreManager interface.
func (m *MockStoreManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, totalPlayers int) error {
	args := m.Called(runID, endTime, totalPlayers)
	return args.Error(0)
}

// RecordPlayerScore implements the RunStore interface.
func (m *MockRunStore) RecordPlayerScore(runID int64, scoredAt time.Time, result schema.PlayerResult) error {
	args := m.Called(runID, scoredAt, result)
	return args.Error(0)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.RunStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RunStatus), args.Error(1)
}

// GetRuns implements the RunStore interface.
func (m *MockRunStore) GetRuns() ([]schema.ScoringRunRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.ScoringRunRecord)
	return records, args.Error(1)
}

// GetPlayerScores implements the RunStore interface.
func (m *MockRunStore) GetPlayerScores() ([]schema.PlayerScoreRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.PlayerScoreRecord)
	return records, args.Error(1)
}

// Clear implements the RunStore interface.
func (m *MockRunStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
