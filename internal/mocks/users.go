package mocks

import (
	"github.com/brettbedarf/nautilus"
	"github.com/stretchr/testify/mock"
)

// MockUserLookup implements nautilus.UserLookup for testing across packages
type MockUserLookup struct {
	mock.Mock
}

func (m *MockUserLookup) Exists(name string) bool {
	args := m.Called(name)

	// Handle function return types (for tests that key off the name)
	if fn, ok := args.Get(0).(func(string) bool); ok {
		return fn(name)
	}
	return args.Bool(0)
}

// NewUsers returns a MockUserLookup that knows exactly the given names.
func NewUsers(names ...string) *MockUserLookup {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}
	m := &MockUserLookup{}
	m.On("Exists", mock.Anything).Return(func(name string) bool { return known[name] })
	return m
}

var _ nautilus.UserLookup = (*MockUserLookup)(nil)
