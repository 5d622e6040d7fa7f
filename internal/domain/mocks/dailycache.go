// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/zodi-core/internal/domain/entities"
)

// DailyCache is a mock implementation of ports.DailyCache backed by an
// in-memory snapshot.
type DailyCache struct {
	Stored  *entities.DailyAssignment
	LoadErr error
	SaveErr error

	// Call tracking
	LoadCallCount int
	SaveCallCount int
}

// Load returns the stored assignment or the configured error.
func (m *DailyCache) Load(ctx context.Context) (*entities.DailyAssignment, error) {
	m.LoadCallCount++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Stored.Clone(), nil
}

// Save stores a copy of the assignment or returns the configured error.
func (m *DailyCache) Save(ctx context.Context, assignment *entities.DailyAssignment) error {
	m.SaveCallCount++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored = assignment.Clone()
	return nil
}

// Close is a no-op.
func (m *DailyCache) Close() error {
	return nil
}
