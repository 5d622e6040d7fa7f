package mocks

import (
	"context"

	"github.com/ersonp/zodi-core/internal/domain/ports"
)

// Notifier is a mock implementation of ports.Notifier recording delivered
// notifications.
type Notifier struct {
	Err       error
	Delivered []ports.Notification
}

// Notify records the notification or returns the configured error.
func (m *Notifier) Notify(ctx context.Context, n ports.Notification) error {
	if m.Err != nil {
		return m.Err
	}
	m.Delivered = append(m.Delivered, n)
	return nil
}
