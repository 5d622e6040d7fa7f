package ports

import "context"

// Notification is the payload handed to a delivery adapter.
type Notification struct {
	Title string
	Body  string
}

// Notifier delivers a notification to the user. OS-level delivery details
// (toast APIs, permissions) live entirely in the implementation.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
