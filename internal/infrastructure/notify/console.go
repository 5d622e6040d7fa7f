package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/ersonp/zodi-core/internal/domain/ports"
)

// ConsoleNotifier writes notifications to a writer. Used as a portable
// fallback when no desktop notification tool is available.
type ConsoleNotifier struct {
	Out io.Writer
}

// NewConsoleNotifier creates a console notifier writing to out.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{Out: out}
}

// Notify prints the notification.
func (n *ConsoleNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	if _, err := fmt.Fprintf(n.Out, "%s\n%s\n", notification.Title, notification.Body); err != nil {
		return fmt.Errorf("writing notification: %w", err)
	}
	return nil
}
