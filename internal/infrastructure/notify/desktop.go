// Package notify provides notification delivery adapters.
package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/ersonp/zodi-core/internal/domain/ports"
)

// DesktopNotifier delivers notifications through the freedesktop
// notify-send tool.
type DesktopNotifier struct {
	// Duration is how long the notification stays visible.
	Duration time.Duration
}

// NewDesktopNotifier creates a desktop notifier with the given display
// duration.
func NewDesktopNotifier(duration time.Duration) *DesktopNotifier {
	return &DesktopNotifier{Duration: duration}
}

// Notify shells out to notify-send.
func (n *DesktopNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	args := []string{notification.Title, notification.Body}
	if n.Duration > 0 {
		args = append(args, "-t", strconv.Itoa(int(n.Duration.Milliseconds())))
	}

	cmd := exec.CommandContext(ctx, "notify-send", args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running notify-send: %w", err)
	}
	return nil
}
