package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFlashTTL is how long the delete confirmation stays on screen.
const DefaultFlashTTL = 6 * time.Second

// FlashTimer schedules the expiry of the flash message. It holds the
// cancellation handle of the one pending expiry: scheduling again cancels
// it, and so does Stop.
type FlashTimer struct {
	ttl    time.Duration
	cancel context.CancelFunc
}

// NewFlashTimer creates a timer that expires messages after ttl. A
// non-positive ttl selects DefaultFlashTTL.
func NewFlashTimer(ttl time.Duration) *FlashTimer {
	if ttl <= 0 {
		ttl = DefaultFlashTTL
	}
	return &FlashTimer{ttl: ttl}
}

// TTL returns the expiry delay.
func (f *FlashTimer) TTL() time.Duration { return f.ttl }

// Schedule cancels any pending expiry and returns a command that delivers
// flashExpiredMsg{seq} after the TTL. If ctx is cancelled or the expiry is
// superseded first, the command returns nil.
func (f *FlashTimer) Schedule(ctx context.Context, seq int) tea.Cmd {
	f.Stop()

	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	ttl := f.ttl

	return func() tea.Msg {
		timer := time.NewTimer(ttl)
		defer timer.Stop()

		select {
		case <-timer.C:
			return flashExpiredMsg{seq: seq}
		case <-ctx.Done():
			return nil
		}
	}
}

// Pending reports whether an expiry is scheduled.
func (f *FlashTimer) Pending() bool {
	return f.cancel != nil
}

// Stop cancels the pending expiry, if any.
func (f *FlashTimer) Stop() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}
