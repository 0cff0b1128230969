package cli

import (
	"sync"
	"time"
)

// Toast is the single transient-notification component: it holds at most
// one message, auto-dismisses it after a fixed delay, and supports manual
// dismissal. Showing a new message replaces the pending one and re-arms
// the timer.
type Toast struct {
	mu    sync.Mutex
	msg   string
	delay time.Duration
	timer *time.Timer
}

func NewToast(delay time.Duration) *Toast {
	return &Toast{delay: delay}
}

// Show replaces the pending message and arms the auto-dismiss timer.
func (t *Toast) Show(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.msg = msg
	t.timer = time.AfterFunc(t.delay, t.Dismiss)
}

// Dismiss clears the pending message immediately.
func (t *Toast) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.msg = ""
}

// Message returns the pending message, or an empty string.
func (t *Toast) Message() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.msg
}
