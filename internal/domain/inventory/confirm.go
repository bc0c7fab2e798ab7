package inventory

import (
	"sync"
	"time"
)

// DefaultConfirmWindow is how long an armed delete stays confirmable.
const DefaultConfirmWindow = 3 * time.Second

// DeleteGuard implements two-step delete confirmation: the first request for
// a project arms the guard, and only a second request for the same project
// within the window confirms. Arming a different project replaces the
// previous one, and an unconfirmed arm expires on its own.
type DeleteGuard struct {
	mu      sync.Mutex
	window  time.Duration
	armedID string
	armedAt time.Time
	now     func() time.Time
}

// NewDeleteGuard creates a guard with the given confirmation window.
// A non-positive window falls back to DefaultConfirmWindow.
func NewDeleteGuard(window time.Duration) *DeleteGuard {
	if window <= 0 {
		window = DefaultConfirmWindow
	}
	return &DeleteGuard{window: window, now: time.Now}
}

// Request records a delete request for id. It returns true when the request
// confirms a previous arm for the same id within the window; in that case
// the guard disarms and the caller may proceed with the delete. Otherwise
// the guard (re-)arms for id and returns false.
func (g *DeleteGuard) Request(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if g.armedID == id && now.Sub(g.armedAt) <= g.window {
		g.armedID = ""
		return true
	}
	g.armedID = id
	g.armedAt = now
	return false
}

// Disarm clears any pending confirmation.
func (g *DeleteGuard) Disarm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.armedID = ""
}
