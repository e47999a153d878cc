package store

import (
	"sync"
	"time"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/constants"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
)

// Snapshot is a full deep copy of both lists, captured immediately
// before a labeled mutation.
type Snapshot struct {
	Active   []models.Task
	Archived []models.ArchivedTask
}

// UndoManager holds at most one snapshot at a time. Arming replaces any
// previous snapshot and restarts the expiry timer; the timer never
// clears a snapshot that has already been consumed or superseded.
type UndoManager struct {
	mu       sync.Mutex
	window   time.Duration
	snapshot *Snapshot
	message  string
	timer    *time.Timer
	gen      uint64
	onExpire func()
}

func NewUndoManager() *UndoManager {
	return &UndoManager{window: constants.UndoWindow}
}

// SetWindow overrides the expiry window. Used by tests; a zero or
// negative duration disarms expiry entirely.
func (u *UndoManager) SetWindow(d time.Duration) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.window = d
}

// SetOnExpire registers a callback invoked after the snapshot expires
// on its own. Collaborators use it to clear the undo toast.
func (u *UndoManager) SetOnExpire(fn func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.onExpire = fn
}

// Arm captures a snapshot and (re)starts the expiry timer, replacing
// any previously armed snapshot without chaining.
func (u *UndoManager) Arm(message string, snap Snapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.timer != nil {
		u.timer.Stop()
		u.timer = nil
	}
	u.snapshot = &snap
	u.message = message
	u.gen++

	if u.window <= 0 {
		return
	}
	gen := u.gen
	u.timer = time.AfterFunc(u.window, func() { u.expire(gen) })
}

// expire clears the snapshot when the guarding timer fires, unless the
// snapshot was consumed or replaced in the meantime.
func (u *UndoManager) expire(gen uint64) {
	u.mu.Lock()
	if gen != u.gen || u.snapshot == nil {
		u.mu.Unlock()
		return
	}
	u.snapshot = nil
	u.message = ""
	u.timer = nil
	fn := u.onExpire
	u.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Consume takes the armed snapshot, disarming the manager. The second
// return is false when nothing is armed (or the window already lapsed).
func (u *UndoManager) Consume() (Snapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.snapshot == nil {
		return Snapshot{}, false
	}
	snap := *u.snapshot
	u.snapshot = nil
	u.message = ""
	u.gen++
	if u.timer != nil {
		u.timer.Stop()
		u.timer = nil
	}
	return snap, true
}

// Armed reports whether an undo is currently available.
func (u *UndoManager) Armed() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshot != nil
}

// Message returns the label of the armed snapshot, or "".
func (u *UndoManager) Message() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.message
}
