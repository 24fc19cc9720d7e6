package moderation

import (
	"sync"
	"time"

	"github.com/OrionStudios/JarvisBotGo/pkg/models"
)

// undoWindow is how long a reset of all warnings can be taken back.
const undoWindow = 10 * time.Minute

// undoBuffer holds a single snapshot of the warning set. A second reset
// before the window closes overwrites the pending snapshot, so Undo always
// restores the most recent pre-reset state.
type undoBuffer struct {
	mu       sync.Mutex
	snapshot []models.Warning
	timer    *time.Timer
	window   time.Duration
}

func newUndoBuffer(window time.Duration) *undoBuffer {
	return &undoBuffer{window: window}
}

// Store saves a snapshot and arms the expiry timer.
func (b *undoBuffer) Store(snapshot []models.Warning) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.snapshot = make([]models.Warning, len(snapshot))
	copy(b.snapshot, snapshot)
	b.timer = time.AfterFunc(b.window, b.expire)
}

func (b *undoBuffer) expire() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snapshot = nil
	b.timer = nil
}

// Take removes and returns the snapshot. The second return is false when the
// window has expired or nothing is pending; the expiry timer may have fired
// between the button render and the click, so callers must check it.
func (b *undoBuffer) Take() ([]models.Warning, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.snapshot == nil {
		return nil, false
	}
	snap := b.snapshot
	b.snapshot = nil
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	return snap, true
}
