package moderation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// confirmTTL is how long a destructive action waits for its confirmation
// before the proposal lapses.
const confirmTTL = 10 * time.Minute

// Kinds of pending confirmations. The kind travels in the component custom
// ID together with the token.
const (
	kindResetWarns = "reset-warns"
	kindResetAll   = "reset-all"
	kindDelWarn    = "del-warn"
)

// pendingAction is a proposed destructive action waiting for a button click.
// It moves through exactly one of confirmed, cancelled or expired; callbacks
// carry the token and look the action up here instead of capturing state.
type pendingAction struct {
	token      string
	kind       string
	targetID   string
	targetName string
	createdAt  time.Time
	timer      *time.Timer
}

// confirmRegistry is the token-keyed store of pending confirmations.
type confirmRegistry struct {
	mu      sync.Mutex
	pending map[string]*pendingAction
	ttl     time.Duration
}

func newConfirmRegistry(ttl time.Duration) *confirmRegistry {
	return &confirmRegistry{
		pending: make(map[string]*pendingAction),
		ttl:     ttl,
	}
}

// Add registers a proposal and returns its token.
func (r *confirmRegistry) Add(kind, targetID, targetName string) string {
	token := uuid.New().String()
	action := &pendingAction{
		token:      token,
		kind:       kind,
		targetID:   targetID,
		targetName: targetName,
		createdAt:  time.Now(),
	}
	action.timer = time.AfterFunc(r.ttl, func() {
		r.mu.Lock()
		delete(r.pending, token)
		r.mu.Unlock()
	})

	r.mu.Lock()
	r.pending[token] = action
	r.mu.Unlock()
	return token
}

// Resolve removes and returns the pending action for a token. The second
// return is false when the token is unknown or already expired; a resolved
// token can never fire twice.
func (r *confirmRegistry) Resolve(token string) (*pendingAction, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	action, ok := r.pending[token]
	if !ok {
		return nil, false
	}
	delete(r.pending, token)
	if action.timer != nil {
		action.timer.Stop()
	}
	return action, true
}

// Len returns the number of unresolved proposals.
func (r *confirmRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
