package moderation

import (
	"sync"

	"github.com/OrionStudios/JarvisBotGo/pkg/store"
	"github.com/bwmarrin/discordgo"
)

// Authorizer owns the persisted moderator role allowlist. Discord dispatches
// handlers on separate goroutines, so every access goes through the mutex.
type Authorizer struct {
	roles store.Collection[string]
	mu    sync.RWMutex
	cache []string
}

// NewAuthorizer loads the allowlist from the given collection.
func NewAuthorizer(roles store.Collection[string]) *Authorizer {
	return &Authorizer{
		roles: roles,
		cache: roles.All(),
	}
}

// IsModerator reports whether the member carries at least one allowlisted role.
func (a *Authorizer) IsModerator(member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, roleID := range member.Roles {
		for _, allowed := range a.cache {
			if roleID == allowed {
				return true
			}
		}
	}
	return false
}

// ToggleRole adds the role to the allowlist, or removes it when already
// present. Returns true when the role was added.
func (a *Authorizer) ToggleRole(roleID string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, id := range a.cache {
		if id == roleID {
			a.cache = append(a.cache[:i], a.cache[i+1:]...)
			_, err := a.roles.DeleteWhere(func(r string) bool { return r == roleID })
			return false, err
		}
	}

	a.cache = append(a.cache, roleID)
	return true, a.roles.Append(roleID)
}

// Roles returns a copy of the allowlist in insertion order.
func (a *Authorizer) Roles() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, len(a.cache))
	copy(out, a.cache)
	return out
}
