package services

import (
	"sync"

	"likability/internal/structures"
)

// AdminRegistry is the in-memory set of operators allowed to run privileged
// operations. It is seeded from the config; additions are process-lifetime
// only and never persisted.
type AdminRegistry struct {
	mu  sync.RWMutex
	set map[string]struct{}
}

func NewAdminRegistry(conf *structures.Config) *AdminRegistry {
	set := make(map[string]struct{}, len(conf.Likability.AdminList))
	for _, uid := range conf.Likability.AdminList {
		set[uid] = struct{}{}
	}
	return &AdminRegistry{set: set}
}

func (a *AdminRegistry) IsAdmin(uid string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.set[uid]
	return ok
}

// Add is idempotent.
func (a *AdminRegistry) Add(uid string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.set[uid] = struct{}{}
}

func (a *AdminRegistry) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.set)
}
