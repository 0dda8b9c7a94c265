package models

import "sync"

// Blacklist is a set of user ids. The persisted form is {"uid": true} for
// compatibility with documents written by earlier deployments.
type Blacklist struct {
	mu   sync.RWMutex
	data map[string]bool
}

func NewBlacklist() *Blacklist {
	return &Blacklist{data: make(map[string]bool)}
}

func (b *Blacklist) Has(uid string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.data[uid]
}

func (b *Blacklist) Add(uid string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[uid] = true
}

// Remove deletes uid from the set. Removing a non-member is a no-op.
func (b *Blacklist) Remove(uid string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, uid)
}

func (b *Blacklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}

func (b *Blacklist) Snapshot() map[string]bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	copyMap := make(map[string]bool, len(b.data))
	for k, v := range b.data {
		copyMap[k] = v
	}
	return copyMap
}

func (b *Blacklist) PutData(data map[string]bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if data == nil {
		data = make(map[string]bool)
	}
	b.data = data
}
