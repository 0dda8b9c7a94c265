package models

import "sync"

// ProfileRecord carries the free-form notes the agent keeps about a user.
type ProfileRecord struct {
	Nickname   string `json:"nickname"`
	Impression string `json:"impression"`
}

type ProfileTable struct {
	mu   sync.RWMutex
	data map[string]*ProfileRecord
}

func NewProfileTable() *ProfileTable {
	return &ProfileTable{data: make(map[string]*ProfileRecord)}
}

func (t *ProfileTable) Get(uid string) (*ProfileRecord, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	val, ok := t.data[uid]
	return val, ok
}

func (t *ProfileTable) Set(uid string, rec *ProfileRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data[uid] = rec
}

func (t *ProfileTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.data)
}

func (t *ProfileTable) Snapshot() map[string]*ProfileRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()

	copyMap := make(map[string]*ProfileRecord, len(t.data))
	for k, v := range t.data {
		rec := *v
		copyMap[k] = &rec
	}
	return copyMap
}

func (t *ProfileTable) PutData(data map[string]*ProfileRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if data == nil {
		data = make(map[string]*ProfileRecord)
	}
	t.data = data
}
