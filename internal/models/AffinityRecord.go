package models

import "sync"

// AffinityRecord is one user's standing. JSON keys match the data files
// written by earlier deployments so existing documents load unchanged.
type AffinityRecord struct {
	Score         int    `json:"current_likability"`
	TotalDrawDays int    `json:"total_sign_days"`
	LastDrawDate  string `json:"last_sign_date,omitempty"`
}

type AffinityTable struct {
	mu   sync.RWMutex
	data map[string]*AffinityRecord
}

func NewAffinityTable() *AffinityTable {
	return &AffinityTable{data: make(map[string]*AffinityRecord)}
}

func (t *AffinityTable) Get(uid string) (*AffinityRecord, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	val, ok := t.data[uid]
	return val, ok
}

func (t *AffinityTable) Set(uid string, rec *AffinityRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data[uid] = rec
}

func (t *AffinityTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.data)
}

// Snapshot returns a deep copy safe to serialize concurrently with mutations.
func (t *AffinityTable) Snapshot() map[string]*AffinityRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()

	copyMap := make(map[string]*AffinityRecord, len(t.data))
	for k, v := range t.data {
		rec := *v
		copyMap[k] = &rec
	}
	return copyMap
}

func (t *AffinityTable) PutData(data map[string]*AffinityRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if data == nil {
		data = make(map[string]*AffinityRecord)
	}
	t.data = data
}
