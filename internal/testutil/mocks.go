package testutil

import (
	"sync"

	"likability/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Entries returns a copy of the recorded log entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.Logs))
	copy(out, m.Logs)
	return out
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}
