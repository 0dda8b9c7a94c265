package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"likability/internal/structures"
)

type recordLogger struct {
	Logger
}

func (recordLogger) Infof(_ TypeEnum, _ string, _ ...interface{}) {}

func TestNewCacheProvider_Disabled(t *testing.T) {
	conf := &structures.Config{}
	cache := NewCacheProvider(conf, recordLogger{})

	cache.Set("k", []byte("v"))
	_, ok := cache.Get("k")
	assert.False(t, ok)
}

func TestNewCacheProvider_SetGetDel(t *testing.T) {
	conf := &structures.Config{
		Cache: structures.CacheConfig{Enabled: true, Size: 1},
	}
	cache := NewCacheProvider(conf, recordLogger{})

	cache.Set("k", []byte("v"))
	val, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), val)

	cache.Del("k")
	_, ok = cache.Get("k")
	assert.False(t, ok)
}

func TestNewCacheProvider_MissingKey(t *testing.T) {
	conf := &structures.Config{
		Cache: structures.CacheConfig{Enabled: true, Size: 1},
	}
	cache := NewCacheProvider(conf, recordLogger{})

	_, ok := cache.Get("absent")
	assert.False(t, ok)
}

func TestNewInstrumentedCacheProvider_DisabledSkipsWrapping(t *testing.T) {
	conf := &structures.Config{}
	metrics := NewMetricsProvider(conf)
	cache := NewInstrumentedCacheProvider(conf, recordLogger{}, metrics)

	_, isWrapped := cache.(*MetricsCacheProvider)
	assert.False(t, isWrapped)
}

func TestNewInstrumentedCacheProvider_WrapsEnabledCache(t *testing.T) {
	conf := &structures.Config{
		Cache: structures.CacheConfig{Enabled: true, Size: 1},
	}
	metrics := NewMetricsProvider(&structures.Config{})
	cache := NewInstrumentedCacheProvider(conf, recordLogger{}, metrics)

	_, isWrapped := cache.(*MetricsCacheProvider)
	assert.True(t, isWrapped)

	cache.Set("k", []byte("v"))
	val, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), val)
	cache.Del("k")
	_, ok = cache.Get("k")
	assert.False(t, ok)
}
