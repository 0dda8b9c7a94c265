package structures

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPayoutTable_CoversEveryDrawNumber(t *testing.T) {
	table := DefaultPayoutTable()
	for n := 0; n <= 100; n++ {
		matches := 0
		for _, r := range table {
			if n >= r.Low && n <= r.High {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "draw number %d must map to exactly one range", n)
	}
}

func TestPayoutFor_Boundaries(t *testing.T) {
	table := DefaultPayoutTable()

	p, ok := PayoutFor(table, 0)
	require.True(t, ok)
	assert.Equal(t, -8, p.Delta)

	p, ok = PayoutFor(table, 10)
	require.True(t, ok)
	assert.Equal(t, -4, p.Delta)

	p, ok = PayoutFor(table, 11)
	require.True(t, ok)
	assert.Equal(t, -3, p.Delta)

	p, ok = PayoutFor(table, 99)
	require.True(t, ok)
	assert.Equal(t, 5, p.Delta)

	p, ok = PayoutFor(table, 100)
	require.True(t, ok)
	assert.Equal(t, 10, p.Delta)
}

func TestPayoutFor_Uncovered(t *testing.T) {
	table := []PayoutRange{{Low: 0, High: 50, Delta: 1}}
	_, ok := PayoutFor(table, 51)
	assert.False(t, ok)
}

func TestPayoutFor_FirstMatchWins(t *testing.T) {
	table := []PayoutRange{
		{Low: 0, High: 100, Delta: 1, Message: "first"},
		{Low: 0, High: 100, Delta: 2, Message: "second"},
	}
	p, ok := PayoutFor(table, 50)
	require.True(t, ok)
	assert.Equal(t, "first", p.Message)
}

func TestLevelFor_Buckets(t *testing.T) {
	table := DefaultLevelTable()

	assert.Equal(t, "疏离回避", LevelFor(table, -0.5))
	assert.Equal(t, "泛泛而识", LevelFor(table, 0))
	assert.Equal(t, "泛泛而识", LevelFor(table, 0.19))
	assert.Equal(t, "普通熟人", LevelFor(table, 0.2))
	assert.Equal(t, "普通熟人", LevelFor(table, 0.25))
	assert.Equal(t, "可靠伙伴", LevelFor(table, 0.4))
	assert.Equal(t, "亲密伙伴", LevelFor(table, 0.7))
	assert.Equal(t, "信任挚友", LevelFor(table, 0.99))
}

func TestLevelFor_RatioOneLandsInTopBucket(t *testing.T) {
	table := DefaultLevelTable()
	assert.Equal(t, "灵魂共鸣", LevelFor(table, 1.0))
	assert.Equal(t, "灵魂共鸣", LevelFor(table, 2.5))
}

func TestLevelFor_MisconfiguredTable(t *testing.T) {
	table := []LevelRange{{Low: 0, High: 0.5, Name: "half"}}
	assert.Equal(t, UnknownLevel, LevelFor(table, 0.75))
	assert.Equal(t, UnknownLevel, LevelFor(nil, 0.5))
}

func TestDefaultLevelTable_IsTotal(t *testing.T) {
	table := DefaultLevelTable()
	for _, ratio := range []float64{math.Inf(-1) + 1, -100, -0.01, 0, 0.5, 0.999, 1, 10} {
		assert.NotEqual(t, UnknownLevel, LevelFor(table, ratio), "ratio %v must classify", ratio)
	}
}
