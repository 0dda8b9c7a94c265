package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffinityRecord_JSONKeys(t *testing.T) {
	rec := &AffinityRecord{Score: 20, TotalDrawDays: 3, LastDrawDate: "2026-08-31"}
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "current_likability")
	assert.Contains(t, raw, "total_sign_days")
	assert.Contains(t, raw, "last_sign_date")

	var back AffinityRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *rec, back)
}

func TestAffinityRecord_NullLastDrawDate(t *testing.T) {
	// Documents written by the original deployment carry an explicit null.
	var rec AffinityRecord
	require.NoError(t, json.Unmarshal([]byte(`{"current_likability":20,"total_sign_days":0,"last_sign_date":null}`), &rec))
	assert.Equal(t, 20, rec.Score)
	assert.Empty(t, rec.LastDrawDate)
}

func TestAffinityTable_GetSet(t *testing.T) {
	table := NewAffinityTable()

	_, ok := table.Get("u1")
	assert.False(t, ok)

	table.Set("u1", &AffinityRecord{Score: 5})
	rec, ok := table.Get("u1")
	require.True(t, ok)
	assert.Equal(t, 5, rec.Score)
	assert.Equal(t, 1, table.Len())
}

func TestAffinityTable_SnapshotIsDeepCopy(t *testing.T) {
	table := NewAffinityTable()
	table.Set("u1", &AffinityRecord{Score: 5})

	snap := table.Snapshot()
	rec, _ := table.Get("u1")
	rec.Score = 99

	assert.Equal(t, 5, snap["u1"].Score)
}

func TestAffinityTable_PutDataNil(t *testing.T) {
	table := NewAffinityTable()
	table.PutData(nil)
	assert.Equal(t, 0, table.Len())
	table.Set("u1", &AffinityRecord{})
	assert.Equal(t, 1, table.Len())
}

func TestProfileTable_SnapshotIsDeepCopy(t *testing.T) {
	table := NewProfileTable()
	table.Set("u1", &ProfileRecord{Nickname: "a"})

	snap := table.Snapshot()
	rec, _ := table.Get("u1")
	rec.Nickname = "b"

	assert.Equal(t, "a", snap["u1"].Nickname)
}

func TestBlacklist_AddRemove(t *testing.T) {
	bl := NewBlacklist()

	assert.False(t, bl.Has("u1"))

	bl.Add("u1")
	bl.Add("u1")
	assert.True(t, bl.Has("u1"))
	assert.Equal(t, 1, bl.Len())

	bl.Remove("u1")
	assert.False(t, bl.Has("u1"))

	// Removing a non-member is a no-op.
	bl.Remove("u2")
	assert.Equal(t, 0, bl.Len())
}

func TestBlacklist_SerializedForm(t *testing.T) {
	bl := NewBlacklist()
	bl.Add("u1")

	data, err := json.Marshal(bl.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, `{"u1":true}`, string(data))
}
