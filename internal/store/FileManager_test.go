package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"likability/internal/models"
	"likability/internal/structures"
	"likability/internal/testutil"
)

func TestFileManager_Save_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "likability_data.json")

	fm := NewFileManager(&testutil.MockCompressor{}, &testutil.MockLogger{})
	doc := map[string]*models.AffinityRecord{
		"u1": {Score: 20},
	}

	err := fm.Save(doc, path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)

	// Temp file should not exist
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileManager_SaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "likability_data.json")

	fm := NewFileManager(&testutil.MockCompressor{}, &testutil.MockLogger{})
	doc := map[string]*models.AffinityRecord{
		"u1": {Score: 20, TotalDrawDays: 2, LastDrawDate: "2026-08-30"},
		"u2": {Score: 0},
	}
	require.NoError(t, fm.Save(doc, path))

	var loaded map[string]*models.AffinityRecord
	require.NoError(t, fm.Load(path, &loaded))
	assert.Equal(t, doc, loaded)
}

func TestFileManager_Load_FileNotExist(t *testing.T) {
	fm := NewFileManager(&testutil.MockCompressor{}, &testutil.MockLogger{})

	var loaded map[string]*models.AffinityRecord
	err := fm.Load("/nonexistent/path/file.json", &loaded)
	assert.NoError(t, err) // not an error, just no data
	assert.Nil(t, loaded)
}

func TestFileManager_Load_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	fm := NewFileManager(&testutil.MockCompressor{}, &testutil.MockLogger{})

	var loaded map[string]*models.AffinityRecord
	assert.Error(t, fm.Load(path, &loaded))
}

func TestFileManager_CompressedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "likability_data.json")

	comp, err := NewZstdCompressor()
	require.NoError(t, err)
	fm := NewFileManager(comp, &testutil.MockLogger{})

	doc := map[string]*models.AffinityRecord{"u1": {Score: 42}}
	require.NoError(t, fm.Save(doc, path))

	var loaded map[string]*models.AffinityRecord
	require.NoError(t, fm.Load(path, &loaded))
	assert.Equal(t, doc, loaded)
}

func TestFileManager_CompressionDisabledLoadsCompressedDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "likability_data.json")

	zc, err := NewZstdCompressor()
	require.NoError(t, err)
	doc := map[string]*models.AffinityRecord{"u1": {Score: 42}}
	require.NoError(t, NewFileManager(zc, &testutil.MockLogger{}).Save(doc, path))

	// compress flipped from true to false between restarts
	comp, err := NewCompressor(&structures.Config{})
	require.NoError(t, err)
	fm := NewFileManager(comp, &testutil.MockLogger{})

	var loaded map[string]*models.AffinityRecord
	require.NoError(t, fm.Load(path, &loaded))
	assert.Equal(t, doc, loaded)
}

func TestFileManager_CompressionEnabledLoadsPlainDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "likability_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"u1":{"current_likability":7,"total_sign_days":1}}`), 0o644))

	comp, err := NewZstdCompressor()
	require.NoError(t, err)
	fm := NewFileManager(comp, &testutil.MockLogger{})

	var loaded map[string]*models.AffinityRecord
	require.NoError(t, fm.Load(path, &loaded))
	require.Contains(t, loaded, "u1")
	assert.Equal(t, 7, loaded["u1"].Score)
}
