package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/semi/internal/adapters/prefs"
)

func TestFileStore_PutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	store, err := prefs.NewFileStore(path)
	require.NoError(t, err)

	_, ok, err := store.Get("DriveStraightCalibration")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put("DriveStraightCalibration", `{"mapping":[]}`))

	value, ok, err := store.Get("DriveStraightCalibration")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"mapping":[]}`, value)

	// A new store on the same path sees the persisted value.
	reopened, err := prefs.NewFileStore(path)
	require.NoError(t, err)
	value, ok, err = reopened.Get("DriveStraightCalibration")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"mapping":[]}`, value)
	assert.ElementsMatch(t, []string{"DriveStraightCalibration"}, reopened.Keys())
}

func TestFileStore_Overwrite(t *testing.T) {
	store, err := prefs.NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)

	require.NoError(t, store.Put("Playback", "AAAAAA=="))
	require.NoError(t, store.Put("Playback", "AAAAAQ=="))

	value, ok, err := store.Get("Playback")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "AAAAAQ==", value)
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := prefs.NewFileStore(path)
	require.NoError(t, err)
	assert.Empty(t, store.Keys())
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := prefs.NewFileStore(path)
	require.Error(t, err)
}
