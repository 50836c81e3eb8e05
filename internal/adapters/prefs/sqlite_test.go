package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/semi/internal/adapters/prefs"
	"go.trai.ch/semi/internal/core/domain"
)

func TestSQLStore_PutGet(t *testing.T) {
	store, err := prefs.OpenSQLStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, ok, err := store.Get("RotateCalibration")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put("RotateCalibration", `{"mapping":[{"speed":90,"distance":12}]}`))
	require.NoError(t, store.Put("RotateCalibration", `{"mapping":[{"speed":90,"distance":15}]}`))

	value, ok, err := store.Get("RotateCalibration")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"mapping":[{"speed":90,"distance":15}]}`, value)
}

func TestSQLStore_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	store, err := prefs.OpenSQLStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put("Playback", "AAAAAA=="))
	require.NoError(t, store.Close())

	reopened, err := prefs.OpenSQLStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, ok, err := reopened.Get("Playback")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "AAAAAA==", value)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	fileStore, err := prefs.Open(domain.PreferenceConfig{Driver: prefs.DriverFile, Path: filepath.Join(dir, "p.json")})
	require.NoError(t, err)
	assert.IsType(t, &prefs.FileStore{}, fileStore)

	sqlStore, err := prefs.Open(domain.PreferenceConfig{Driver: prefs.DriverSQLite, Path: filepath.Join(dir, "p.db")})
	require.NoError(t, err)
	assert.IsType(t, &prefs.SQLStore{}, sqlStore)
	require.NoError(t, sqlStore.(*prefs.SQLStore).Close())

	_, err = prefs.Open(domain.PreferenceConfig{Driver: "etcd"})
	require.ErrorIs(t, err, domain.ErrUnknownPreferenceDriver)
}
