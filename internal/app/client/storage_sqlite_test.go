package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	storage, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	return storage
}

func TestSQLiteStorage_SaveAndList(t *testing.T) {
	storage := newTestStorage(t)

	err := storage.SaveResult(Measurements{Glucose: 148, BMI: 33.6, Age: 50}, "Diabetic")
	require.NoError(t, err)

	err = storage.SaveResult(Measurements{Glucose: 85, BMI: 26.6, Age: 31}, "Non-Diabetic")
	require.NoError(t, err)

	entries, err := storage.ListResults()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Новые записи первыми
	assert.Equal(t, "Non-Diabetic", entries[0].Result)
	assert.Equal(t, 85.0, entries[0].Glucose)
	assert.Equal(t, "Diabetic", entries[1].Result)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestSQLiteStorage_EmptyHistory(t *testing.T) {
	storage := newTestStorage(t)

	entries, err := storage.ListResults()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
