package systems

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) {
	data, ok := m[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func useMemStore(t *testing.T) memStore {
	t.Helper()
	store := memStore{}
	UseStore(store)
	t.Cleanup(func() { UseStore(nil) })
	return store
}

func TestBestScoreOnlyImproves(t *testing.T) {
	useMemStore(t)
	assert.Equal(t, 0, LoadBestScore())

	assert.True(t, SaveBestScore(5))
	assert.Equal(t, 5, LoadBestScore())

	assert.False(t, SaveBestScore(5))
	assert.False(t, SaveBestScore(3))
	assert.Equal(t, 5, LoadBestScore())

	assert.True(t, SaveBestScore(8))
	assert.Equal(t, 8, LoadBestScore())
}

func TestCorruptBestScoreReadsAsZero(t *testing.T) {
	store := useMemStore(t)
	store[bestScoreKey] = []byte("lots")

	assert.Equal(t, 0, LoadBestScore())
}

func TestSettingsRoundTrip(t *testing.T) {
	useMemStore(t)

	got, err := LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, SaveSettings(&SavedSettings{Muted: true, ShowHitboxes: true}))
	got, err = LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &SavedSettings{Muted: true, ShowHitboxes: true}, got)
}

func TestPersistenceWithoutStore(t *testing.T) {
	UseStore(nil)

	got, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, SaveSettings(&SavedSettings{Muted: true}))
	assert.Equal(t, 0, LoadBestScore())
	assert.True(t, SaveBestScore(1))
}
