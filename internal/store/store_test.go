package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemStore_RoundTrip(t *testing.T) {
	t.Parallel()

	s := NewMemStore()

	var missing payload
	assert.ErrorIs(t, s.Load("absent", &missing), ErrNoSnapshot)

	require.NoError(t, s.Save(KeyCart, payload{Name: "rice", Count: 2}))

	var got payload
	require.NoError(t, s.Load(KeyCart, &got))
	assert.Equal(t, payload{Name: "rice", Count: 2}, got)

	require.NoError(t, s.Delete(KeyCart))
	assert.ErrorIs(t, s.Load(KeyCart, &got), ErrNoSnapshot)
}

func TestMemStore_SaveRewritesSnapshot(t *testing.T) {
	t.Parallel()

	s := NewMemStore()
	require.NoError(t, s.Save(KeyOrders, []payload{{Name: "a", Count: 1}, {Name: "b", Count: 2}}))
	require.NoError(t, s.Save(KeyOrders, []payload{{Name: "c", Count: 3}}))

	var got []payload
	require.NoError(t, s.Load(KeyOrders, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Name)
}

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()

	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var missing payload
	assert.ErrorIs(t, s.Load(KeyUser, &missing), ErrNoSnapshot)

	require.NoError(t, s.Save(KeyUser, payload{Name: "priya", Count: 1}))

	var got payload
	require.NoError(t, s.Load(KeyUser, &got))
	assert.Equal(t, "priya", got.Name)

	require.NoError(t, s.Delete(KeyUser))
	require.NoError(t, s.Delete(KeyUser)) // deleting a missing key is fine
	assert.ErrorIs(t, s.Load(KeyUser, &got), ErrNoSnapshot)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save(KeyCart, payload{Name: "atta", Count: 5}))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	var got payload
	require.NoError(t, reopened.Load(KeyCart, &got))
	assert.Equal(t, payload{Name: "atta", Count: 5}, got)
}
