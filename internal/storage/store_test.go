package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// engines returns a fresh store of each kind so every behavior is
// checked against both.
func engines(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestRecords_PutGetRemove(t *testing.T) {
	ctx := context.Background()
	for name, store := range engines(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, KindUser, 1)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Put(ctx, KindUser, 1, []byte(`{"a":1}`)))
			data, err := store.Get(ctx, KindUser, 1)
			require.NoError(t, err)
			assert.JSONEq(t, `{"a":1}`, string(data))

			// Overwrite replaces the document.
			require.NoError(t, store.Put(ctx, KindUser, 1, []byte(`{"a":2}`)))
			data, err = store.Get(ctx, KindUser, 1)
			require.NoError(t, err)
			assert.JSONEq(t, `{"a":2}`, string(data))

			require.NoError(t, store.Remove(ctx, KindUser, 1))
			assert.ErrorIs(t, store.Remove(ctx, KindUser, 1), ErrNotFound)
		})
	}
}

func TestRecords_KindsAreIsolated(t *testing.T) {
	ctx := context.Background()
	for name, store := range engines(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, KindUser, 1, []byte(`{}`)))

			_, err := store.Get(ctx, KindRole, 1)
			assert.ErrorIs(t, err, ErrNotFound)

			recs, err := store.Scan(ctx, KindRole)
			require.NoError(t, err)
			assert.Empty(t, recs)
		})
	}
}

func TestRecords_ScanOrderedByID(t *testing.T) {
	ctx := context.Background()
	for name, store := range engines(t) {
		t.Run(name, func(t *testing.T) {
			for _, id := range []int{30, 10, 20} {
				require.NoError(t, store.Put(ctx, KindTask, id, []byte(`{}`)))
			}
			recs, err := store.Scan(ctx, KindTask)
			require.NoError(t, err)
			require.Len(t, recs, 3)
			assert.Equal(t, 10, recs[0].ID)
			assert.Equal(t, 20, recs[1].ID)
			assert.Equal(t, 30, recs[2].ID)
		})
	}
}

func TestPairs_DuplicatesAndInsertionOrder(t *testing.T) {
	ctx := context.Background()
	for name, store := range engines(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.InsertPair(ctx, TableUserRoles, 1, 9))
			require.NoError(t, store.InsertPair(ctx, TableUserRoles, 2, 9))
			require.NoError(t, store.InsertPair(ctx, TableUserRoles, 1, 9))

			pairs, err := store.ScanPairs(ctx, TableUserRoles)
			require.NoError(t, err)
			require.Len(t, pairs, 3, "duplicate pairs are distinct rows")
			assert.Equal(t, Pair{Left: 1, Right: 9}, pairs[0])
			assert.Equal(t, Pair{Left: 2, Right: 9}, pairs[1])
			assert.Equal(t, Pair{Left: 1, Right: 9}, pairs[2])
		})
	}
}

func TestPairs_DeleteVariants(t *testing.T) {
	ctx := context.Background()
	for name, store := range engines(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.InsertPair(ctx, TableUserRoles, 1, 9))
			require.NoError(t, store.InsertPair(ctx, TableUserRoles, 1, 9))
			require.NoError(t, store.InsertPair(ctx, TableUserRoles, 1, 10))
			require.NoError(t, store.InsertPair(ctx, TableUserRoles, 2, 9))

			// DeletePairs removes every row for the pair.
			require.NoError(t, store.DeletePairs(ctx, TableUserRoles, 1, 9))
			pairs, err := store.ScanPairs(ctx, TableUserRoles)
			require.NoError(t, err)
			assert.Equal(t, []Pair{{Left: 1, Right: 10}, {Left: 2, Right: 9}}, pairs)

			// DeleteLeft clears one side.
			require.NoError(t, store.DeleteLeft(ctx, TableUserRoles, 1))
			pairs, err = store.ScanPairs(ctx, TableUserRoles)
			require.NoError(t, err)
			assert.Equal(t, []Pair{{Left: 2, Right: 9}}, pairs)

			// DeleteRight clears the other.
			require.NoError(t, store.DeleteRight(ctx, TableUserRoles, 9))
			pairs, err = store.ScanPairs(ctx, TableUserRoles)
			require.NoError(t, err)
			assert.Empty(t, pairs)
		})
	}
}

func TestPairs_TablesAreIsolated(t *testing.T) {
	ctx := context.Background()
	for name, store := range engines(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.InsertPair(ctx, TableUserRoles, 1, 9))

			pairs, err := store.ScanPairs(ctx, TableTaskCategories)
			require.NoError(t, err)
			assert.Empty(t, pairs)

			// Clearing the other table leaves this one alone.
			require.NoError(t, store.DeleteLeft(ctx, TableTaskCategories, 1))
			pairs, err = store.ScanPairs(ctx, TableUserRoles)
			require.NoError(t, err)
			assert.Len(t, pairs, 1)
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.sqlite")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, KindUser, 1, []byte(`{"name":"alice"}`)))
	require.NoError(t, store.InsertPair(ctx, TableUserRoles, 1, 9))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Get(ctx, KindUser, 1)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"alice"}`, string(data))

	pairs, err := reopened.ScanPairs(ctx, TableUserRoles)
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Left: 1, Right: 9}}, pairs)
}
