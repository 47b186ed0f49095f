package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/slots"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpen_CreatesFileAndMigrates(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "a", "b", "slots.db")

	store, err := Open(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.Close())

	// Reopening runs migrations again without error
	store, err = Open(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()
}

func TestStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	cfg := slots.ClassicConfig()
	cfg.SymbolPayouts = map[domain.Symbol]domain.PayoutTable{domain.SymbolDiamond: {3: 100, 4: 400}}
	cfg.MaxPayout = 100000
	m := &domain.Machine{ID: "classic", Name: "Classic", Config: cfg}

	require.NoError(t, store.SaveMachine(ctx, m))
	assert.Equal(t, 1, m.Version)

	got, err := store.GetMachine(ctx, "classic")
	require.NoError(t, err)
	assert.Equal(t, "Classic", got.Name)
	assert.Equal(t, 1, got.Version)
	assert.Equal(t, cfg, got.Config)
	assert.WithinDuration(t, m.UpdatedAt, got.UpdatedAt, 0)
}

func TestStore_SaveBumpsVersion(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	m := &domain.Machine{ID: "classic", Name: "Classic", Config: slots.ClassicConfig()}
	for want := 1; want <= 3; want++ {
		require.NoError(t, store.SaveMachine(ctx, m))
		assert.Equal(t, want, m.Version)
	}

	got, err := store.GetMachine(ctx, "classic")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Version)
}

func TestStore_GetUnknown(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetMachine(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrMachineNotFound)
}

func TestStore_ListAndDelete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	empty, err := store.ListMachines(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, id := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, store.SaveMachine(ctx, &domain.Machine{ID: id, Name: id, Config: slots.ClassicConfig()}))
	}

	list, err := store.ListMachines(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, []string{list[0].ID, list[1].ID, list[2].ID})

	require.NoError(t, store.DeleteMachine(ctx, "mid"))
	assert.ErrorIs(t, store.DeleteMachine(ctx, "mid"), domain.ErrMachineNotFound)

	list, err = store.ListMachines(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestOpen_Memory(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, MemoryPath)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveMachine(ctx, &domain.Machine{ID: "m", Name: "m", Config: slots.ClassicConfig()}))
	_, err = store.GetMachine(ctx, "m")
	assert.NoError(t, err)
}
