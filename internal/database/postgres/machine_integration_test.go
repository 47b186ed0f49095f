package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/slotengine/internal/database"
	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/slots"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testPool, terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupDatabase(ctx context.Context) (pool *pgxpool.Pool, terminate func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase (likely Docker issue): %v\n", r)
			pool, terminate = nil, nil
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return nil, nil
	}
	terminate = func() { _ = pgContainer.Terminate(ctx) }

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return nil, nil
	}
	pool, err = database.NewPool(ctx, database.PoolConfig{ConnString: connStr, MaxConns: 5})
	if err != nil {
		terminate()
		return nil, nil
	}
	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		terminate()
		return nil, nil
	}
	return pool, terminate
}

func newRepo(t *testing.T) *MachineRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	_, err := testPool.Exec(context.Background(), "TRUNCATE machines")
	require.NoError(t, err)
	return NewMachineRepository(testPool)
}

func TestMachineRepository_SaveAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	cfg := slots.ClassicConfig()
	cfg.SymbolPayouts = map[domain.Symbol]domain.PayoutTable{domain.SymbolSeven: {3: 150, 5: 5000}}
	m := &domain.Machine{ID: "classic", Name: "Classic", Config: cfg}

	require.NoError(t, repo.SaveMachine(ctx, m))
	assert.Equal(t, 1, m.Version)
	assert.False(t, m.UpdatedAt.IsZero())

	got, err := repo.GetMachine(ctx, "classic")
	require.NoError(t, err)
	assert.Equal(t, "Classic", got.Name)
	assert.Equal(t, 1, got.Version)
	assert.Equal(t, cfg, got.Config)
}

func TestMachineRepository_SaveBumpsVersion(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	m := &domain.Machine{ID: "classic", Name: "Classic", Config: slots.ClassicConfig()}
	require.NoError(t, repo.SaveMachine(ctx, m))

	m.Config.MaxBet = 50
	m.Name = "Classic Low Stakes"
	require.NoError(t, repo.SaveMachine(ctx, m))
	assert.Equal(t, 2, m.Version)

	got, err := repo.GetMachine(ctx, "classic")
	require.NoError(t, err)
	assert.Equal(t, int64(50), got.Config.MaxBet)
	assert.Equal(t, "Classic Low Stakes", got.Name)
}

func TestMachineRepository_ListAndDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for _, id := range []string{"zeta", "alpha"} {
		require.NoError(t, repo.SaveMachine(ctx, &domain.Machine{ID: id, Name: id, Config: slots.ClassicConfig()}))
	}

	list, err := repo.ListMachines(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].ID)
	assert.Equal(t, "zeta", list[1].ID)

	require.NoError(t, repo.DeleteMachine(ctx, "alpha"))
	assert.ErrorIs(t, repo.DeleteMachine(ctx, "alpha"), domain.ErrMachineNotFound)

	_, err = repo.GetMachine(ctx, "alpha")
	assert.ErrorIs(t, err, domain.ErrMachineNotFound)
	assert.NoError(t, repo.Ping(ctx))
}
