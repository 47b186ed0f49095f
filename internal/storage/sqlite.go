// Package storage provides SQLite-based persistence for machine configurations.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/repository"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store implements repository.Machine on SQLite.
type Store struct {
	db *sql.DB
}

var _ repository.Machine = (*Store)(nil)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if dbPath != MemoryPath {
		if dbPath != "" && dbPath[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		}

		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every new connection to :memory: would see its own empty database
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate(ctx context.Context) error {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, fsys)
	if err != nil {
		return err
	}
	_, err = provider.Up(ctx)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetMachine loads one machine by id.
func (s *Store) GetMachine(ctx context.Context, id string) (*domain.Machine, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT machine_id, name, version, config, updated_at FROM machines WHERE machine_id = ?",
		id,
	)
	m, err := scanMachine(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMachineNotFound, id)
		}
		return nil, fmt.Errorf("storage: cannot get machine %s: %w", id, err)
	}
	return m, nil
}

// ListMachines returns all machines ordered by id.
func (s *Store) ListMachines(ctx context.Context) ([]domain.Machine, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT machine_id, name, version, config, updated_at FROM machines ORDER BY machine_id",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list machines: %w", err)
	}
	defer rows.Close()

	var machines []domain.Machine
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan machine: %w", err)
		}
		machines = append(machines, *m)
	}
	return machines, rows.Err()
}

// SaveMachine inserts or replaces a machine, bumping its version.
func (s *Store) SaveMachine(ctx context.Context, m *domain.Machine) error {
	cfg, err := json.Marshal(m.Config)
	if err != nil {
		return fmt.Errorf("storage: cannot encode machine config: %w", err)
	}
	now := time.Now().UTC()

	var version int
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO machines (machine_id, name, version, config, updated_at)
		VALUES (?, ?, 1, ?, ?)
		ON CONFLICT (machine_id) DO UPDATE
		SET name = excluded.name,
		    config = excluded.config,
		    version = machines.version + 1,
		    updated_at = excluded.updated_at
		RETURNING version`,
		m.ID, m.Name, string(cfg), now.Format(time.RFC3339Nano),
	).Scan(&version)
	if err != nil {
		return fmt.Errorf("storage: cannot save machine %s: %w", m.ID, err)
	}

	m.Version = version
	m.UpdatedAt = now
	return nil
}

// DeleteMachine removes a machine by id.
func (s *Store) DeleteMachine(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM machines WHERE machine_id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete machine %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete machine %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrMachineNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMachine(row rowScanner) (*domain.Machine, error) {
	var (
		m         domain.Machine
		raw       string
		updatedAt string
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Version, &raw, &updatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(raw), &m.Config); err != nil {
		return nil, fmt.Errorf("decode config for %s: %w", m.ID, err)
	}
	t, err := time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("decode updated_at for %s: %w", m.ID, err)
	}
	m.UpdatedAt = t
	return &m, nil
}
