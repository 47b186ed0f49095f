package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/repository"
)

const (
	queryGetMachine = `
		SELECT machine_id, name, version, config, updated_at
		FROM machines
		WHERE machine_id = $1`

	queryListMachines = `
		SELECT machine_id, name, version, config, updated_at
		FROM machines
		ORDER BY machine_id`

	queryUpsertMachine = `
		INSERT INTO machines (machine_id, name, version, config, updated_at)
		VALUES ($1, $2, 1, $3, NOW())
		ON CONFLICT (machine_id) DO UPDATE
		SET name = EXCLUDED.name,
		    config = EXCLUDED.config,
		    version = machines.version + 1,
		    updated_at = NOW()
		RETURNING version, updated_at`

	queryDeleteMachine = `DELETE FROM machines WHERE machine_id = $1`
)

// MachineRepository implements repository.Machine for PostgreSQL
type MachineRepository struct {
	db *pgxpool.Pool
}

var _ repository.Machine = (*MachineRepository)(nil)

// NewMachineRepository creates a new MachineRepository
func NewMachineRepository(db *pgxpool.Pool) *MachineRepository {
	return &MachineRepository{db: db}
}

// GetMachine retrieves a machine by id
func (r *MachineRepository) GetMachine(ctx context.Context, id string) (*domain.Machine, error) {
	m, err := scanMachine(r.db.QueryRow(ctx, queryGetMachine, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMachineNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMachine, err)
	}
	return m, nil
}

// ListMachines returns every stored machine ordered by id
func (r *MachineRepository) ListMachines(ctx context.Context) ([]domain.Machine, error) {
	rows, err := r.db.Query(ctx, queryListMachines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMachines, err)
	}
	defer rows.Close()

	var machines []domain.Machine
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMachines, err)
		}
		machines = append(machines, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMachines, err)
	}
	return machines, nil
}

// SaveMachine upserts a machine and writes the new version back into m
func (r *MachineRepository) SaveMachine(ctx context.Context, m *domain.Machine) error {
	cfg, err := json.Marshal(m.Config)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeConfig, err)
	}

	var (
		version   int32
		updatedAt time.Time
	)
	if err := r.db.QueryRow(ctx, queryUpsertMachine, m.ID, m.Name, cfg).Scan(&version, &updatedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveMachine, err)
	}
	m.Version = int(version)
	m.UpdatedAt = updatedAt
	return nil
}

// DeleteMachine removes a machine; deleting an unknown id reports ErrMachineNotFound
func (r *MachineRepository) DeleteMachine(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, queryDeleteMachine, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteMachine, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrMachineNotFound, id)
	}
	return nil
}

// Ping checks database connectivity
func (r *MachineRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close releases the pool
func (r *MachineRepository) Close() error {
	r.db.Close()
	return nil
}

func scanMachine(row pgx.Row) (*domain.Machine, error) {
	var (
		m       domain.Machine
		version int32
		raw     []byte
	)
	if err := row.Scan(&m.ID, &m.Name, &version, &raw, &m.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &m.Config); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToDecodeConfig, m.ID, err)
	}
	m.Version = int(version)
	return &m, nil
}
