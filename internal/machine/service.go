package machine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/logger"
	"github.com/osse101/slotengine/internal/metrics"
	"github.com/osse101/slotengine/internal/repository"
	"github.com/osse101/slotengine/internal/slots"
)

// Service defines the machine catalogue and play operations
type Service interface {
	GetMachine(ctx context.Context, id string) (*domain.Machine, error)
	ListMachines(ctx context.Context) ([]domain.Machine, error)
	SaveMachine(ctx context.Context, m domain.Machine) (*domain.Machine, error)
	DeleteMachine(ctx context.Context, id string) error
	// Seed stores m only when no machine with its id exists yet.
	Seed(ctx context.Context, m domain.Machine) (bool, error)

	// Spin draws and evaluates a grid. A zero bet plays the machine's default bet.
	Spin(ctx context.Context, id string, bet int64) (*domain.SpinResult, error)
	// Evaluate scores a caller-supplied grid. A zero bet plays the default bet.
	Evaluate(ctx context.Context, id string, grid domain.Grid, bet int64) (*domain.SpinResult, error)
	Simulate(ctx context.Context, id string, req slots.SimulationRequest) (*slots.SimulationReport, error)

	GetCacheStats() CacheStats
	Ping(ctx context.Context) error
}

// Option configures the service
type Option func(*service)

// WithRNG makes every engine draw from rng. Intended for tests and replays.
func WithRNG(rng slots.RNG) Option {
	return func(s *service) { s.rng = rng }
}

// WithCacheConfig sizes the engine cache
func WithCacheConfig(cfg CacheConfig) Option {
	return func(s *service) { s.cacheConfig = cfg }
}

// WithMaxSimulationWorkers caps the workers a single simulation may use
func WithMaxSimulationWorkers(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.maxSimWorkers = n
		}
	}
}

type service struct {
	repo          repository.Machine
	cache         *engineCache
	cacheConfig   CacheConfig
	rng           slots.RNG // Injectable for testing
	maxSimWorkers int
	now           func() time.Time
}

// NewService creates a new machine service
func NewService(repo repository.Machine, opts ...Option) Service {
	s := &service{
		repo:          repo,
		cacheConfig:   DefaultCacheConfig(),
		maxSimWorkers: slots.MaxSimulationWorkers,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache = newEngineCache(s.cacheConfig)
	return s
}

func (s *service) GetMachine(ctx context.Context, id string) (*domain.Machine, error) {
	entry, err := s.engine(ctx, id)
	if err != nil {
		return nil, err
	}
	m := entry.Machine
	m.Config = entry.Engine.Config()
	return &m, nil
}

func (s *service) ListMachines(ctx context.Context) ([]domain.Machine, error) {
	machines, err := s.repo.ListMachines(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMachines, err)
	}
	if machines == nil {
		machines = []domain.Machine{}
	}
	return machines, nil
}

func (s *service) SaveMachine(ctx context.Context, m domain.Machine) (*domain.Machine, error) {
	log := logger.FromContext(ctx)

	if m.ID == "" {
		return nil, fmt.Errorf("%w: machine id is required", domain.ErrInvalidInput)
	}
	if m.Name == "" {
		m.Name = m.ID
	}
	// Building the engine is the validation; the engine is cached on success.
	e, err := s.newEngine(m.Config)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveMachine(ctx, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSaveMachine, err)
	}
	s.cache.Invalidate(m.ID)
	s.cache.Set(m, e)
	metrics.MachinesSaved.Inc()

	log.Info(LogMsgMachineSaved, "machine_id", m.ID, "version", m.Version)
	return &m, nil
}

func (s *service) DeleteMachine(ctx context.Context, id string) error {
	if err := s.repo.DeleteMachine(ctx, id); err != nil {
		if errors.Is(err, domain.ErrMachineNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteMachine, err)
	}
	s.cache.Invalidate(id)
	logger.FromContext(ctx).Info(LogMsgMachineDeleted, "machine_id", id)
	return nil
}

func (s *service) Seed(ctx context.Context, m domain.Machine) (bool, error) {
	_, err := s.repo.GetMachine(ctx, m.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrMachineNotFound) {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMachine, err)
	}
	saved, err := s.SaveMachine(ctx, m)
	if err != nil {
		return false, err
	}
	logger.FromContext(ctx).Info(LogMsgMachineSeeded, "machine_id", saved.ID, "version", saved.Version)
	return true, nil
}

func (s *service) Spin(ctx context.Context, id string, bet int64) (*domain.SpinResult, error) {
	return s.play(ctx, id, bet, metrics.ModeSpin, func(e *slots.Engine, bet int64) (*domain.SpinResult, error) {
		return e.Spin(bet)
	})
}

func (s *service) Evaluate(ctx context.Context, id string, grid domain.Grid, bet int64) (*domain.SpinResult, error) {
	return s.play(ctx, id, bet, metrics.ModeEvaluate, func(e *slots.Engine, bet int64) (*domain.SpinResult, error) {
		return e.Evaluate(grid, bet)
	})
}

type playFunc func(e *slots.Engine, bet int64) (*domain.SpinResult, error)

func (s *service) play(ctx context.Context, id string, bet int64, mode string, fn playFunc) (*domain.SpinResult, error) {
	ctx = logger.WithMachineID(ctx, id)
	log := logger.FromContext(ctx)

	entry, err := s.engine(ctx, id)
	if err != nil {
		metrics.RecordRejection(id, err)
		return nil, err
	}
	if bet == 0 {
		bet = entry.Machine.Config.DefaultBet
	}

	start := s.now()
	res, err := fn(entry.Engine, bet)
	if err != nil {
		metrics.RecordRejection(id, err)
		log.Debug(LogMsgSpinRejected, "mode", mode, "bet", bet, "error", err)
		return nil, err
	}
	elapsed := s.now().Sub(start)

	res.ID = uuid.NewString()
	res.MachineID = id
	metrics.RecordSpin(id, mode, res, elapsed)

	log.Debug(LogMsgSpinEvaluated,
		"spin_id", res.ID,
		"mode", mode,
		"bet", res.BetAmount,
		"payout", res.TotalPayout,
		"trigger", res.TriggerType)
	if res.TriggerType != slots.TriggerNormal {
		log.Info(LogMsgBigWin, "spin_id", res.ID, "payout", res.TotalPayout, "trigger", res.TriggerType)
	}
	return res, nil
}

func (s *service) Simulate(ctx context.Context, id string, req slots.SimulationRequest) (*slots.SimulationReport, error) {
	ctx = logger.WithMachineID(ctx, id)
	log := logger.FromContext(ctx)

	entry, err := s.engine(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Bet == 0 {
		req.Bet = entry.Machine.Config.DefaultBet
	}
	if req.Workers > s.maxSimWorkers {
		req.Workers = s.maxSimWorkers
	}

	log.Info(LogMsgSimulationStarted, "spins", req.Spins, "bet", req.Bet, "workers", req.Workers, "seed", req.Seed)
	start := s.now()
	report, err := slots.Simulate(ctx, entry.Engine, req)
	if err != nil {
		return nil, err
	}
	metrics.SimulationsTotal.WithLabelValues(id).Inc()
	log.Info(LogMsgSimulationDone, "spins", report.Spins, "rtp", report.RTP, "duration", s.now().Sub(start))
	return report, nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.Stats()
}

func (s *service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// engine returns the cached engine for id, building and caching it on a miss.
func (s *service) engine(ctx context.Context, id string) (*cachedEngine, error) {
	if entry, ok := s.cache.Get(id); ok {
		return entry, nil
	}

	m, err := s.repo.GetMachine(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMachineNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToLoadMachine, id, err)
	}

	e, err := s.newEngine(m.Config)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrEngineBuild, id, err)
	}
	s.cache.Set(*m, e)
	logger.FromContext(ctx).Debug(LogMsgEngineBuilt, "machine_id", id, "version", m.Version)

	return &cachedEngine{SchemaVersion: CacheSchemaVersion, Machine: *m, Engine: e, CachedAt: s.now()}, nil
}

func (s *service) newEngine(cfg domain.MachineConfig) (*slots.Engine, error) {
	var opts []slots.Option
	if s.rng != nil {
		opts = append(opts, slots.WithRNG(s.rng))
	}
	return slots.NewEngine(cfg, opts...)
}
