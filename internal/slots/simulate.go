package slots

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/utils"
)

// SimulationRequest describes a batch of spins used to estimate return-to-player.
type SimulationRequest struct {
	Spins   int   `json:"spins" validate:"required,min=1,max=10000000"`
	Bet     int64 `json:"bet" validate:"required,gt=0"`
	Workers int   `json:"workers,omitempty" validate:"omitempty,min=1,max=64"`
	Seed    int64 `json:"seed,omitempty"` // 0 = crypto source, not reproducible
}

// SimulationReport aggregates a simulation run.
type SimulationReport struct {
	Spins          int            `json:"spins"`
	Bet            int64          `json:"bet"`
	TotalWagered   int64          `json:"total_wagered"`
	TotalPaid      int64          `json:"total_paid"`
	RTP            float64        `json:"rtp"`
	HitRate        float64        `json:"hit_rate"`
	ScatterHitRate float64        `json:"scatter_hit_rate"`
	MaxWin         int64          `json:"max_win"`
	Triggers       map[string]int `json:"triggers"`
}

type simTally struct {
	spins       int
	paid        decimal.Decimal
	hits        int
	scatterHits int
	maxWin      int64
	triggers    map[string]int
}

// ctxCheckInterval is how many spins a worker runs between context checks.
const ctxCheckInterval = 1024

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// Simulate spins the engine req.Spins times across worker goroutines. With a
// non-zero seed, worker i draws from seed+i so totals are reproducible.
func Simulate(ctx context.Context, e *Engine, req SimulationRequest) (*SimulationReport, error) {
	if req.Spins <= 0 || req.Spins > MaxSimulationSpins {
		return nil, fmt.Errorf("%w: spins must be between 1 and %d", domain.ErrInvalidInput, MaxSimulationSpins)
	}
	if err := e.ValidateBet(req.Bet); err != nil {
		return nil, err
	}
	workers := req.Workers
	if workers <= 0 {
		workers = DefaultSimWorkers
	}
	if workers > MaxSimulationWorkers {
		workers = MaxSimulationWorkers
	}
	if workers > req.Spins {
		workers = req.Spins
	}
	if _, ok := int64Total(decimal.NewFromInt(int64(req.Spins)).Mul(decimal.NewFromInt(req.Bet))); !ok {
		return nil, fmt.Errorf("%w: %d spins at bet %d exceed the wager total range", domain.ErrInvalidInput, req.Spins, req.Bet)
	}

	tallies := make([]simTally, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		share := req.Spins / workers
		if w < req.Spins%workers {
			share++
		}

		var rng RNG
		if req.Seed != 0 {
			rng = utils.NewSeededIntn(req.Seed + int64(w))
		}
		worker := e.WithRNG(rng)
		tally := &tallies[w]
		tally.triggers = make(map[string]int)

		g.Go(func() error {
			for i := 0; i < share; i++ {
				if i%ctxCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				res, err := worker.Spin(req.Bet)
				if err != nil {
					return err
				}
				tally.add(res)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation aborted: %w", err)
	}

	return buildReport(tallies, req.Bet)
}

// buildReport merges worker tallies. Totals are summed as decimals and only
// narrowed to int64 at the end.
func buildReport(tallies []simTally, bet int64) (*SimulationReport, error) {
	report := &SimulationReport{
		Bet:      bet,
		Triggers: make(map[string]int),
	}
	var hits, scatterHits int
	paid := decimal.Zero
	for _, t := range tallies {
		report.Spins += t.spins
		paid = paid.Add(t.paid)
		hits += t.hits
		scatterHits += t.scatterHits
		if t.maxWin > report.MaxWin {
			report.MaxWin = t.maxWin
		}
		for k, v := range t.triggers {
			report.Triggers[k] += v
		}
	}

	wagered := decimal.NewFromInt(int64(report.Spins)).Mul(decimal.NewFromInt(bet))
	var ok bool
	if report.TotalWagered, ok = int64Total(wagered); !ok {
		return nil, fmt.Errorf("%w: total wagered %s exceeds int64", domain.ErrInvalidInput, wagered)
	}
	if report.TotalPaid, ok = int64Total(paid); !ok {
		return nil, fmt.Errorf("%w: total paid %s exceeds int64", domain.ErrInvalidInput, paid)
	}
	if wagered.IsPositive() {
		report.RTP = paid.Div(wagered).InexactFloat64()
	}
	if report.Spins > 0 {
		report.HitRate = float64(hits) / float64(report.Spins)
		report.ScatterHitRate = float64(scatterHits) / float64(report.Spins)
	}
	return report, nil
}

func int64Total(d decimal.Decimal) (int64, bool) {
	if d.GreaterThan(maxInt64) {
		return 0, false
	}
	return d.IntPart(), true
}

func (t *simTally) add(res *domain.SpinResult) {
	t.spins++
	t.paid = t.paid.Add(decimal.NewFromInt(res.TotalPayout))
	if res.TotalPayout > 0 {
		t.hits++
	}
	if res.Scatter != nil {
		t.scatterHits++
	}
	if res.TotalPayout > t.maxWin {
		t.maxWin = res.TotalPayout
	}
	t.triggers[res.TriggerType]++
}
