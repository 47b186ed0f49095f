package metrics

import (
	"errors"
	"time"

	"github.com/osse101/slotengine/internal/domain"
)

// RecordSpin updates the business counters for one evaluated spin.
func RecordSpin(machineID, mode string, res *domain.SpinResult, elapsed time.Duration) {
	SpinsTotal.WithLabelValues(machineID, mode, res.TriggerType).Inc()
	WageredTotal.WithLabelValues(machineID).Add(float64(res.BetAmount))
	PaidTotal.WithLabelValues(machineID).Add(float64(res.TotalPayout))
	EvaluationDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// RecordRejection counts a spin refused before or during evaluation.
func RecordRejection(machineID string, err error) {
	SpinRejections.WithLabelValues(machineID, RejectionReason(err)).Inc()
}

// RejectionReason maps an engine error onto a bounded label value.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidBet):
		return ReasonInvalidBet
	case errors.Is(err, domain.ErrInvalidGrid):
		return ReasonInvalidGrid
	case errors.Is(err, domain.ErrUnexpectedSymbol):
		return ReasonSymbol
	case errors.Is(err, domain.ErrMachineNotFound):
		return ReasonUnknown
	default:
		return ReasonOther
	}
}
