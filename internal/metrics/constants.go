package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Engine metric names
const (
	MetricNameSpinsTotal         = "slot_spins_total"
	MetricNameWageredTotal       = "slot_wagered_total"
	MetricNamePaidTotal          = "slot_paid_total"
	MetricNameSpinRejections     = "slot_spin_rejections_total"
	MetricNameEvaluationDuration = "slot_evaluation_duration_seconds"
	MetricNameEngineCacheLookups = "slot_engine_cache_lookups_total"
	MetricNameSimulationsTotal   = "slot_simulations_total"
	MetricNameMachinesSaved      = "slot_machines_saved_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Engine metric help text
const (
	HelpTextSpinsTotal         = "Total number of evaluated spins"
	HelpTextWageredTotal       = "Total amount wagered across evaluated spins"
	HelpTextPaidTotal          = "Total amount paid out across evaluated spins"
	HelpTextSpinRejections     = "Total number of spins rejected before evaluation"
	HelpTextEvaluationDuration = "Time to generate and evaluate one grid in seconds"
	HelpTextEngineCacheLookups = "Engine cache lookups by result"
	HelpTextSimulationsTotal   = "Total number of RTP simulations run"
	HelpTextMachinesSaved      = "Total number of machine configurations saved"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelMachine = "machine"
	LabelTrigger = "trigger"
	LabelReason  = "reason"
	LabelResult  = "result"
	LabelMode    = "mode"
)

// Label values
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheStale = "stale"

	ModeSpin     = "spin"
	ModeEvaluate = "evaluate"

	ReasonInvalidBet  = "invalid_bet"
	ReasonInvalidGrid = "invalid_grid"
	ReasonSymbol      = "unexpected_symbol"
	ReasonUnknown     = "unknown_machine"
	ReasonOther       = "other"

	// UnmatchedRoute labels requests that did not hit a registered route
	UnmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// EvaluationBuckets covers a single grid evaluation, from 1µs to 10ms.
var EvaluationBuckets = []float64{.000001, .000005, .00001, .000025, .00005, .0001, .00025, .0005, .001, .0025, .01}
