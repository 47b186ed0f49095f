package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Engine Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelMachine, LabelMode, LabelTrigger},
	)

	WageredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWageredTotal,
			Help: HelpTextWageredTotal,
		},
		[]string{LabelMachine},
	)

	PaidTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePaidTotal,
			Help: HelpTextPaidTotal,
		},
		[]string{LabelMachine},
	)

	SpinRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinRejections,
			Help: HelpTextSpinRejections,
		},
		[]string{LabelMachine, LabelReason},
	)

	EvaluationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameEvaluationDuration,
			Help:    HelpTextEvaluationDuration,
			Buckets: EvaluationBuckets,
		},
		[]string{LabelMode},
	)

	EngineCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEngineCacheLookups,
			Help: HelpTextEngineCacheLookups,
		},
		[]string{LabelResult},
	)

	SimulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSimulationsTotal,
			Help: HelpTextSimulationsTotal,
		},
		[]string{LabelMachine},
	)

	MachinesSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMachinesSaved,
			Help: HelpTextMachinesSaved,
		},
	)
)
