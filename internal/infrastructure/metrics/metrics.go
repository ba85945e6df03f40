package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of one batch run.
type Metrics struct {
	registry *prometheus.Registry

	// Row metrics
	RowsRead    *prometheus.CounterVec
	RowsSkipped *prometheus.CounterVec

	// Migration metrics
	EntriesMigrated  prometheus.Counter
	CostRecords      prometheus.Counter
	AllocationGroups *prometheus.CounterVec
	AllocatedCost    prometheus.Counter

	// Report metrics
	SummaryBuckets *prometheus.CounterVec

	// Run metrics
	RunDuration    *prometheus.HistogramVec
	LastRunSuccess *prometheus.GaugeVec
}

// New creates all metrics on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		RowsRead: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salonledger_rows_read_total",
				Help: "Total number of source rows read",
			},
			[]string{"source"},
		),
		RowsSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salonledger_rows_skipped_total",
				Help: "Total number of source rows skipped",
			},
			[]string{"source", "reason"},
		),

		EntriesMigrated: factory.NewCounter(prometheus.CounterOpts{
			Name: "salonledger_entries_migrated_total",
			Help: "Total number of legacy revenue rows migrated",
		}),
		CostRecords: factory.NewCounter(prometheus.CounterOpts{
			Name: "salonledger_cost_records_total",
			Help: "Total number of legacy cost rows captured",
		}),
		AllocationGroups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salonledger_allocation_groups_total",
				Help: "Total number of (date, store) groups by allocation mode",
			},
			[]string{"mode"},
		),
		AllocatedCost: factory.NewCounter(prometheus.CounterOpts{
			Name: "salonledger_allocated_cost_total",
			Help: "Total shared cost allocated to revenue entries",
		}),

		SummaryBuckets: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salonledger_summary_buckets_total",
				Help: "Total number of summary buckets written",
			},
			[]string{"period"},
		),

		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "salonledger_run_duration_seconds",
				Help:    "Duration of batch runs",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		LastRunSuccess: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "salonledger_last_run_success",
				Help: "1 if the last run of the command succeeded",
			},
			[]string{"command"},
		),
	}
}

// Registry exposes the registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RowRead counts a row read from source.
func (m *Metrics) RowRead(source string) {
	m.RowsRead.WithLabelValues(source).Inc()
}

// RowSkipped counts a row of source dropped for reason.
func (m *Metrics) RowSkipped(source, reason string) {
	m.RowsSkipped.WithLabelValues(source, reason).Inc()
}

// EntryMigrated counts a migrated revenue row.
func (m *Metrics) EntryMigrated() {
	m.EntriesMigrated.Inc()
}

// CostRecorded counts a captured cost row.
func (m *Metrics) CostRecorded() {
	m.CostRecords.Inc()
}

// GroupAllocated counts an allocation group and the cost it distributed.
func (m *Metrics) GroupAllocated(mode string, cost float64) {
	m.AllocationGroups.WithLabelValues(mode).Inc()
	if cost > 0 {
		m.AllocatedCost.Add(cost)
	}
}

// BucketsWritten counts summary buckets of a period ("daily" or "monthly").
func (m *Metrics) BucketsWritten(period string, n int) {
	m.SummaryBuckets.WithLabelValues(period).Add(float64(n))
}

// ObserveRun records the outcome and duration of a command.
func (m *Metrics) ObserveRun(command string, started time.Time, err error) {
	m.RunDuration.WithLabelValues(command).Observe(time.Since(started).Seconds())
	if err != nil {
		m.LastRunSuccess.WithLabelValues(command).Set(0)
		return
	}
	m.LastRunSuccess.WithLabelValues(command).Set(1)
}

// WriteTextfile writes the registry in the text exposition format, as read by
// the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
