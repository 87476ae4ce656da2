package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	statementsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablewise_statements_total",
			Help: "Total number of executed statements by dialect, operation and status.",
		},
		[]string{"dialect", "operation", "status"},
	)

	statementDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tablewise_statement_duration_seconds",
			Help:    "Statement latency by operation.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	schemaReflectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablewise_schema_reflections_total",
			Help: "Total number of live schema introspections by dialect.",
		},
		[]string{"dialect"},
	)

	schemaCacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tablewise_schema_cache_hits_total",
			Help: "Total number of schema lookups served from the cache.",
		},
	)

	atomicRollbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablewise_atomic_rollbacks_total",
			Help: "Total number of atomic executions rolled back.",
		},
		[]string{"dialect"},
	)

	enginesOpenedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablewise_engines_opened_total",
			Help: "Total number of engines opened by dialect.",
		},
		[]string{"dialect"},
	)
)

func init() {
	prometheus.MustRegister(
		statementsTotal,
		statementDurationSeconds,
		schemaReflectionsTotal,
		schemaCacheHitsTotal,
		atomicRollbacksTotal,
		enginesOpenedTotal,
	)
}

// ObserveStatement records one executed statement.
func ObserveStatement(dialect, operation, status string, elapsed time.Duration) {
	statementsTotal.WithLabelValues(dialect, operation, status).Inc()
	statementDurationSeconds.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// RecordSchemaReflection records one live schema introspection.
func RecordSchemaReflection(dialect string) {
	schemaReflectionsTotal.WithLabelValues(dialect).Inc()
}

// RecordSchemaCacheHit records one schema lookup served from the cache.
func RecordSchemaCacheHit() {
	schemaCacheHitsTotal.Inc()
}

// RecordAtomicRollback records one rolled-back atomic execution.
func RecordAtomicRollback(dialect string) {
	atomicRollbacksTotal.WithLabelValues(dialect).Inc()
}

// RecordEngineOpened records one successful engine open.
func RecordEngineOpened(dialect string) {
	enginesOpenedTotal.WithLabelValues(dialect).Inc()
}
