package archive

import "github.com/prometheus/client_golang/prometheus"

var (
	archiveRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablewise_archive_runs_total",
			Help: "Total number of table archive runs by status.",
		},
		[]string{"status"},
	)

	archiveRowsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tablewise_archive_rows_total",
			Help: "Total number of rows written to archive snapshots.",
		},
	)

	archiveBytesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tablewise_archive_bytes_total",
			Help: "Total number of parquet bytes written to the object store.",
		},
	)
)

func init() {
	prometheus.MustRegister(archiveRunsTotal, archiveRowsTotal, archiveBytesTotal)
}

func recordRun(status string) {
	archiveRunsTotal.WithLabelValues(status).Inc()
}

func recordSnapshot(rows, sizeBytes int64) {
	if rows > 0 {
		archiveRowsTotal.Add(float64(rows))
	}
	if sizeBytes > 0 {
		archiveBytesTotal.Add(float64(sizeBytes))
	}
}
