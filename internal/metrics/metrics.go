package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "poa_jobs_submitted_total",
		Help: "Total number of jobs placed on the processing queue.",
	})

	JobsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "poa_jobs_completed_total",
		Help: "Total number of jobs fully processed by the engine.",
	})

	JobsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "poa_jobs_dropped_total",
		Help: "Total number of jobs rejected due to a full queue.",
	})

	ReadsFolded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "poa_reads_folded_total",
		Help: "Total number of reads folded into a graph across all jobs.",
	})

	GraphVertices = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "poa_graph_vertices",
		Help:    "Vertex count of a job's graph after folding all of its reads.",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	ConsensusLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "poa_consensus_length",
		Help:    "Length in bases of a job's extracted consensus sequence.",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	VariantsProposed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "poa_variants_proposed_total",
		Help: "Total number of candidate mutations proposed, labelled by kind.",
	}, []string{"kind"})

	JobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "poa_job_duration_ms",
		Help:    "End-to-end job processing latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	QueueUtilization = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "poa_queue_utilization_ratio",
		Help: "Current job queue utilization (0–1).",
	})
)
