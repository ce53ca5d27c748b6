package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewPostingsIngestedTotal returns a Prometheus counter for the number of feed postings stored as vacancies
func NewPostingsIngestedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "postings_ingested_total",
		Help: "Total number of feed postings stored as vacancies",
	})
}

// NewPostingsSkippedTotal returns a Prometheus counter for the number of feed postings skipped as invalid or duplicate
func NewPostingsSkippedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "postings_skipped_total",
		Help: "Total number of feed postings skipped as invalid or duplicate",
	})
}
