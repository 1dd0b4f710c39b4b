// Package metrics exposes domain-level Prometheus counters for the
// contact-form pipeline. HTTP-level instrumentation (request counts,
// latencies) lives in the middleware package; the counters here track
// business events regardless of which transport triggered them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_received_total",
			Help: "Total number of contact form submissions stored",
		},
	)

	statusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_status_updates_total",
			Help: "Total number of submission status updates, by new status",
		},
		[]string{"status"},
	)

	repliesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_replies_sent_total",
			Help: "Total number of reply emails accepted by the email provider",
		},
	)

	emailFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_email_failures_total",
			Help: "Total number of failed email delivery attempts, by kind",
		},
		[]string{"kind"}, // "reply" or "notification"
	)
)

// RecordSubmission counts a stored contact-form submission.
func RecordSubmission() { submissionsReceived.Inc() }

// RecordStatusUpdate counts a status overwrite with the new label.
func RecordStatusUpdate(status string) { statusUpdates.WithLabelValues(status).Inc() }

// RecordReplySent counts a reply accepted by the provider.
func RecordReplySent() { repliesSent.Inc() }

// RecordEmailFailure counts a failed delivery attempt of the given kind.
func RecordEmailFailure(kind string) { emailFailures.WithLabelValues(kind).Inc() }
