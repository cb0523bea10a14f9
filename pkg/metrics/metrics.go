// Package metrics provides Prometheus metrics for the subscription flow
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Subscription outcomes recorded by the backend
const (
	OutcomePending           = "pending"
	OutcomeAlreadySubscribed = "already_subscribed"
	OutcomeInvalid           = "invalid"
	OutcomeMailFailed        = "mail_failed"
	OutcomeConfirmed         = "confirmed"
	OutcomeExpired           = "expired"
)

// Metrics contains Prometheus metrics for the newsletter service
type Metrics struct {
	registry *prometheus.Registry

	subscriptionsTotal     *prometheus.CounterVec
	confirmationsTotal     *prometheus.CounterVec
	widgetSubmissionsTotal *prometheus.CounterVec
}

// New creates and registers the newsletter metrics on registry
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{registry: registry}

	m.subscriptionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_subscriptions_total",
			Help: "Subscribe requests handled by the backend, by outcome",
		},
		[]string{"outcome"},
	)
	m.confirmationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_confirmations_total",
			Help: "Confirmation links followed, by outcome",
		},
		[]string{"outcome"},
	)
	m.widgetSubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_widget_submissions_total",
			Help: "Server-rendered widget submissions, by whether the write succeeded",
		},
		[]string{"result"},
	)

	registry.MustRegister(m.subscriptionsTotal, m.confirmationsTotal, m.widgetSubmissionsTotal)
	return m
}

// Registry returns the registry the metrics are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordSubscription counts a subscribe request outcome
func (m *Metrics) RecordSubscription(outcome string) {
	m.subscriptionsTotal.WithLabelValues(outcome).Inc()
}

// RecordConfirmation counts a confirmation outcome
func (m *Metrics) RecordConfirmation(outcome string) {
	m.confirmationsTotal.WithLabelValues(outcome).Inc()
}

// RecordWidgetSubmission counts a settled widget submission
func (m *Metrics) RecordWidgetSubmission(err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.widgetSubmissionsTotal.WithLabelValues(result).Inc()
}
