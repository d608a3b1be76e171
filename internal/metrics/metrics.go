// Package metrics defines the Prometheus collectors for the fulfillment core.
// Collectors are package-level so any layer can increment them without wiring;
// Register must be called once at startup before the /metrics endpoint serves.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// OrdersCreated counts orders accepted from the checkout collaborator.
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_orders_created_total",
		Help: "Total number of orders created",
	})

	// OrderTransitions counts lifecycle transitions by target status.
	OrderTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_order_transitions_total",
		Help: "Total number of order status transitions, labeled by target status",
	}, []string{"status"})

	// DispatchAttempts counts dispatch sweeps by outcome:
	// assigned, no_partner, vendor_unlocated, error.
	DispatchAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_dispatch_attempts_total",
		Help: "Total number of dispatch attempts, labeled by outcome",
	}, []string{"outcome"})

	// TrackingSamplesAccepted counts position samples written to storage.
	TrackingSamplesAccepted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_tracking_samples_accepted_total",
		Help: "Total number of accepted tracking samples",
	})

	// TrackingSamplesDropped counts position reports silently dropped because
	// the order was not out for delivery.
	TrackingSamplesDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_tracking_samples_dropped_total",
		Help: "Total number of dropped tracking samples",
	})

	// ChangePublishFailures counts change signals that could not be published.
	ChangePublishFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_change_publish_failures_total",
		Help: "Total number of failed change notifications",
	})

	// WebsocketSubscribers gauges the live websocket change feed connections.
	WebsocketSubscribers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fulfillment_websocket_subscribers",
		Help: "Current number of websocket change feed subscribers",
	})

	// RequestDuration observes HTTP handler latency by route and method.
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fulfillment_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// Register registers every collector with the default registry.
// Call once during startup.
func Register() {
	prometheus.MustRegister(
		OrdersCreated,
		OrderTransitions,
		DispatchAttempts,
		TrackingSamplesAccepted,
		TrackingSamplesDropped,
		ChangePublishFailures,
		WebsocketSubscribers,
		RequestDuration,
	)
}
