package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of handled HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

var (
	PurchasesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "purchases_created_total",
			Help: "Number of purchases created successfully",
		},
	)
	PurchasesDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "purchases_deleted_total",
			Help: "Number of purchases deleted",
		},
	)
)

var (
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_events_published_total",
			Help: "Number of store events published to the broker",
		},
		[]string{"type"},
	)
	EventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_events_failed_total",
			Help: "Number of store events that failed to publish",
		},
		[]string{"type"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрация всех коллекторов; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequests, PurchasesCreated, PurchasesDeleted, EventsPublished, EventsFailed)
	})
}
