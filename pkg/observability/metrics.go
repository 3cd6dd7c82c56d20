package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	PostsCreated prometheus.Counter
	PostsDeleted prometheus.Counter
	PostLikes    prometheus.Counter
	PostViews    prometheus.Counter
}

// NewCollector creates a metrics collector with its own registry so tests
// can build fresh collectors without duplicate-registration panics.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	postsCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_created_total",
			Help:      "Total number of posts created",
		},
	)

	postsDeleted := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_deleted_total",
			Help:      "Total number of posts deleted",
		},
	)

	postLikes := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "post_likes_total",
			Help:      "Total number of likes recorded across all posts",
		},
	)

	postViews := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "post_views_total",
			Help:      "Total number of single-post reads",
		},
	)

	registry.MustRegister(httpRequests, httpDuration, postsCreated, postsDeleted, postLikes, postViews)

	return &Collector{
		registry:     registry,
		HTTPRequests: httpRequests,
		HTTPDuration: httpDuration,
		PostsCreated: postsCreated,
		PostsDeleted: postsDeleted,
		PostLikes:    postLikes,
		PostViews:    postViews,
	}
}

// Registry exposes the collector's registry for the /metrics handler.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
