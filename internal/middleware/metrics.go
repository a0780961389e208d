package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// ActiveWebSockets is the gauge of currently open websocket connections.
	ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ripple_websocket_connections_active",
		Help: "Number of active WebSocket connections",
	})

	// FeedRequests counts computed feeds, labelled by outcome.
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_feed_requests_total",
		Help: "Total number of feed computations by outcome",
	}, []string{"outcome"})

	// ToggleRetries counts like-toggle operations that lost a store race
	// and went through the local retry path.
	ToggleRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_like_toggle_retries_total",
		Help: "Total number of like toggles retried after a store conflict",
	})

	// WebSocketDrops counts realtime messages dropped on the way to a
	// client, by reason.
	WebSocketDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_websocket_dropped_messages_total",
		Help: "Total number of WebSocket messages dropped by reason",
	}, []string{"reason"})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-instrumentation handler for prom.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
