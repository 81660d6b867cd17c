// Package metrics содержит Prometheus-метрики сервиса и HTTP middleware для их сбора.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы операций для меток outcome.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

var (
	// HTTPRequestsTotal считает HTTP запросы по маршруту, методу и коду ответа.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration измеряет время обработки запроса.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// AuthAttemptsTotal считает попытки регистрации и входа.
	// Labels:
	//   - method: "register", "login", "google"
	//   - outcome: "success", "failure", "error"
	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"method", "outcome"},
	)

	// CheckoutSessionsTotal считает попытки создать сессию оплаты.
	CheckoutSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "Total number of checkout session attempts",
		},
		[]string{"package", "outcome"},
	)

	// WebhookEventsTotal считает входящие события платёжного шлюза по типу.
	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_webhook_events_total",
			Help: "Total number of payment webhook events",
		},
		[]string{"type"},
	)

	// PremiumActivationsTotal считает успешные активации премиума по тарифу.
	PremiumActivationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "premium_activations_total",
			Help: "Total number of premium activations",
		},
		[]string{"package"},
	)

	// PremiumActivationUnresolvedTotal считает оплаты, пользователь которых не найден.
	PremiumActivationUnresolvedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "premium_activation_unresolved_total",
			Help: "Total number of completed payments whose user could not be resolved",
		},
	)

	// CatalogCacheTotal считает обращения к кэшу каталога.
	// Labels:
	//   - result: "hit", "miss", "error"
	CatalogCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_requests_total",
			Help: "Total number of catalog cache lookups",
		},
		[]string{"result"},
	)
)

// RecordAuthAttempt увеличивает счётчик попыток аутентификации.
func RecordAuthAttempt(method, outcome string) {
	AuthAttemptsTotal.WithLabelValues(method, outcome).Inc()
}

// RecordCheckout увеличивает счётчик сессий оплаты.
func RecordCheckout(pkg, outcome string) {
	CheckoutSessionsTotal.WithLabelValues(pkg, outcome).Inc()
}

// RecordWebhookEvent увеличивает счётчик событий вебхука.
func RecordWebhookEvent(eventType string) {
	WebhookEventsTotal.WithLabelValues(eventType).Inc()
}

// RecordPremiumActivation увеличивает счётчик активаций.
func RecordPremiumActivation(pkg string) {
	PremiumActivationsTotal.WithLabelValues(pkg).Inc()
}

// RecordUnresolvedActivation увеличивает счётчик неразрешённых активаций.
func RecordUnresolvedActivation() {
	PremiumActivationUnresolvedTotal.Inc()
}

// RecordCatalogCache увеличивает счётчик обращений к кэшу каталога.
func RecordCatalogCache(result string) {
	CatalogCacheTotal.WithLabelValues(result).Inc()
}

// Middleware собирает метрики запросов. Маршрут берётся из шаблона chi,
// чтобы идентификаторы в пути не раздували кардинальность.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
