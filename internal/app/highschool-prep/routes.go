// Package highschoolprep собирает HTTP-приложение: хранилище, сервисы и маршруты.
package highschoolprep

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/highschool-prep/internal/http/handlers/auth/currentuser"
	"github.com/magabrotheeeer/highschool-prep/internal/http/handlers/auth/google"
	"github.com/magabrotheeeer/highschool-prep/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/highschool-prep/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/highschool-prep/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/highschool-prep/internal/http/handlers/catalog/grades"
	"github.com/magabrotheeeer/highschool-prep/internal/http/handlers/catalog/subject"
	"github.com/magabrotheeeer/highschool-prep/internal/http/handlers/catalog/unit"
	"github.com/magabrotheeeer/highschool-prep/internal/http/handlers/health"
	"github.com/magabrotheeeer/highschool-prep/internal/http/handlers/payment/checkout"
	"github.com/magabrotheeeer/highschool-prep/internal/http/handlers/payment/checkuser"
	"github.com/magabrotheeeer/highschool-prep/internal/http/handlers/payment/webhook"
	"github.com/magabrotheeeer/highschool-prep/internal/http/middlewarectx"
	"github.com/magabrotheeeer/highschool-prep/internal/metrics"
	authservice "github.com/magabrotheeeer/highschool-prep/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/highschool-prep/internal/services/catalog"
	"github.com/magabrotheeeer/highschool-prep/internal/services/payment"

	_ "github.com/magabrotheeeer/highschool-prep/docs"
)

// Services набор сервисов, которые обслуживают маршруты.
type Services struct {
	Auth    *authservice.AuthService
	Payment *payment.Service
	Catalog *catalogservice.CatalogService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, clientOrigin string, cookies *middlewarectx.SessionCookies, svc Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		metrics.Middleware,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{clientOrigin},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", "Stripe-Signature"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)

	// Каталог
	r.Get("/getGrades", grades.New(logger, svc.Catalog).ServeHTTP)
	r.Get("/getGradeById/{subjectId}", subject.New(logger, svc.Catalog).ServeHTTP)
	r.Get("/getUnit/{unitId}", unit.New(logger, svc.Catalog).ServeHTTP)

	// Аутентификация
	r.Post("/create-user", register.New(logger, svc.Auth, cookies).ServeHTTP)
	r.Post("/get-user", login.New(logger, svc.Auth, cookies).ServeHTTP)
	r.Post("/create-user-google", google.New(logger, svc.Auth, cookies).ServeHTTP)
	r.Post("/logout", logout.New(logger, cookies).ServeHTTP)

	// Группа с проверкой сессии
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.SessionMiddleware(cookies, svc.Auth, logger))
		r.Get("/current-user", currentuser.New(logger, svc.Auth, cookies).ServeHTTP)
	})

	// Оплата. Сессия проверяется сервисом после проверки тарифа.
	r.Post("/create-checkout-session", checkout.New(logger, svc.Payment, cookies).ServeHTTP)
	r.Post("/check-user", checkuser.New(logger, svc.Payment, cookies).ServeHTTP)
	r.Post("/stripe-check-webhook", webhook.New(logger, svc.Payment).ServeHTTP)

	r.Get("/test", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
