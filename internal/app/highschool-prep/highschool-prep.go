package highschoolprep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/highschool-prep/internal/cache"
	"github.com/magabrotheeeer/highschool-prep/internal/config"
	"github.com/magabrotheeeer/highschool-prep/internal/http/middlewarectx"
	"github.com/magabrotheeeer/highschool-prep/internal/lib/jwt"
	"github.com/magabrotheeeer/highschool-prep/internal/lib/password"
	"github.com/magabrotheeeer/highschool-prep/internal/lib/sl"
	"github.com/magabrotheeeer/highschool-prep/internal/paymentprovider"
	authservice "github.com/magabrotheeeer/highschool-prep/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/highschool-prep/internal/services/catalog"
	entitlement "github.com/magabrotheeeer/highschool-prep/internal/services/entitlement"
	"github.com/magabrotheeeer/highschool-prep/internal/services/payment"
	"github.com/magabrotheeeer/highschool-prep/internal/storage"
)

const shutdownTimeout = 15 * time.Second

// App HTTP-приложение с его зависимостями.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
}

// New подключается к MongoDB и redis, создаёт сервисы и HTTP-сервер.
// Redis необязателен: при пустом адресе каталог читается напрямую из базы.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.highschoolprep.New"

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	db, err := storage.New(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.EnsureIndexes(connectCtx); err != nil {
		_ = db.Close(context.Background())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var (
		redisCache   *cache.Cache
		catalogCache catalogservice.Cache
	)
	if cfg.RedisAddress != "" {
		redisCache, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			_ = db.Close(context.Background())
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		catalogCache = redisCache
	} else {
		logger.Info("redis address is empty, catalog cache disabled")
	}

	policy, err := entitlement.PolicyByName(cfg.DurationPolicy)
	if err != nil {
		_ = db.Close(context.Background())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.StripeAPIKey == "" || cfg.StripeWebhookSecret == "" {
		logger.Warn("stripe credentials are not fully configured, checkout and webhooks will fail")
	}

	users := storage.NewUsersRepository(db)
	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(users, password.NewHasher(cfg.BcryptCost), jwtMaker, logger)
	entitlementService := entitlement.New(users, policy, logger)
	gateway := paymentprovider.NewClient(paymentprovider.Config{
		APIKey:        cfg.StripeAPIKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		BackendURL:    cfg.StripeBackendURL,
	}, logger)
	paymentService := payment.New(gateway, authService, entitlementService, cfg.ClientOrigin, logger)
	catalogService := catalogservice.NewCatalogService(storage.NewCatalogRepository(db), catalogCache, cfg.CacheTTL, logger)

	cookies := middlewarectx.NewSessionCookies(cfg.IsProduction(), cfg.TokenTTL)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg.ClientOrigin, cookies, Services{
		Auth:    authService,
		Payment: paymentService,
		Catalog: catalogService,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  redisCache,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.db.Close(ctx); err != nil {
		a.logger.Error("failed to close mongo client", sl.Err(err))
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("failed to close redis client", sl.Err(err))
		}
	}
}
