// Package main HighSchool Prep API
//
// @title           HighSchool Prep API
// @version         1.0
// @description     API каталога учебных материалов, аутентификации и покупки премиум-доступа
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name highschoolprep
// @description Сессионный JWT, выставляемый при входе.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	highschoolprep "github.com/magabrotheeeer/highschool-prep/internal/app/highschool-prep"
	"github.com/magabrotheeeer/highschool-prep/internal/config"
)

func main() {
	cfg := config.MustLoad()
	logger := setupLogger(cfg)

	logger.Info("starting highschool-prep", slog.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := highschoolprep.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("highschool-prep stopped gracefully")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
