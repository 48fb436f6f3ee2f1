// Package authapi собирает HTTP-приложение сервиса аутентификации:
// хранилище, миграции, подписант токенов, бизнес-логика и маршруты.
package authapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/config"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/lib/jwt"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/migrations"
	services "github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/services/auth"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/storage"
)

// App инкапсулирует HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New создаёт приложение: подключается к базе, накатывает миграции
// и собирает маршрутизатор со всеми обработчиками.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}
	if err = db.CheckDatabaseReady(ctx); err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := services.NewAuthService(db, jwtMaker, cfg.OtpTTL)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, db, cfg.Env)

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
	}, nil
}

// Run запускает HTTP-сервер и корректно останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	defer func() { _ = a.db.DB.Close() }()

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
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
