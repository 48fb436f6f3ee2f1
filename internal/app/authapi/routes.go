package authapi

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/http/handlers/auth/checkotp"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/http/handlers/auth/forget"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/http/handlers/auth/login"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/http/handlers/auth/otp"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/http/handlers/auth/register"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/http/handlers/auth/reset"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/http/handlers/health"
	services "github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/services/auth"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/storage"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *services.AuthService, db *storage.Storage, env string) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		r.Post("/forget", forget.New(logger, authService).ServeHTTP)
		r.Post("/checkOtp", checkotp.New(logger, authService).ServeHTTP)
		r.Post("/reset", reset.New(logger, authService).ServeHTTP)

		// ТОЛЬКО ДЛЯ ТЕСТИРОВАНИЯ: чтение выданного кода доступно лишь в local
		if env == "local" {
			r.Post("/otp", otp.New(logger, db).ServeHTTP)
		}
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
