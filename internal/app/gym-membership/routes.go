// Package gymmembership собирает консоль участников и служебный HTTP‑сервер.
package gymmembership

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/health"
	"github.com/magabrotheeeer/gym-membership/internal/http/response"
)

// RegisterRoutes регистрирует служебные маршруты: метрики и health-check.
func RegisterRoutes(r chi.Router, logger *slog.Logger, gatherer prometheus.Gatherer, members health.MemberCounter) {
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
	)

	r.Get("/health", health.New(logger, members).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.NotFound(errorHandler(http.StatusNotFound, "not found"))
	r.MethodNotAllowed(errorHandler(http.StatusMethodNotAllowed, "method not allowed"))
}

func errorHandler(status int, msg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, status)
		render.JSON(w, r, response.Error(msg))
	}
}
