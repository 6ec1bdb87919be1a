package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pondside/fishing-expedition-backend/internal/session"
	"github.com/pondside/fishing-expedition-backend/internal/ws"
)

func SetupRoutes(s *session.Session, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/ws", ws.Handler(s, log))
	r.Get("/leaderboard", Leaderboard(s))
	r.Get("/healthz", Healthz)
	r.Handle("/metrics", promhttp.Handler())
	return r
}
