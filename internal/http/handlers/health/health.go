package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
)

// MemberCounter возвращает количество участников в хранилище.
type MemberCounter interface {
	Count() int
}

type Handler struct {
	log     *slog.Logger
	members MemberCounter
}

func New(log *slog.Logger, members MemberCounter) *Handler {
	return &Handler{
		log:     log,
		members: members,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"
	h.log.Debug("health check",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"status":  "ok",
		"members": h.members.Count(),
	}))
}
