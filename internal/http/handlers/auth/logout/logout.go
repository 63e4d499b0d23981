// Package logout реализует обработчик действия выхода.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/propulse/internal/http/middlewarectx"
	"github.com/magabrotheeeer/propulse/internal/http/response"
	"github.com/magabrotheeeer/propulse/internal/session"
)

// Handler управляет запросами на выход.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := middlewarectx.FromContext(r.Context())
	// Снимается только личность; корзина сознательно переживает выход.
	sess.ClearIdentity()

	log.Info("user logged out")
	response.FlashAndRedirect(w, r, sess, session.LevelSuccess,
		"Sessió tancada correctament.", "home")
}
