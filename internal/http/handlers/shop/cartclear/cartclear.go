// Package cartclear реализует обработчик опустошения корзины.
package cartclear

import (
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/propulse/internal/http/middlewarectx"
	"github.com/magabrotheeeer/propulse/internal/http/response"
	"github.com/magabrotheeeer/propulse/internal/session"
)

// Service описывает интерфейс бизнес-логики корзины.
type Service interface {
	ClearCart(sess *session.Session)
}

// Handler управляет запросами на опустошение корзины.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := middlewarectx.FromContext(r.Context())
	h.service.ClearCart(sess)

	response.FlashAndRedirect(w, r, sess, session.LevelSuccess,
		"Carret buidat.", "cart")
}
