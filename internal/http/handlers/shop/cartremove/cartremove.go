// Package cartremove реализует обработчик удаления товара из корзины.
// Операция идемпотентна: удаление отсутствующего товара не ошибка.
package cartremove

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/magabrotheeeer/propulse/internal/http/middlewarectx"
	"github.com/magabrotheeeer/propulse/internal/http/response"
	"github.com/magabrotheeeer/propulse/internal/session"
)

// Service описывает интерфейс бизнес-логики корзины.
type Service interface {
	RemoveFromCart(sess *session.Session, itemID int)
}

// Handler управляет запросами на удаление товара из корзины.
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

	pid, _ := strconv.Atoi(r.PostFormValue("pid"))
	h.service.RemoveFromCart(sess, pid)

	response.FlashAndRedirect(w, r, sess, session.LevelSuccess,
		"Producte eliminat del carret.", "cart")
}
