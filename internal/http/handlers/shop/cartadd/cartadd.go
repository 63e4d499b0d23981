// Package cartadd реализует обработчик добавления товара в корзину.
package cartadd

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/propulse/internal/catalog"
	"github.com/magabrotheeeer/propulse/internal/http/middlewarectx"
	"github.com/magabrotheeeer/propulse/internal/http/response"
	"github.com/magabrotheeeer/propulse/internal/services/errs"
	"github.com/magabrotheeeer/propulse/internal/session"
)

// Service описывает интерфейс бизнес-логики корзины.
type Service interface {
	AddToCart(sess *session.Session, itemID, qty int) (catalog.Item, error)
}

// Handler управляет запросами на добавление товара в корзину.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.shop.cartadd"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := middlewarectx.FromContext(r.Context())

	// Нечисловой id гарантированно отсутствует в каталоге.
	pid, _ := strconv.Atoi(r.PostFormValue("pid"))
	qty, err := strconv.Atoi(r.PostFormValue("qty"))
	if err != nil {
		qty = 1
	}

	item, err := h.service.AddToCart(sess, pid, qty)
	if errors.Is(err, errs.ErrUnknownItem) {
		log.Info("rejected unknown catalog item", slog.Int("pid", pid))
		response.FlashAndRedirect(w, r, sess, session.LevelError,
			"Producte no trobat.", "shop")
		return
	}
	response.FlashAndRedirect(w, r, sess, session.LevelSuccess,
		"Afegit al carret: "+item.Name, "shop")
}
