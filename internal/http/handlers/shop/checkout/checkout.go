// Package checkout реализует обработчик оформления (симулированного) заказа.
//
// Итоговые суммы пересчитываются по каталогу внутри бизнес-логики;
// корзина очищается только после успешной записи заказа.
package checkout

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/propulse/internal/http/middlewarectx"
	"github.com/magabrotheeeer/propulse/internal/http/response"
	"github.com/magabrotheeeer/propulse/internal/lib/sl"
	"github.com/magabrotheeeer/propulse/internal/models"
	"github.com/magabrotheeeer/propulse/internal/services/errs"
	"github.com/magabrotheeeer/propulse/internal/session"
)

// Service описывает интерфейс бизнес-логики оформления заказа.
type Service interface {
	Checkout(ctx context.Context, sess *session.Session, form models.CheckoutForm) (string, error)
}

// Handler управляет запросами на оформление заказа.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.shop.checkout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := middlewarectx.FromContext(r.Context())
	form := models.CheckoutForm{
		Name:  strings.TrimSpace(r.PostFormValue("buyer_name")),
		Email: strings.TrimSpace(r.PostFormValue("buyer_email")),
	}

	code, err := h.service.Checkout(r.Context(), sess, form)
	switch {
	case errs.IsValidation(err):
		response.FlashAndRedirect(w, r, sess, session.LevelError,
			validationMessage(err), "checkout")
	case errors.Is(err, errs.ErrEmptyCart):
		response.FlashAndRedirect(w, r, sess, session.LevelWarning,
			"El carret està buit.", "shop")
	case errors.Is(err, errs.ErrDuplicateOrderCode):
		// Коллизия кода заказа: корзина цела, покупку можно повторить.
		log.Warn("order code collision", sl.Err(err))
		response.FlashAndRedirect(w, r, sess, session.LevelWarning,
			"No s'ha pogut completar la compra, torna-ho a provar.", "checkout")
	case err != nil:
		log.Error("failed to complete checkout", sl.Err(err))
		response.FlashAndRedirect(w, r, sess, session.LevelError,
			"No s'ha pogut completar la compra.", "checkout")
	default:
		sess.SetFlash(session.LevelSuccess,
			"Compra simulada completada! Codi de comanda: "+code)
		response.RedirectOrder(w, r, code)
	}
}

func validationMessage(err error) string {
	var ve *errs.ValidationError
	if errors.As(err, &ve) && ve.Field == "Email" && ve.Msg != "is required" {
		return "El correu no és vàlid."
	}
	return "Omple el nom i el correu per finalitzar la compra (simulada)."
}
