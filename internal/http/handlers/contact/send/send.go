// Package send реализует обработчик публичной формы обратной связи.
package send

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

// Service описывает интерфейс бизнес-логики обратной связи.
type Service interface {
	Send(ctx context.Context, form models.ContactForm) error
}

// Handler управляет запросами формы обратной связи.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.send"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := middlewarectx.FromContext(r.Context())
	form := models.ContactForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Subject: strings.TrimSpace(r.PostFormValue("subject")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}

	err := h.service.Send(r.Context(), form)
	switch {
	case errs.IsValidation(err):
		response.FlashAndRedirect(w, r, sess, session.LevelError,
			validationMessage(err), "contact")
	case err != nil:
		log.Error("failed to store contact message", sl.Err(err))
		response.FlashAndRedirect(w, r, sess, session.LevelError,
			"No s'ha pogut enviar el missatge.", "contact")
	default:
		response.FlashAndRedirect(w, r, sess, session.LevelSuccess,
			"Missatge enviat! (Guardat a la BD com a demo)", "contact")
	}
}

func validationMessage(err error) string {
	var ve *errs.ValidationError
	if !errors.As(err, &ve) || ve.Msg == "is required" {
		return "Omple tots els camps del contacte."
	}
	switch ve.Field {
	case "Email":
		return "El correu no és vàlid."
	case "Message":
		return "El missatge és massa curt (mínim 10 caràcters)."
	default:
		return "Omple tots els camps del contacte."
	}
}
