// Package register реализует обработчик действия регистрации.
//
// Обработчик принимает поля формы, вызывает бизнес-логику регистрации
// и завершается flash-сообщением с редиректом: при успехе — на страницу
// входа, при любой ошибке — обратно на форму регистрации.
package register

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

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, form models.RegisterForm) (int64, error)
}

// Handler управляет запросами на регистрацию.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := middlewarectx.FromContext(r.Context())
	form := models.RegisterForm{
		Name:     strings.TrimSpace(r.PostFormValue("name")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}

	_, err := h.service.Register(r.Context(), form)
	switch {
	case errors.Is(err, errs.ErrDuplicateEmail):
		response.FlashAndRedirect(w, r, sess, session.LevelError,
			"Aquest correu ja està registrat.", "register")
	case errs.IsValidation(err):
		response.FlashAndRedirect(w, r, sess, session.LevelError,
			validationMessage(err), "register")
	case err != nil:
		log.Error("failed to register user", sl.Err(err))
		response.FlashAndRedirect(w, r, sess, session.LevelError,
			"No s'ha pogut crear el compte.", "register")
	default:
		response.FlashAndRedirect(w, r, sess, session.LevelSuccess,
			"Compte creat! Ja pots iniciar sessió.", "login")
	}
}

func validationMessage(err error) string {
	var ve *errs.ValidationError
	if !errors.As(err, &ve) || ve.Msg == "is required" {
		return "Omple tots els camps."
	}
	switch ve.Field {
	case "Email":
		return "El correu electrònic no és vàlid."
	case "Password":
		return "La contrasenya ha de tenir com a mínim 6 caràcters."
	default:
		return "Omple tots els camps."
	}
}
