// Package login реализует обработчик действия входа.
//
// При успешной проверке учётных данных идентификатор сессии ротируется
// (защита от фиксации сессии), личность привязывается к сессии и
// посетитель перенаправляется в приватную зону.
package login

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

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, form models.LoginForm) (*models.User, error)
}

// Handler управляет запросами на вход.
type Handler struct {
	log      *slog.Logger
	service  Service
	sessions *session.Store
}

// New создает новый Handler; sessions нужен для ротации идентификатора.
func New(log *slog.Logger, service Service, sessions *session.Store) *Handler {
	return &Handler{log: log, service: service, sessions: sessions}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := middlewarectx.FromContext(r.Context())
	form := models.LoginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}

	user, err := h.service.Login(r.Context(), form)
	switch {
	case errs.IsValidation(err):
		response.FlashAndRedirect(w, r, sess, session.LevelError,
			"Introdueix correu i contrasenya.", "login")
		return
	case errors.Is(err, errs.ErrInvalidCredentials):
		response.FlashAndRedirect(w, r, sess, session.LevelError,
			"Credencials incorrectes.", "login")
		return
	case err != nil:
		log.Error("failed to log in", sl.Err(err))
		response.FlashAndRedirect(w, r, sess, session.LevelError,
			"No s'ha pogut iniciar la sessió.", "login")
		return
	}

	// Ротация до привязки личности: старый идентификатор и CSRF-токен
	// становятся бесполезными для злоумышленника.
	h.sessions.Renew(w, sess)
	sess.BindIdentity(user)

	log.Info("user logged in", slog.Int64("user_id", user.ID))
	response.FlashAndRedirect(w, r, sess, session.LevelSuccess,
		"Benvingut/da, "+user.Name+"!", "dashboard")
}
