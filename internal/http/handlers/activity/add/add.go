// Package add реализует обработчик добавления записи активности
// в приватной зоне.
//
// Владелец записи всегда берётся из аутентифицированной сессии; поле
// владельца из формы не принимается. Каждое правило валидации даёт
// собственное сообщение, нарушения проверяются по одному.
package add

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/propulse/internal/http/middlewarectx"
	"github.com/magabrotheeeer/propulse/internal/http/response"
	"github.com/magabrotheeeer/propulse/internal/lib/sl"
	"github.com/magabrotheeeer/propulse/internal/models"
	"github.com/magabrotheeeer/propulse/internal/services/auth"
	"github.com/magabrotheeeer/propulse/internal/services/errs"
	"github.com/magabrotheeeer/propulse/internal/session"
)

// Тексты нарушений числовых полей совпадают с сообщениями сервиса,
// чтобы нечисловой ввод и выход за диапазон выглядели одинаково.
const (
	msgBPM     = "Les pulsacions han de ser un enter entre 30 i 250."
	msgSpeed   = "La velocitat ha de ser un valor numèric raonable (0 - 99.99)."
	msgMinutes = "Els minuts han de ser un enter positiu."
	msgDate    = "La data no és vàlida."
	msgEmpty   = "Omple tots els camps de l'activitat."
)

// Service описывает интерфейс бизнес-логики журнала активностей.
type Service interface {
	Add(ctx context.Context, userID int64, form models.ActivityForm) (*models.Activity, error)
}

// Handler управляет запросами на добавление активности.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.activity.add"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := middlewarectx.FromContext(r.Context())
	if err := auth.RequireAuthenticated(sess); err != nil {
		response.FlashAndRedirect(w, r, sess, session.LevelWarning,
			"Has d'iniciar sessió per accedir a l'àrea privada.", "login")
		return
	}

	date := strings.TrimSpace(r.PostFormValue("act_date"))
	bpmRaw := strings.TrimSpace(r.PostFormValue("bpm"))
	speedRaw := strings.TrimSpace(r.PostFormValue("speed"))
	minutesRaw := strings.TrimSpace(r.PostFormValue("minutes"))

	if date == "" || bpmRaw == "" || speedRaw == "" || minutesRaw == "" {
		response.FlashAndRedirect(w, r, sess, session.LevelError, msgEmpty, "dashboard")
		return
	}

	bpm, err := strconv.Atoi(bpmRaw)
	if err != nil {
		response.FlashAndRedirect(w, r, sess, session.LevelError, msgBPM, "dashboard")
		return
	}
	speed, err := strconv.ParseFloat(speedRaw, 64)
	if err != nil {
		response.FlashAndRedirect(w, r, sess, session.LevelError, msgSpeed, "dashboard")
		return
	}
	minutes, err := strconv.Atoi(minutesRaw)
	if err != nil {
		response.FlashAndRedirect(w, r, sess, session.LevelError, msgMinutes, "dashboard")
		return
	}

	_, err = h.service.Add(r.Context(), sess.UserID, models.ActivityForm{
		Date:    date,
		BPM:     bpm,
		Speed:   speed,
		Minutes: minutes,
	})
	switch {
	case errs.IsValidation(err):
		response.FlashAndRedirect(w, r, sess, session.LevelError,
			validationMessage(err), "dashboard")
	case err != nil:
		log.Error("failed to store activity", sl.Err(err))
		response.FlashAndRedirect(w, r, sess, session.LevelError,
			"No s'ha pogut desar l'activitat.", "dashboard")
	default:
		response.FlashAndRedirect(w, r, sess, session.LevelSuccess,
			"Activitat desada!", "dashboard")
	}
}

func validationMessage(err error) string {
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		return msgEmpty
	}
	switch ve.Field {
	case "Date":
		return msgDate
	case "BPM":
		return msgBPM
	case "Speed":
		return msgSpeed
	case "Minutes":
		return msgMinutes
	default:
		return msgEmpty
	}
}
