// Package actions реализует POST-диспетчер мутирующих действий.
//
// Порядок обработки жёсткий: разбор формы → проверка CSRF-токена
// (сравнение за константное время, при несовпадении запрос фатально
// отклоняется без редиректа) → проверка доступности хранилища →
// исчерпывающая диспетчеризация по закрытому перечислению действий.
// Каждое действие завершается flash-сообщением и редиректом.
package actions

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/propulse/internal/http/middlewarectx"
	"github.com/magabrotheeeer/propulse/internal/http/response"
	"github.com/magabrotheeeer/propulse/internal/lib/sl"
	"github.com/magabrotheeeer/propulse/internal/session"
)

// Action закрытое перечисление мутирующих действий. Добавление или
// удаление действия — изменение, проверяемое компилятором.
type Action int

// Действия приложения.
const (
	ActionUnknown Action = iota
	ActionRegister
	ActionLogin
	ActionLogout
	ActionAddActivity
	ActionCartAdd
	ActionCartRemove
	ActionCartClear
	ActionCheckout
	ActionContactSend
)

// ParseAction разбирает идентификатор действия из формы.
func ParseAction(s string) Action {
	switch s {
	case "register":
		return ActionRegister
	case "login":
		return ActionLogin
	case "logout":
		return ActionLogout
	case "add_activity":
		return ActionAddActivity
	case "cart_add":
		return ActionCartAdd
	case "cart_remove":
		return ActionCartRemove
	case "cart_clear":
		return ActionCartClear
	case "checkout":
		return ActionCheckout
	case "contact_send":
		return ActionContactSend
	default:
		return ActionUnknown
	}
}

// Handlers обработчики всех действий приложения.
type Handlers struct {
	Register    http.Handler
	Login       http.Handler
	Logout      http.Handler
	AddActivity http.Handler
	CartAdd     http.Handler
	CartRemove  http.Handler
	CartClear   http.Handler
	Checkout    http.Handler
	ContactSend http.Handler
}

// Router диспетчер мутирующих действий.
type Router struct {
	log      *slog.Logger
	handlers Handlers
	storeErr error
}

// New создает новый Router. storeErr — ошибка открытия хранилища на
// старте: при её наличии все действия завершаются предупреждением
// до любой попытки частичной записи.
func New(log *slog.Logger, handlers Handlers, storeErr error) *Router {
	return &Router{log: log, handlers: handlers, storeErr: storeErr}
}

func (h *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.actions"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := middlewarectx.FromContext(r.Context())
	if sess == nil {
		log.Error("session not found in context")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.PlainText(w, r, "Formulari invàlid.")
		return
	}

	// Проверка CSRF идёт до любой логики: запрос с чужим или устаревшим
	// токеном не должен вызвать ни одного изменения состояния.
	if !sess.VerifyCSRF(r.PostFormValue("csrf")) {
		log.Error("csrf token mismatch")
		render.Status(r, http.StatusForbidden)
		render.PlainText(w, r, "CSRF token invàlid.")
		return
	}

	if h.storeErr != nil {
		log.Error("store unavailable, action short-circuited", sl.Err(h.storeErr))
		response.FlashAndRedirect(w, r, sess, session.LevelWarning,
			"No es pot accedir a la base de dades SQLite.", "home")
		return
	}

	action := ParseAction(r.PostFormValue("action"))
	switch action {
	case ActionRegister:
		h.handlers.Register.ServeHTTP(w, r)
	case ActionLogin:
		h.handlers.Login.ServeHTTP(w, r)
	case ActionLogout:
		h.handlers.Logout.ServeHTTP(w, r)
	case ActionAddActivity:
		h.handlers.AddActivity.ServeHTTP(w, r)
	case ActionCartAdd:
		h.handlers.CartAdd.ServeHTTP(w, r)
	case ActionCartRemove:
		h.handlers.CartRemove.ServeHTTP(w, r)
	case ActionCartClear:
		h.handlers.CartClear.ServeHTTP(w, r)
	case ActionCheckout:
		h.handlers.Checkout.ServeHTTP(w, r)
	case ActionContactSend:
		h.handlers.ContactSend.ServeHTTP(w, r)
	case ActionUnknown:
		log.Info("unknown action", slog.String("action", r.PostFormValue("action")))
		response.FlashAndRedirect(w, r, sess, session.LevelWarning,
			"Acció desconeguda.", "home")
	}
}
