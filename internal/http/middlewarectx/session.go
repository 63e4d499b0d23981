// Package middlewarectx содержит HTTP middleware, привязывающее сессию
// посетителя к контексту запроса.
//
// SessionMiddleware загружает (или создаёт) сессию по cookie и кладёт её
// в контекст; обработчики достают её через FromContext.
package middlewarectx

import (
	"context"
	"net/http"

	"github.com/magabrotheeeer/propulse/internal/session"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// SessionKey ключ, под которым сессия лежит в контексте.
const SessionKey Key = "session"

// SessionMiddleware возвращает middleware, которое обеспечивает каждому
// запросу живую сессию: создаёт её при первом контакте и продлевает
// при последующих.
func SessionMiddleware(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := store.Load(w, r)
			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext возвращает сессию запроса или nil, если middleware не отработало.
func FromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(SessionKey).(*session.Session)
	return sess
}
