package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store потокобезопасное хранилище сессий в памяти процесса.
// Транспорт идентификатора — HttpOnly cookie.
type Store struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	cookieName string
	ttl        time.Duration
	now        func() time.Time
}

// NewStore создает хранилище сессий с именем cookie и временем жизни ttl.
func NewStore(cookieName string, ttl time.Duration) *Store {
	return &Store{
		sessions:   make(map[string]*Session),
		cookieName: cookieName,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Load возвращает сессию запроса, создавая новую при первом контакте,
// отсутствии cookie или истечении срока жизни.
func (st *Store) Load(w http.ResponseWriter, r *http.Request) *Session {
	now := st.now()
	if cookie, err := r.Cookie(st.cookieName); err == nil {
		st.mu.Lock()
		sess, ok := st.sessions[cookie.Value]
		if ok && !sess.expired(st.ttl, now) {
			sess.lastSeen = now
			st.mu.Unlock()
			return sess
		}
		if ok {
			delete(st.sessions, cookie.Value)
		}
		st.mu.Unlock()
	}
	return st.create(w, now)
}

// Renew ротирует идентификатор сессии, сохраняя её состояние, и сбрасывает
// CSRF-токен. Вызывается при успешном входе для защиты от фиксации сессии.
func (st *Store) Renew(w http.ResponseWriter, sess *Session) {
	newID := uuid.NewString()

	st.mu.Lock()
	delete(st.sessions, sess.ID)
	sess.ID = newID
	sess.resetCSRF()
	st.sessions[newID] = sess
	st.mu.Unlock()

	st.setCookie(w, newID)
}

func (st *Store) create(w http.ResponseWriter, now time.Time) *Session {
	sess := newSession(uuid.NewString(), now)

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()

	st.setCookie(w, sess.ID)
	return sess
}

func (st *Store) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     st.cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
