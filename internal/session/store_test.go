package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "propulse_session"

func newTestStore() *Store {
	return NewStore(testCookie, time.Hour)
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestStore_LoadCreatesOnFirstContact(t *testing.T) {
	store := newTestStore()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	sess := store.Load(w, r)
	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)

	cookie := sessionCookie(t, w)
	assert.Equal(t, sess.ID, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestStore_LoadReturnsSameSession(t *testing.T) {
	store := newTestStore()
	w := httptest.NewRecorder()
	sess := store.Load(w, httptest.NewRequest(http.MethodGet, "/", nil))
	sess.CartAdd(1, 2)
	cookie := sessionCookie(t, w)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)
	again := store.Load(httptest.NewRecorder(), r)

	assert.Same(t, sess, again)
	assert.Equal(t, map[int]int{1: 2}, again.CartItems())
}

func TestStore_LoadUnknownCookieCreatesNew(t *testing.T) {
	store := newTestStore()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: testCookie, Value: "missing"})

	sess := store.Load(httptest.NewRecorder(), r)
	require.NotNil(t, sess)
	assert.NotEqual(t, "missing", sess.ID)
}

func TestStore_LoadExpiredCreatesNew(t *testing.T) {
	store := NewStore(testCookie, time.Minute)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	w := httptest.NewRecorder()
	sess := store.Load(w, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := sessionCookie(t, w)

	store.now = func() time.Time { return base.Add(2 * time.Minute) }
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)
	fresh := store.Load(httptest.NewRecorder(), r)

	assert.NotEqual(t, sess.ID, fresh.ID, "просроченная сессия не возвращается")
}

func TestStore_RenewRotatesIDAndCSRF(t *testing.T) {
	store := newTestStore()
	w := httptest.NewRecorder()
	sess := store.Load(w, httptest.NewRequest(http.MethodGet, "/", nil))
	sess.CartAdd(3, 1)
	oldID := sess.ID
	oldToken := sess.EnsureCSRF()

	w2 := httptest.NewRecorder()
	store.Renew(w2, sess)

	assert.NotEqual(t, oldID, sess.ID, "идентификатор ротируется")
	assert.NotEqual(t, oldToken, sess.EnsureCSRF(), "CSRF-токен сбрасывается")
	assert.Equal(t, map[int]int{3: 1}, sess.CartItems(), "состояние сессии сохраняется")
	assert.Equal(t, sess.ID, sessionCookie(t, w2).Value)

	// старый идентификатор больше не обслуживается
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: testCookie, Value: oldID})
	fresh := store.Load(httptest.NewRecorder(), r)
	assert.NotEqual(t, oldID, fresh.ID)
	assert.NotSame(t, sess, fresh)
}
