package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/propulse/internal/models"
)

func newTestSession() *Session {
	return newSession("test-id", time.Now())
}

func TestPopFlash_ReadOnce(t *testing.T) {
	sess := newTestSession()

	_, ok := sess.PopFlash()
	assert.False(t, ok, "flash в новой сессии отсутствует")

	sess.SetFlash(LevelSuccess, "готово")
	f, ok := sess.PopFlash()
	require.True(t, ok)
	assert.Equal(t, LevelSuccess, f.Level)
	assert.Equal(t, "готово", f.Message)

	_, ok = sess.PopFlash()
	assert.False(t, ok, "повторное чтение flash должно вернуть false")
}

func TestSetFlash_ReplacesPrevious(t *testing.T) {
	sess := newTestSession()
	sess.SetFlash(LevelInfo, "первое")
	sess.SetFlash(LevelError, "второе")

	f, ok := sess.PopFlash()
	require.True(t, ok)
	assert.Equal(t, LevelError, f.Level)
	assert.Equal(t, "второе", f.Message)
}

func TestEnsureCSRF_StableAndStrong(t *testing.T) {
	sess := newTestSession()

	token := sess.EnsureCSRF()
	assert.Len(t, token, 64, "32 байта в hex — 64 символа")
	assert.Equal(t, token, sess.EnsureCSRF(), "токен стабилен в рамках сессии")

	other := newTestSession()
	assert.NotEqual(t, token, other.EnsureCSRF())
}

func TestVerifyCSRF(t *testing.T) {
	sess := newTestSession()
	token := sess.EnsureCSRF()

	assert.True(t, sess.VerifyCSRF(token))
	assert.False(t, sess.VerifyCSRF(""))
	assert.False(t, sess.VerifyCSRF("deadbeef"))
	assert.False(t, sess.VerifyCSRF(token+"x"))
}

func TestCart_AddAccumulates(t *testing.T) {
	sess := newTestSession()

	sess.CartAdd(2, 3)
	sess.CartAdd(2, 2)
	assert.Equal(t, map[int]int{2: 5}, sess.CartItems())

	sess.CartAdd(7, 0)
	assert.Equal(t, 1, sess.CartItems()[7], "количество меньше единицы поднимается до единицы")
	assert.Equal(t, 6, sess.CartCount())
}

func TestCart_RemoveIdempotent(t *testing.T) {
	sess := newTestSession()
	sess.CartAdd(2, 5)

	sess.CartRemove(2)
	_, ok := sess.CartItems()[2]
	assert.False(t, ok)

	// повторное удаление — не ошибка
	sess.CartRemove(2)
	sess.CartRemove(99)
	assert.Empty(t, sess.CartItems())
}

func TestCart_Clear(t *testing.T) {
	sess := newTestSession()
	sess.CartAdd(1, 2)
	sess.CartAdd(4, 1)

	sess.CartClear()
	assert.Empty(t, sess.CartItems())
	assert.Equal(t, 0, sess.CartCount())
}

func TestClearIdentity_PreservesCart(t *testing.T) {
	sess := newTestSession()
	sess.BindIdentity(&models.User{ID: 7, Name: "Anna", Email: "anna@example.com"})
	sess.CartAdd(1, 2)

	require.True(t, sess.IsLogged())
	sess.ClearIdentity()

	assert.False(t, sess.IsLogged())
	assert.Empty(t, sess.UserName)
	assert.Empty(t, sess.UserEmail)
	assert.Equal(t, map[int]int{1: 2}, sess.CartItems(), "корзина переживает выход")
}
