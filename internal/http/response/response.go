// Package response содержит вспомогательные функции для единообразного
// завершения мутирующих запросов: flash-сообщение плюс редирект на
// GET-представление. Поток всегда mutation → redirect → render, отрисовка
// сразу после мутации не выполняется — это защита от повторной отправки
// формы по F5.
package response

import (
	"net/http"
	"net/url"

	"github.com/magabrotheeeer/propulse/internal/session"
)

// Redirect выполняет редирект 303 See Other на страницу page
// (идентификатор страницы, опционально с фрагментом).
func Redirect(w http.ResponseWriter, r *http.Request, page string) {
	http.Redirect(w, r, "/?page="+page, http.StatusSeeOther)
}

// RedirectOrder выполняет редирект на страницу заказа с его кодом.
func RedirectOrder(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, "/?page=order&code="+url.QueryEscape(code), http.StatusSeeOther)
}

// FlashAndRedirect сохраняет одноразовое flash-сообщение в сессии и
// делает редирект на страницу page.
func FlashAndRedirect(w http.ResponseWriter, r *http.Request, sess *session.Session,
	level session.Level, msg, page string) {
	sess.SetFlash(level, msg)
	Redirect(w, r, page)
}
