// Package session управляет эфемерным состоянием посетителя: привязанной
// личностью, CSRF-токеном, корзиной и одноразовым flash-сообщением.
// Состояние живёт в памяти процесса и не переживает его перезапуск;
// распределённое хранение сессий сознательно не поддерживается.
package session

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/magabrotheeeer/propulse/internal/models"
)

// Session состояние одного посетителя. Значение создаётся при первом
// обращении и изменяется только обработчиками своего посетителя,
// межсессионной конкуренции нет.
type Session struct {
	ID        string
	UserID    int64 // 0 — анонимный посетитель
	UserName  string
	UserEmail string

	csrfToken string
	cart      map[int]int
	flash     *Flash

	createdAt time.Time
	lastSeen  time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		cart:      make(map[int]int),
		createdAt: now,
		lastSeen:  now,
	}
}

// IsLogged сообщает, привязана ли к сессии личность пользователя.
func (s *Session) IsLogged() bool {
	return s.UserID != 0
}

// BindIdentity привязывает личность пользователя к сессии.
func (s *Session) BindIdentity(u *models.User) {
	s.UserID = u.ID
	s.UserName = u.Name
	s.UserEmail = u.Email
}

// ClearIdentity снимает привязку личности. Корзина сознательно
// сохраняется: она принадлежит сессии, а не пользователю.
func (s *Session) ClearIdentity() {
	s.UserID = 0
	s.UserName = ""
	s.UserEmail = ""
}

// SetFlash сохраняет flash-сообщение, заменяя предыдущее.
func (s *Session) SetFlash(level Level, msg string) {
	s.flash = &Flash{Level: level, Message: msg}
}

// PopFlash возвращает отложенное flash-сообщение и атомарно удаляет его:
// повторный вызов в этом же или следующем запросе вернёт false.
func (s *Session) PopFlash() (Flash, bool) {
	if s.flash == nil {
		return Flash{}, false
	}
	f := *s.flash
	s.flash = nil
	return f, true
}

// EnsureCSRF возвращает CSRF-токен сессии, генерируя криптостойкий
// токен на 256 бит при первом обращении. Токен живёт до ротации сессии.
func (s *Session) EnsureCSRF() string {
	if s.csrfToken == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand на поддерживаемых платформах не возвращает ошибок
			panic(err)
		}
		s.csrfToken = hex.EncodeToString(buf)
	}
	return s.csrfToken
}

// VerifyCSRF сравнивает присланный токен с токеном сессии за
// константное время.
func (s *Session) VerifyCSRF(token string) bool {
	stored := s.EnsureCSRF()
	return subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1
}

func (s *Session) resetCSRF() {
	s.csrfToken = ""
}

// CartAdd увеличивает количество товара id на qty, минимум на единицу.
func (s *Session) CartAdd(id, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.cart[id] += qty
}

// CartRemove удаляет товар из корзины; отсутствие товара не ошибка.
func (s *Session) CartRemove(id int) {
	delete(s.cart, id)
}

// CartClear опустошает корзину.
func (s *Session) CartClear() {
	s.cart = make(map[int]int)
}

// CartItems возвращает копию содержимого корзины: id товара → количество.
func (s *Session) CartItems() map[int]int {
	items := make(map[int]int, len(s.cart))
	for id, qty := range s.cart {
		items[id] = qty
	}
	return items
}

// CartCount возвращает суммарное количество единиц товара в корзине.
func (s *Session) CartCount() int {
	total := 0
	for _, qty := range s.cart {
		total += qty
	}
	return total
}

func (s *Session) expired(ttl time.Duration, now time.Time) bool {
	return ttl > 0 && now.Sub(s.lastSeen) > ttl
}
