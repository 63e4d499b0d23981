// Package models содержит доменные структуры приложения: пользователи,
// активности, заказы и сообщения обратной связи, а также вспомогательные
// структуры для приёма данных из HTML-форм.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           int64     // Уникальный идентификатор пользователя
	Name         string    // Отображаемое имя
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // Хэш пароля пользователя
	CreatedAt    time.Time // Дата создания учётной записи
}

// RegisterForm используется для приёма данных формы регистрации,
// прежде чем создавать пользователя.
type RegisterForm struct {
	Name     string `validate:"required"`       // Имя пользователя
	Email    string `validate:"required,email"` // Электронная почта
	Password string `validate:"required,min=6"` // Пароль, минимум 6 символов
}

// LoginForm используется для приёма данных формы входа.
// Синтаксис почты при входе не проверяется: любое несовпадение с базой
// даёт один и тот же ответ «неверные учётные данные».
type LoginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}
