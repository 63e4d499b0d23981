package models

import "time"

// ContactMessage сообщение публичной формы обратной связи.
// Приложение только записывает такие сообщения и никогда не читает их обратно.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// ContactForm используется для приёма данных формы обратной связи.
type ContactForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Subject string `validate:"required"`
	Message string `validate:"required,min=10"` // Минимум 10 символов
}
