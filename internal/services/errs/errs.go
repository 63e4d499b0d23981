// Package errs определяет общую таксономию ошибок бизнес-уровня.
// Ошибки валидации и бизнес-правил всегда перехватываются на границе
// сервиса и превращаются во flash-сообщение с редиректом, посетитель
// никогда не видит «сырую» ошибку.
package errs

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator"
)

var (
	// ErrDuplicateEmail пользователь с такой почтой уже зарегистрирован.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateOrderCode сгенерированный код заказа уже занят, операцию можно повторить.
	ErrDuplicateOrderCode = errors.New("order code already exists")
	// ErrInvalidCredentials неверные учётные данные; намеренно не различает
	// неизвестную почту и неверный пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAuthRequired операция доступна только аутентифицированному пользователю.
	ErrAuthRequired = errors.New("authentication required")
	// ErrUnknownItem идентификатор товара отсутствует в каталоге.
	ErrUnknownItem = errors.New("unknown catalog item")
	// ErrEmptyCart корзина пуста, оформлять нечего.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrStoreUnavailable хранилище не удалось открыть при старте;
	// мутирующие действия обязаны завершаться до любой записи.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError нарушение правила валидации конкретного поля.
// Поле Field позволяет тестам проверять каждое правило независимо.
type ValidationError struct {
	Field string // Имя поля формы
	Msg   string // Человекочитаемое описание нарушения
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field %s %s", e.Field, e.Msg)
}

// NewValidation создает ValidationError для поля field.
func NewValidation(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

// FromValidator превращает первую ошибку go-playground/validator
// в ValidationError: побеждает первое нарушение.
func FromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	var msg string
	switch first.ActualTag() {
	case "required":
		msg = "is required"
	case "email":
		msg = "must be a valid email address"
	case "min":
		msg = fmt.Sprintf("must be at least %s characters", first.Param())
	case "gte":
		msg = fmt.Sprintf("must be at least %s", first.Param())
	case "lte":
		msg = fmt.Sprintf("must be at most %s", first.Param())
	default:
		msg = "is not valid"
	}
	return NewValidation(first.Field(), msg)
}

// IsValidation сообщает, является ли err ошибкой валидации.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
