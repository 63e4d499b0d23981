// Package auth содержит логику бизнес-уровня для регистрации и входа
// пользователей: валидацию форм, хэширование паролей и проверку
// учётных данных.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/propulse/internal/lib/password"
	"github.com/magabrotheeeer/propulse/internal/models"
	"github.com/magabrotheeeer/propulse/internal/observability"
	"github.com/magabrotheeeer/propulse/internal/services/errs"
	"github.com/magabrotheeeer/propulse/internal/session"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (int64, error)

	// GetUserByEmail возвращает пользователя по точному совпадению почты
	// или (nil, nil), если такого пользователя нет.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service отвечает за регистрацию и аутентификацию пользователей.
type Service struct {
	users    UserRepository
	validate *validator.Validate
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		validate: validator.New(),
		log:      log,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Пароль в открытом виде никогда не сохраняется.
func (s *Service) Register(ctx context.Context, form models.RegisterForm) (int64, error) {
	const op = "auth.Register"

	if err := s.validate.Struct(form); err != nil {
		return 0, errs.FromValidator(err)
	}

	existing, err := s.users.GetUserByEmail(ctx, form.Email)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return 0, errs.ErrDuplicateEmail
	}

	hash, err := password.GetHash(form.Password)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.users.RegisterUser(ctx, models.User{
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	observability.RecordUserRegistered()
	s.log.Info("registered new user", slog.Int64("id", id))
	return id, nil
}

// Login проверяет учётные данные и возвращает пользователя.
// Неизвестная почта и неверный пароль дают один и тот же
// errs.ErrInvalidCredentials, различить их снаружи нельзя.
func (s *Service) Login(ctx context.Context, form models.LoginForm) (*models.User, error) {
	const op = "auth.Login"

	if err := s.validate.Struct(form); err != nil {
		return nil, errs.FromValidator(err)
	}

	user, err := s.users.GetUserByEmail(ctx, form.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return nil, errs.ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, form.Password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}
	return user, nil
}

// RequireAuthenticated охраняет операции приватной зоны: без привязанной
// личности возвращает errs.ErrAuthRequired.
func RequireAuthenticated(sess *session.Session) error {
	if sess == nil || !sess.IsLogged() {
		return errs.ErrAuthRequired
	}
	return nil
}
