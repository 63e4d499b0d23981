// Package contact содержит бизнес-логику публичной формы обратной связи.
package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/propulse/internal/models"
	"github.com/magabrotheeeer/propulse/internal/services/errs"
)

// Repository определяет метод сохранения сообщений обратной связи.
type Repository interface {
	CreateContactMessage(ctx context.Context, m models.ContactMessage) (int64, error)
}

// Service реализует приём сообщений обратной связи.
type Service struct {
	repo     Repository
	validate *validator.Validate
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		log:      log,
	}
}

// Send валидирует и сохраняет сообщение. Система сообщения только
// записывает, почтовая доставка не выполняется.
func (s *Service) Send(ctx context.Context, form models.ContactForm) error {
	const op = "contact.Send"

	if err := s.validate.Struct(form); err != nil {
		return errs.FromValidator(err)
	}

	id, err := s.repo.CreateContactMessage(ctx, models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("stored contact message", slog.Int64("id", id))
	return nil
}
