package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/propulse/internal/models"
)

// CreateContactMessage сохраняет сообщение формы обратной связи
// и возвращает его ID. Сообщения приложением обратно не читаются.
func (s *Storage) CreateContactMessage(ctx context.Context, m models.ContactMessage) (int64, error) {
	const op = "storage.CreateContactMessage"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO contact_messages (name, email, subject, message)
			  VALUES (?, ?, ?, ?);`
	res, err := s.DB.ExecContext(ctx, query, m.Name, m.Email, m.Subject, m.Message)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}
