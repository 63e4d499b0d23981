// Package activity содержит бизнес-логику журнала тренировок:
// валидированную вставку записей и вычисление агрегированной статистики.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/propulse/internal/models"
	"github.com/magabrotheeeer/propulse/internal/observability"
	"github.com/magabrotheeeer/propulse/internal/services/errs"
)

// Repository определяет методы для работы с активностями в хранилище.
type Repository interface {
	// CreateActivity сохраняет запись и возвращает её ID.
	CreateActivity(ctx context.Context, a models.Activity) (int64, error)
	// ListActivities возвращает активности пользователя, новые даты первыми.
	ListActivities(ctx context.Context, userID int64) ([]*models.Activity, error)
}

// Service реализует операции журнала тренировок.
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

// Add валидирует и сохраняет запись активности. Владелец записи всегда
// задаётся аргументом userID из аутентифицированной сессии, из формы
// идентификатор владельца не принимается.
func (s *Service) Add(ctx context.Context, userID int64, form models.ActivityForm) (*models.Activity, error) {
	const op = "activity.Add"

	if err := s.validate.Struct(form); err != nil {
		return nil, errs.FromValidator(err)
	}
	// time.Parse проверяет и формат, и само существование календарной
	// даты: 2024-02-30 отвергается так же, как 10-03-2025.
	date, err := time.Parse(models.ActivityDateLayout, form.Date)
	if err != nil {
		return nil, errs.NewValidation("Date", "must be a date in format "+models.ActivityDateLayout)
	}

	a := models.Activity{
		UserID:  userID,
		Date:    date,
		BPM:     form.BPM,
		Speed:   form.Speed,
		Minutes: form.Minutes,
	}
	id, err := s.repo.CreateActivity(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.ID = id

	observability.RecordActivityStored()
	s.log.Info("stored activity", slog.Int64("id", id), slog.Int64("user_id", userID))
	return &a, nil
}

// List возвращает все активности пользователя, отсортированные по дате
// по убыванию, при равных датах — позже добавленные первыми. Вызов можно
// повторять, результат стабилен с точностью до конкурентных записей.
func (s *Service) List(ctx context.Context, userID int64) ([]*models.Activity, error) {
	const op = "activity.List"

	result, err := s.repo.ListActivities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Stats чистая функция агрегации: количество записей, средний пульс
// (1 знак), средняя скорость (2 знака) и сумма минут. Пустой набор
// даёт нулевую статистику без деления на ноль.
func Stats(activities []*models.Activity) models.ActivityStats {
	var stats models.ActivityStats
	if len(activities) == 0 {
		return stats
	}

	var sumBPM, sumMinutes int
	var sumSpeed float64
	for _, a := range activities {
		sumBPM += a.BPM
		sumSpeed += a.Speed
		sumMinutes += a.Minutes
	}
	count := len(activities)
	stats.Count = count
	stats.AvgBPM = math.Round(float64(sumBPM)/float64(count)*10) / 10
	stats.AvgSpeed = math.Round(sumSpeed/float64(count)*100) / 100
	stats.TotalMinutes = sumMinutes
	return stats
}
