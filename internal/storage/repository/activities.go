package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/propulse/internal/models"
)

// CreateActivity сохраняет запись активности и возвращает её ID.
func (s *Storage) CreateActivity(ctx context.Context, a models.Activity) (int64, error) {
	const op = "storage.CreateActivity"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO activities (user_id, act_date, bpm, speed, minutes)
			  VALUES (?, ?, ?, ?, ?);`
	res, err := s.DB.ExecContext(ctx, query,
		a.UserID, a.Date.Format(models.ActivityDateLayout), a.BPM, a.Speed, a.Minutes)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListActivities возвращает все активности пользователя, новые даты первыми,
// при равенстве дат — позже вставленные записи первыми.
func (s *Storage) ListActivities(ctx context.Context, userID int64) ([]*models.Activity, error) {
	const op = "storage.ListActivities"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, act_date, bpm, speed, minutes, created_at
			  FROM activities
			  WHERE user_id = ?
			  ORDER BY act_date DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Activity
	for rows.Next() {
		var a models.Activity
		var actDate, createdAt string
		if err = rows.Scan(&a.ID, &a.UserID, &actDate, &a.BPM, &a.Speed,
			&a.Minutes, &createdAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if a.Date, err = time.Parse(models.ActivityDateLayout, actDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if ts, perr := time.Parse(sqliteTimeLayout, createdAt); perr == nil {
			a.CreatedAt = ts
		}
		result = append(result, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
