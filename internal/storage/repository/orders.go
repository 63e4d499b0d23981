package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/propulse/internal/models"
	"github.com/magabrotheeeer/propulse/internal/services/errs"
)

// CreateOrder сохраняет заказ с сериализованными позициями и возвращает его ID.
// Конфликт уникальности кода заказа превращается в errs.ErrDuplicateOrderCode,
// чтобы вызывающая сторона могла повторить генерацию кода.
func (s *Storage) CreateOrder(ctx context.Context, o *models.Order) (int64, error) {
	const op = "storage.CreateOrder"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO orders (order_code, buyer_name, buyer_email, total, items_json)
			  VALUES (?, ?, ?, ?, ?);`
	res, err := s.DB.ExecContext(ctx, query,
		o.Code, o.BuyerName, o.BuyerEmail, o.Total, string(itemsJSON))
	if err != nil {
		if isUniqueViolation(err, "orders.order_code") {
			return 0, fmt.Errorf("%s: %w", op, errs.ErrDuplicateOrderCode)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetOrderByCode возвращает заказ по его коду.
// Если заказ не найден, возвращает (nil, nil): отсутствие кода не ошибка.
func (s *Storage) GetOrderByCode(ctx context.Context, code string) (*models.Order, error) {
	const op = "storage.GetOrderByCode"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, order_code, buyer_name, buyer_email, total, items_json, created_at
			  FROM orders
			  WHERE order_code = ?`
	o := &models.Order{}
	var itemsJSON, createdAt string
	row := s.DB.QueryRowContext(ctx, query, code)
	if err := row.Scan(&o.ID, &o.Code, &o.BuyerName, &o.BuyerEmail,
		&o.Total, &itemsJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if ts, err := time.Parse(sqliteTimeLayout, createdAt); err == nil {
		o.CreatedAt = ts
	}
	return o, nil
}
