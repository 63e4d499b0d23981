// Package repository реализует хранилище данных на основе SQLite
// для пользователей, активностей, заказов и сообщений обратной связи.
// Все запросы параметризованы, интерполяция текста запросов снаружи
// не принимается.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Регистрация драйвера sqlite для использования с database/sql.
	_ "modernc.org/sqlite"
)

// Storage инкапсулирует соединение с файлом базы данных SQLite
// и реализует методы работы с четырьмя таблицами.
type Storage struct {
	DB *sql.DB
}

// New открывает (при необходимости создавая) файл базы данных по пути path
// и включает контроль внешних ключей.
func New(path string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// У SQLite один писатель, пул соединений только мешает.
	db.SetMaxOpenConns(1)
	if _, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON;"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// sqliteTimeLayout формат, в котором datetime('now') пишет отметки времени.
const sqliteTimeLayout = "2006-01-02 15:04:05"

func isUniqueViolation(err error, column string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}
