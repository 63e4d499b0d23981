package models

import "time"

// ActivityDateLayout формат календарной даты активности (без времени).
const ActivityDateLayout = "2006-01-02"

// Activity представляет одну запись тренировки пользователя.
// Записи неизменяемы после создания: операций редактирования и удаления нет.
type Activity struct {
	ID        int64     // Уникальный идентификатор записи
	UserID    int64     // Владелец записи, всегда берётся из сессии
	Date      time.Time // Календарная дата тренировки (без компоненты времени)
	BPM       int       // Пульс, ударов в минуту
	Speed     float64   // Скорость, км/ч
	Minutes   int       // Длительность в минутах
	CreatedAt time.Time // Момент вставки записи
}

// ActivityForm используется для приёма данных формы новой активности.
// Числовые поля приходят строками и парсятся до валидации,
// нечисловое значение считается нарушением соответствующего поля.
type ActivityForm struct {
	Date    string  `validate:"required"`        // Дата в формате 2006-01-02, проверяется time.Parse
	BPM     int     `validate:"gte=30,lte=250"`  // Пульс: целое от 30 до 250
	Speed   float64 `validate:"gte=0,lte=99.99"` // Скорость: от 0 до 99.99
	Minutes int     `validate:"gte=1,lte=10000"` // Минуты: целое от 1 до 10000
}

// ActivityStats агрегированная статистика по активностям пользователя.
// Для пустого набора активностей все поля нулевые.
type ActivityStats struct {
	Count        int     // Количество записей
	AvgBPM       float64 // Средний пульс, округлён до 1 знака
	AvgSpeed     float64 // Средняя скорость, округлена до 2 знаков
	TotalMinutes int     // Суммарная длительность в минутах
}
