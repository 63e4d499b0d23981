package models

import "time"

// Order представляет завершённый (симулированный) заказ магазина.
// Заказ создаётся только на этапе оформления из корзины и каталога,
// цены клиента никогда не используются. После создания заказ неизменяем.
type Order struct {
	ID         int64       // Внутренний идентификатор записи
	Code       string      // Человекочитаемый уникальный код заказа
	BuyerName  string      // Имя покупателя
	BuyerEmail string      // Почта покупателя
	Total      float64     // Итоговая сумма, округлена до 2 знаков
	Items      []OrderItem // Позиции заказа
	CreatedAt  time.Time   // Момент оформления
}

// OrderItem одна позиция заказа, сериализуется в items_json.
type OrderItem struct {
	ID   int     `json:"id"`   // Идентификатор товара каталога
	Name string  `json:"name"` // Название товара на момент покупки
	Qty  int     `json:"qty"`  // Количество
	Unit float64 `json:"unit"` // Цена за единицу
	Line float64 `json:"line"` // Сумма строки, округлена до 2 знаков
}

// CheckoutForm используется для приёма данных формы оформления заказа.
type CheckoutForm struct {
	Name  string `validate:"required"`       // Имя покупателя
	Email string `validate:"required,email"` // Почта покупателя
}
