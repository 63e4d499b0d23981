// Package catalog определяет статический каталог товаров магазина.
// Каталог неизменяем и целиком живёт в памяти процесса; пространство
// идентификаторов каталога — граница доверия: любые операции корзины
// и заказа обязаны отвергать неизвестные id.
package catalog

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Item описывает один товар каталога.
type Item struct {
	ID    int             // Идентификатор товара
	Name  string          // Название
	Tag   string          // Короткая категория
	Price decimal.Decimal // Цена за единицу
	Desc  string          // Описание
	Badge string          // Бейдж для витрины
}

var items = map[int]Item{
	1: {
		ID:    1,
		Name:  "ProPulse Band",
		Tag:   "Sensor cardíac",
		Price: decimal.RequireFromString("29.90"),
		Desc:  "Polsera fictícia per monitoritzar pulsacions i sincronitzar-les amb el panell.",
		Badge: "TOP",
	},
	2: {
		ID:    2,
		Name:  "Pla Starter (1 mes)",
		Tag:   "Subscripció",
		Price: decimal.RequireFromString("4.99"),
		Desc:  "Accés a estadístiques bàsiques i historial (compra simulada).",
		Badge: "NEW",
	},
	3: {
		ID:    3,
		Name:  "Pla Pro (12 mesos)",
		Tag:   "Subscripció",
		Price: decimal.RequireFromString("39.00"),
		Desc:  "Accés complet a analítiques avançades (demo).",
		Badge: "SAVE",
	},
	4: {
		ID:    4,
		Name:  "Pack Running",
		Tag:   "Add-on",
		Price: decimal.RequireFromString("9.50"),
		Desc:  "Plantilles d'entrenament i consells de ritme (contingut fictici).",
		Badge: "HOT",
	},
}

// Get возвращает товар по идентификатору и признак его существования.
func Get(id int) (Item, bool) {
	it, ok := items[id]
	return it, ok
}

// All возвращает все товары каталога в порядке возрастания id.
func All() []Item {
	result := make([]Item, 0, len(items))
	for _, it := range items {
		result = append(result, it)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
