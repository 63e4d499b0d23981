// Package shop содержит бизнес-логику магазина: операции над корзиной,
// сверку корзины с каталогом и оформление заказа.
//
// Пересчёт корзины по каталогу — единственный источник итоговых сумм,
// цены из запросов клиента никогда не используются.
package shop

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/propulse/internal/catalog"
	"github.com/magabrotheeeer/propulse/internal/lib/ordercode"
	"github.com/magabrotheeeer/propulse/internal/models"
	"github.com/magabrotheeeer/propulse/internal/observability"
	"github.com/magabrotheeeer/propulse/internal/services/errs"
	"github.com/magabrotheeeer/propulse/internal/session"
)

// OrderRepository определяет методы для работы с заказами в хранилище.
type OrderRepository interface {
	// CreateOrder сохраняет заказ; конфликт кода заказа возвращается
	// как errs.ErrDuplicateOrderCode.
	CreateOrder(ctx context.Context, o *models.Order) (int64, error)
	// GetOrderByCode возвращает заказ по коду или (nil, nil), если его нет.
	GetOrderByCode(ctx context.Context, code string) (*models.Order, error)
}

// CartLine одна строка представления корзины.
type CartLine struct {
	Item catalog.Item
	Qty  int
	Line decimal.Decimal // Цена строки, округлена до 2 знаков
}

// CartView представление корзины, пересчитанное по каталогу.
type CartView struct {
	Lines []CartLine
	Total decimal.Decimal
}

// Service реализует операции корзины и оформления заказа.
type Service struct {
	orders   OrderRepository
	validate *validator.Validate
	log      *slog.Logger
	loc      *time.Location
	now      func() time.Time
}

// New создает новый экземпляр Service. Часовой пояс loc используется
// для компоненты времени суток в коде заказа.
func New(orders OrderRepository, loc *time.Location, log *slog.Logger) *Service {
	return &Service{
		orders:   orders,
		validate: validator.New(),
		log:      log,
		loc:      loc,
		now:      time.Now,
	}
}

// AddToCart кладёт товар itemID в корзину сессии, количество не меньше
// единицы. Неизвестный каталогу id отвергается.
func (s *Service) AddToCart(sess *session.Session, itemID, qty int) (catalog.Item, error) {
	it, ok := catalog.Get(itemID)
	if !ok {
		return catalog.Item{}, errs.ErrUnknownItem
	}
	sess.CartAdd(itemID, qty)
	return it, nil
}

// RemoveFromCart убирает товар из корзины; операция идемпотентна.
func (s *Service) RemoveFromCart(sess *session.Session, itemID int) {
	sess.CartRemove(itemID)
}

// ClearCart опустошает корзину; операция идемпотентна.
func (s *Service) ClearCart(sess *session.Session) {
	sess.CartClear()
}

// ComputeCartView пересчитывает корзину по каталогу: записи с неизвестными
// id отбрасываются, строки и итог округляются до 2 знаков. Каталог статичен,
// так что фильтрация на практике ничего не отбрасывает, но обязана быть.
func (s *Service) ComputeCartView(sess *session.Session) CartView {
	items := sess.CartItems()
	ids := make([]int, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	view := CartView{Total: decimal.Zero}
	for _, id := range ids {
		it, ok := catalog.Get(id)
		if !ok {
			continue
		}
		qty := items[id]
		line := it.Price.Mul(decimal.NewFromInt(int64(qty))).Round(2)
		view.Lines = append(view.Lines, CartLine{Item: it, Qty: qty, Line: line})
		view.Total = view.Total.Add(line)
	}
	view.Total = view.Total.Round(2)
	return view
}

// Checkout оформляет (симулированный) заказ из корзины сессии: валидирует
// покупателя, пересчитывает корзину по каталогу, генерирует код заказа и
// сохраняет заказ. Корзина очищается строго после успешной записи заказа;
// при ошибке хранилища содержимое корзины не теряется.
func (s *Service) Checkout(ctx context.Context, sess *session.Session, form models.CheckoutForm) (string, error) {
	const op = "shop.Checkout"

	if err := s.validate.Struct(form); err != nil {
		return "", errs.FromValidator(err)
	}
	if sess.CartCount() == 0 {
		return "", errs.ErrEmptyCart
	}

	view := s.ComputeCartView(sess)
	items := make([]models.OrderItem, 0, len(view.Lines))
	for _, l := range view.Lines {
		items = append(items, models.OrderItem{
			ID:   l.Item.ID,
			Name: l.Item.Name,
			Qty:  l.Qty,
			Unit: l.Item.Price.InexactFloat64(),
			Line: l.Line.InexactFloat64(),
		})
	}

	code, err := ordercode.Generate(s.now().In(s.loc))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	order := &models.Order{
		Code:       code,
		BuyerName:  form.Name,
		BuyerEmail: form.Email,
		Total:      view.Total.InexactFloat64(),
		Items:      items,
	}
	if _, err := s.orders.CreateOrder(ctx, order); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	// Запись заказа и очистка корзины — одно логическое целое:
	// до этой точки корзина не трогается.
	sess.CartClear()
	observability.RecordOrderCompleted()

	s.log.Info("completed checkout", slog.String("order_code", code))
	return code, nil
}

// OrderByCode возвращает заказ по коду; отсутствие заказа не ошибка.
func (s *Service) OrderByCode(ctx context.Context, code string) (*models.Order, error) {
	const op = "shop.OrderByCode"

	order, err := s.orders.GetOrderByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}
