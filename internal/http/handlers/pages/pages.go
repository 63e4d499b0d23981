// Package pages реализует GET-диспетчер страниц: по идентификатору
// страницы из query-параметра собирает данные представления и отдаёт
// их на отрисовку.
package pages

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/propulse/internal/catalog"
	"github.com/magabrotheeeer/propulse/internal/http/middlewarectx"
	"github.com/magabrotheeeer/propulse/internal/http/response"
	"github.com/magabrotheeeer/propulse/internal/http/view"
	"github.com/magabrotheeeer/propulse/internal/lib/sl"
	"github.com/magabrotheeeer/propulse/internal/models"
	activityservice "github.com/magabrotheeeer/propulse/internal/services/activity"
	"github.com/magabrotheeeer/propulse/internal/services/shop"
	"github.com/magabrotheeeer/propulse/internal/session"
)

// Page закрытое перечисление страниц приложения. Добавление и удаление
// страницы — изменение, проверяемое компилятором по исчерпывающему switch.
type Page int

// Страницы приложения.
const (
	PageNotFound Page = iota
	PageHome
	PageShop
	PageCart
	PageCheckout
	PageOrder
	PageAbout
	PageContact
	PageRegister
	PageLogin
	PageDashboard
)

// ParsePage разбирает идентификатор страницы; пустое значение означает
// главную, нераспознанное — страницу «не знайдено».
func ParsePage(s string) Page {
	switch s {
	case "", "home":
		return PageHome
	case "shop":
		return PageShop
	case "cart":
		return PageCart
	case "checkout":
		return PageCheckout
	case "order":
		return PageOrder
	case "about":
		return PageAbout
	case "contact":
		return PageContact
	case "register":
		return PageRegister
	case "login":
		return PageLogin
	case "dashboard":
		return PageDashboard
	default:
		return PageNotFound
	}
}

// Template возвращает имя шаблона страницы.
func (p Page) Template() string {
	switch p {
	case PageHome:
		return "home"
	case PageShop:
		return "shop"
	case PageCart:
		return "cart"
	case PageCheckout:
		return "checkout"
	case PageOrder:
		return "order"
	case PageAbout:
		return "about"
	case PageContact:
		return "contact"
	case PageRegister:
		return "register"
	case PageLogin:
		return "login"
	case PageDashboard:
		return "dashboard"
	default:
		return "notfound"
	}
}

// ActivityService описывает интерфейс чтения журнала активностей.
type ActivityService interface {
	List(ctx context.Context, userID int64) ([]*models.Activity, error)
}

// ShopService описывает интерфейс чтения корзины и заказов.
type ShopService interface {
	ComputeCartView(sess *session.Session) shop.CartView
	OrderByCode(ctx context.Context, code string) (*models.Order, error)
}

// Handler собирает данные представления и отрисовывает страницы.
type Handler struct {
	log        *slog.Logger
	view       *view.View
	activities ActivityService
	shop       ShopService
	appName    string
	storeErr   error
}

// New создает новый Handler. storeErr — ошибка открытия хранилища на
// старте; при её наличии каждая страница несёт баннер недоступности.
func New(log *slog.Logger, v *view.View, activities ActivityService, shopSvc ShopService,
	appName string, storeErr error) *Handler {
	return &Handler{
		log:        log,
		view:       v,
		activities: activities,
		shop:       shopSvc,
		appName:    appName,
		storeErr:   storeErr,
	}
}

// ServeHTTP отрисовывает запрошенную страницу. Нераспознанный
// идентификатор страницы выдаёт представление «не найдено» со статусом
// 200 — поведение исходной версии сохранено сознательно.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pages"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := middlewarectx.FromContext(r.Context())
	if sess == nil {
		log.Error("session not found in context")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	page := ParsePage(r.URL.Query().Get("page"))

	data := &view.Data{
		AppName:   h.appName,
		CSRFToken: sess.EnsureCSRF(),
		LoggedIn:  sess.IsLogged(),
		UserName:  sess.UserName,
		CartCount: sess.CartCount(),
		StoreErr:  h.storeErr != nil,
	}
	if f, ok := sess.PopFlash(); ok {
		data.Flash = &f
	}

	switch page {
	case PageShop:
		data.Catalog = catalog.All()
	case PageCart, PageCheckout:
		data.Cart = h.shop.ComputeCartView(sess)
	case PageOrder:
		data.OrderCode = r.URL.Query().Get("code")
		if h.storeErr == nil && data.OrderCode != "" {
			order, err := h.shop.OrderByCode(r.Context(), data.OrderCode)
			if err != nil {
				log.Error("failed to look up order", sl.Err(err))
				data.Flash = &session.Flash{Level: session.LevelError,
					Message: "No s'ha pogut consultar la comanda."}
			} else {
				// Отсутствие заказа не ошибка, страница покажет "не найдено".
				data.Order = order
			}
		}
	case PageDashboard:
		if !sess.IsLogged() {
			response.FlashAndRedirect(w, r, sess, session.LevelWarning,
				"Has d'iniciar sessió per accedir a l'àrea privada.", "login")
			return
		}
		if h.storeErr == nil {
			list, err := h.activities.List(r.Context(), sess.UserID)
			if err != nil {
				log.Error("failed to list activities", sl.Err(err))
				data.Flash = &session.Flash{Level: session.LevelError,
					Message: "No s'han pogut carregar les activitats."}
			} else {
				data.Activities = list
				data.Stats = activityservice.Stats(list)
			}
		}
	case PageHome, PageAbout, PageContact, PageRegister, PageLogin, PageNotFound:
		// только общие данные шапки
	}

	if err := h.view.Render(w, page.Template(), data); err != nil {
		log.Error("failed to render page", sl.Err(err))
	}
}
