// Package propulse собирает приложение: маршруты, middleware и сервисы.
package propulse

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/propulse/internal/http/handlers/actions"
	activityadd "github.com/magabrotheeeer/propulse/internal/http/handlers/activity/add"
	"github.com/magabrotheeeer/propulse/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/propulse/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/propulse/internal/http/handlers/auth/register"
	contactsend "github.com/magabrotheeeer/propulse/internal/http/handlers/contact/send"
	"github.com/magabrotheeeer/propulse/internal/http/handlers/pages"
	"github.com/magabrotheeeer/propulse/internal/http/handlers/shop/cartadd"
	"github.com/magabrotheeeer/propulse/internal/http/handlers/shop/cartclear"
	"github.com/magabrotheeeer/propulse/internal/http/handlers/shop/cartremove"
	"github.com/magabrotheeeer/propulse/internal/http/handlers/shop/checkout"
	"github.com/magabrotheeeer/propulse/internal/http/middlewarectx"
	"github.com/magabrotheeeer/propulse/internal/http/view"
	activityservice "github.com/magabrotheeeer/propulse/internal/services/activity"
	authservice "github.com/magabrotheeeer/propulse/internal/services/auth"
	contactservice "github.com/magabrotheeeer/propulse/internal/services/contact"
	shopservice "github.com/magabrotheeeer/propulse/internal/services/shop"
	"github.com/magabrotheeeer/propulse/internal/session"
)

// AppName отображаемое имя приложения.
const AppName = "ProPulse"

// RegisterRoutes регистрирует все маршруты приложения: GET-диспетчер
// страниц, POST-диспетчер действий и endpoint метрик.
func RegisterRoutes(r chi.Router, logger *slog.Logger, sessions *session.Store,
	authService *authservice.Service, activityService *activityservice.Service,
	shopService *shopservice.Service, contactService *contactservice.Service,
	v *view.View, storeErr error) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.SessionMiddleware(sessions),
	)

	pageHandler := pages.New(logger, v, activityService, shopService, AppName, storeErr)
	actionRouter := actions.New(logger, actions.Handlers{
		Register:    register.New(logger, authService),
		Login:       login.New(logger, authService, sessions),
		Logout:      logout.New(logger),
		AddActivity: activityadd.New(logger, activityService),
		CartAdd:     cartadd.New(logger, shopService),
		CartRemove:  cartremove.New(logger, shopService),
		CartClear:   cartclear.New(logger, shopService),
		Checkout:    checkout.New(logger, shopService),
		ContactSend: contactsend.New(logger, contactService),
	}, storeErr)

	r.Get("/", pageHandler.ServeHTTP)
	r.Post("/", actionRouter.ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
}
