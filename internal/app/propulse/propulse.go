package propulse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/propulse/internal/config"
	"github.com/magabrotheeeer/propulse/internal/http/view"
	"github.com/magabrotheeeer/propulse/internal/lib/sl"
	"github.com/magabrotheeeer/propulse/internal/migrations"
	activityservice "github.com/magabrotheeeer/propulse/internal/services/activity"
	authservice "github.com/magabrotheeeer/propulse/internal/services/auth"
	contactservice "github.com/magabrotheeeer/propulse/internal/services/contact"
	"github.com/magabrotheeeer/propulse/internal/services/errs"
	shopservice "github.com/magabrotheeeer/propulse/internal/services/shop"
	"github.com/magabrotheeeer/propulse/internal/session"
	"github.com/magabrotheeeer/propulse/internal/storage/repository"
)

// App собранное приложение с HTTP-сервером.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	storage *repository.Storage
}

// New создает приложение. Недоступность хранилища не фатальна:
// приложение поднимается, каждая страница несёт баннер, а все
// мутирующие действия завершаются предупреждением до записи.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	var storeErr error
	db, err := repository.New(cfg.StoragePath)
	if err != nil {
		storeErr = fmt.Errorf("%w: %v", errs.ErrStoreUnavailable, err)
		logger.Error("failed to open storage", sl.Err(err))
	} else if err = migrations.Run(db.DB); err != nil {
		storeErr = fmt.Errorf("%w: %v", errs.ErrStoreUnavailable, err)
		_ = db.DB.Close()
		db = nil
		logger.Error("failed to run migrations", sl.Err(err))
	}

	v, err := view.New()
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(cfg.Session.CookieName, cfg.Session.TTL)

	authService := authservice.New(db, logger)
	activityService := activityservice.New(db, logger)
	shopService := shopservice.New(db, loc, logger)
	contactService := contactservice.New(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, sessions,
		authService, activityService, shopService, contactService, v, storeErr)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		storage: db,
	}, nil
}

// Run запускает HTTP-сервер и корректно гасит его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.storage != nil {
			_ = a.storage.DB.Close()
		}
		return err
	}
}
