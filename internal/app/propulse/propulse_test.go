package propulse

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/propulse/internal/config"
)

func testConfig(storagePath string) *config.Config {
	return &config.Config{
		Env:             "test",
		StoragePath:     storagePath,
		DisplayTimezone: "Europe/Madrid",
		HTTPServer: config.HTTPServer{
			AddressHTTP: "127.0.0.1:0",
			TimeoutHTTP: time.Second,
			IdleTimeout: time.Second,
		},
		Session: config.Session{CookieName: "sid", TTL: time.Hour},
	}
}

func TestNew_HealthyBoot(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "propulse.db"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app, err := New(context.Background(), cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, app.storage)
	t.Cleanup(func() { _ = app.storage.DB.Close() })

	rec := httptest.NewRecorder()
	app.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "No es pot accedir a la base de dades")
}

func TestNew_DegradedBootOnStorageFailure(t *testing.T) {
	// Каталог не существует, файл базы открыть нельзя. Приложение всё
	// равно поднимается: страницы несут баннер недоступности, хранилище
	// не удерживается.
	cfg := testConfig(filepath.Join(t.TempDir(), "no", "such", "dir", "propulse.db"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app, err := New(context.Background(), cfg, logger)
	require.NoError(t, err, "недоступность хранилища не фатальна для старта")
	assert.Nil(t, app.storage)

	rec := httptest.NewRecorder()
	app.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No es pot accedir a la base de dades")
}
