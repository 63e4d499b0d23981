// Package view отвечает за отрисовку HTML-страниц. Шаблоны встроены в
// бинарник; разметка намеренно минимальна — содержимое и оформление
// страниц не входят в зону ответственности приложения.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/magabrotheeeer/propulse/internal/catalog"
	"github.com/magabrotheeeer/propulse/internal/models"
	"github.com/magabrotheeeer/propulse/internal/services/shop"
	"github.com/magabrotheeeer/propulse/internal/session"
)

// Data данные отрисовки одной страницы: общее состояние шапки
// (flash, CSRF-токен, счётчик корзины, баннер недоступности хранилища)
// плюс данные конкретной страницы.
type Data struct {
	AppName   string
	Page      string
	Flash     *session.Flash
	CSRFToken string
	LoggedIn  bool
	UserName  string
	CartCount int
	StoreErr  bool

	Catalog    []catalog.Item
	Cart       shop.CartView
	Activities []*models.Activity
	Stats      models.ActivityStats
	Order      *models.Order
	OrderCode  string
}

// View хранит разобранные шаблоны страниц.
type View struct {
	pages map[string]*template.Template
}

// pageNames имена всех отрисовываемых страниц; для каждой существует
// одноимённый шаблон, подключаемый к базовому макету.
var pageNames = []string{
	"home", "shop", "cart", "checkout", "order",
	"about", "contact", "register", "login", "dashboard", "notfound",
}

// New разбирает встроенные шаблоны всех страниц.
func New() (*View, error) {
	const op = "view.New"

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFiles,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		pages[name] = t
	}
	return &View{pages: pages}, nil
}

// Render отрисовывает страницу name. Страница пишется в буфер целиком,
// чтобы ошибка шаблона не оставила клиенту половину ответа.
func (v *View) Render(w http.ResponseWriter, name string, data *Data) error {
	const op = "view.Render"

	t, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("%s: unknown page template %q", op, name)
	}
	data.Page = name

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
