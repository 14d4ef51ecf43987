package adapter

import (
	"embed"
	"html/template"
	"strings"
	"sync"

	"github.com/kapu/pokedex-web-go/internal/domain"
)

//go:embed templates/*.tmpl
var htmlTemplateFS embed.FS

var (
	htmlTemplates *template.Template
	htmlOnce      sync.Once
	htmlErr       error
)

func executeHTMLTemplate(name string, data any) (string, error) {
	htmlOnce.Do(func() {
		htmlTemplates, htmlErr = template.New("panels").ParseFS(htmlTemplateFS, "templates/*.tmpl")
	})

	if htmlErr != nil {
		return "", htmlErr
	}

	var builder strings.Builder
	if err := htmlTemplates.ExecuteTemplate(&builder, name, data); err != nil {
		return "", err
	}

	return strings.TrimSpace(builder.String()), nil
}

// HTMLRenderer produces the markup pushed into the browser panels.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (r *HTMLRenderer) RenderDetail(view domain.DetailView) (string, error) {
	return executeHTMLTemplate("detail", view)
}

func (r *HTMLRenderer) RenderGrid(view domain.GridView) (string, error) {
	return executeHTMLTemplate("grid", view)
}
