// Package web renders the hub page and preview card from embedded templates
// and serves the embedded static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"poeHub/internal/events"
	"poeHub/internal/hub"
	"poeHub/internal/models"
	"poeHub/internal/preview"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed all:static
var staticFS embed.FS

const stampLayout = "Jan 2, 2006 15:04 UTC"

var funcs = template.FuncMap{
	"stamp": func(t time.Time) string {
		return t.UTC().Format(stampLayout)
	},
}

type IndexPage struct {
	Game        models.Game
	Games       []models.Game
	Events      []events.Card
	Directory   *hub.Directory
	GeneratedAt time.Time
}

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	const op = "web.New"

	tmpl, err := template.New("hub").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Index(w io.Writer, p IndexPage) error {
	if p.Directory == nil {
		p.Directory = &hub.Directory{}
	}
	if p.Games == nil {
		p.Games = []models.Game{models.GamePoE1, models.GamePoE2}
	}

	return r.tmpl.ExecuteTemplate(w, "index", p)
}

func (r *Renderer) PreviewCard(w io.Writer, c preview.Card) error {
	return r.tmpl.ExecuteTemplate(w, "preview-card", c)
}

// Static serves the embedded assets; mount it with the /static prefix
// stripped.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}

	return http.FileServer(http.FS(sub))
}
