// Package web renders the HTML pages of the dashboard.
//
// Templates and the stylesheet are embedded into the binary. Every page is
// parsed together with the shared layout, so each page defines its own
// "content" block.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// Page names accepted by Renderer.Render.
const (
	PageLanding      = "landing"
	PageLogin        = "login"
	PageClients      = "clients"
	PageClient       = "client"
	PageTransactions = "transactions"
	PageAudit        = "audit"
	PageError        = "error"
)

const timeLayout = "2006-01-02 15:04"

//go:embed templates/layout.html templates/pages/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	// upstream ids are opaque and may contain '/', '?' or '#'
	"pathEscape": url.PathEscape,
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(timeLayout)
	},
}

// Renderer executes page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every embedded page.
func NewRenderer() (*Renderer, error) {
	return newRenderer(templatesFS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	paths, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob page templates: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrNoTemplates
	}

	pages := make(map[string]*template.Template, len(paths))
	for _, p := range paths {
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		t, err := template.New(name).Funcs(funcs).ParseFS(fsys, "templates/layout.html", p)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages}, nil
}

// Render writes page with data and status. The page is executed into a
// buffer first, so a template error leaves w untouched.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute page %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded stylesheet under the prefix it is mounted on.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
