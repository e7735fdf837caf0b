package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log"

	"linedori-web/home"
	"linedori-web/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names
const (
	PageHome     = "home.html"
	PageCategory = "category.html"
	PageProject  = "project.html"
	PagePrint    = "print.html"
	PageAbout    = "about.html"
	PagePress    = "press.html"
)

var pageNames = []string{PageHome, PageCategory, PageProject, PagePrint, PageAbout, PagePress}

// PageRenderer executes the site templates
// Implements PageRendererInterface
type PageRenderer struct {
	pages map[string]*template.Template
}

// NewPageRenderer parses every page together with the shared layout
func NewPageRenderer() (*PageRenderer, error) {
	funcs := template.FuncMap{
		"isStudio": func(a home.Arrangement) bool { return a == home.ArrangementStudio },
		"isPaired": func(a home.Arrangement) bool { return a == home.ArrangementPaired },
		"tabLabel": utils.TabLabel,
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	log.Printf("✓ Parsed %d page templates", len(pages))
	return &PageRenderer{pages: pages}, nil
}

// Ensure PageRenderer implements PageRendererInterface
var _ PageRendererInterface = (*PageRenderer)(nil)

// Render executes page into w. Output is buffered so a failing template writes nothing.
func (r *PageRenderer) Render(w io.Writer, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
