// Package view renders the admin pages. Every page is an html/template file
// defining a "content" block (and optionally "title") that is executed
// inside layouts/base.html.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

const layoutFile = "templates/layouts/base.html"

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the layout once and every page on top of a clone of it.
// Page names are their paths under templates/ without the extension,
// e.g. "customers/index".
func NewRenderer() (*Renderer, error) {
	layout, err := template.ParseFS(templateFS, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	err = fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path == layoutFile || !strings.HasSuffix(path, ".html") {
			return nil
		}

		page, err := layout.Clone()
		if err != nil {
			return err
		}
		if _, err := page.ParseFS(templateFS, path); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		r.pages[name] = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Render executes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}
	return page.ExecuteTemplate(w, "base.html", data)
}
