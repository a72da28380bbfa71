package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yosssi/gohtml"
)

//go:embed templates/*.html
var templatesFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer turns view models into HTML. It holds no per-request state and is
// safe for concurrent use.
type Renderer struct {
	pages  map[string]*template.Template
	pretty bool
}

// NewRenderer parses every page against the shared layout. Pretty output
// re-indents the markup and is meant for local development.
func NewRenderer(pretty bool) (*Renderer, error) {
	renderer := &Renderer{
		pages:  make(map[string]*template.Template),
		pretty: pretty,
	}

	for _, page := range []string{LandingPage, DashboardPage, SettingsPage} {
		tmpl, err := template.
			New(page).
			ParseFS(templatesFS, layoutFile, "templates/"+page+".html")

		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", page, err)
		}

		renderer.pages[page] = tmpl
	}

	return renderer, nil
}

// Bytes executes page with data. Nothing is written anywhere when execution
// fails, so callers never send a half rendered page.
func (r *Renderer) Bytes(page string, data any) ([]byte, error) {
	tmpl, ok := r.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", page, err)
	}

	if r.pretty {
		return gohtml.FormatBytes(buf.Bytes()), nil
	}

	return buf.Bytes(), nil
}

func (r *Renderer) Render(w io.Writer, page string, data any) error {
	body, err := r.Bytes(page, data)
	if err != nil {
		return err
	}

	_, err = w.Write(body)

	return err
}
