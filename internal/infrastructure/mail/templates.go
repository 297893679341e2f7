package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer transforma uma notificação no corpo HTML do email
type Renderer struct {
	templates *template.Template
}

// NewRenderer carrega os templates embutidos
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render escolhe o template pelo tipo da notificação
func (r *Renderer) Render(n ports.Notification) (string, error) {
	name := string(n.Kind) + ".html"
	if r.templates.Lookup(name) == nil {
		return "", fmt.Errorf("no template for notification kind %q", n.Kind)
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, n.Data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
