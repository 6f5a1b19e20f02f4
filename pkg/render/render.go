package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/duneview/duneview/pkg/models"
)

//go:embed templates/*.html.tmpl
var templates embed.FS

// Renderer is the presentation boundary the handlers hand view models to.
type Renderer interface {
	Form(w io.Writer, view *models.FormView) error
	Results(w io.Writer, view *models.ResultsView) error
}

type HTML struct {
	form    *template.Template
	results *template.Template
}

var _ Renderer = (*HTML)(nil)

func NewHTML() (*HTML, error) {
	form, err := template.ParseFS(templates, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("unable to parse form template: %w", err)
	}

	results, err := template.ParseFS(templates, "templates/results.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("unable to parse results template: %w", err)
	}

	return &HTML{form: form, results: results}, nil
}

func (h *HTML) Form(w io.Writer, view *models.FormView) error {
	if err := h.form.Execute(w, view); err != nil {
		return fmt.Errorf("unable to render form page: %w", err)
	}
	return nil
}

func (h *HTML) Results(w io.Writer, view *models.ResultsView) error {
	if err := h.results.Execute(w, view); err != nil {
		return fmt.Errorf("unable to render results page: %w", err)
	}
	return nil
}
