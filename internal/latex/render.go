// Package latex renders the final manuscript from the embedded IEEE
// conference template and strips duplicated front-matter sections out of
// the converted body.
package latex

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Alexgr8080/papercoverterieee/internal/models"
)

//go:embed paper.tex.tmpl
var paperTemplate string

// The template uses << >> delimiters so LaTeX braces never collide with
// template actions.
var paperTmpl = template.Must(
	template.New("paper").
		Delims("<<", ">>").
		Funcs(template.FuncMap{
			"join": strings.Join,
		}).
		Parse(paperTemplate),
)

// Render merges the user-confirmed metadata and the sanitized body into
// the manuscript template. Absent optional fields render as empty strings.
// The template carries no timestamps, so rendering the same context twice
// yields byte-identical output.
func Render(ctx models.RenderContext) (string, error) {
	var b strings.Builder
	if err := paperTmpl.Execute(&b, ctx); err != nil {
		return "", fmt.Errorf("rendering manuscript template: %w", err)
	}
	return b.String(), nil
}
