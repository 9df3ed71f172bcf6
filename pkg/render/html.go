// Package render turns composed screens and series into bytes: HTML pages,
// PNG charts and GeoJSON.
package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/BorromeoLara/INVE/entities"
	"github.com/BorromeoLara/INVE/pkg/view"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	NotAvailable = "N/A"
	NoData       = "Sin datos"
)

var page = template.Must(template.New("").Funcs(template.FuncMap{
	"date": func(d *entities.Date) string {
		if d == nil || d.IsZero() {
			return NotAvailable
		}
		return d.String()
	},
	"nodata": func() string { return NoData },
}).ParseFS(templateFS, "templates/*.html"))

func HTML(w io.Writer, sc view.Screen) error {
	return page.ExecuteTemplate(w, "screen.html", sc)
}
