// Package render wires html/template page sets into gin. Each page gets its
// own template set (layout + page) so pages can define the same block names
// without clashing.
package render

import (
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/gin-gonic/gin"
	ginrender "github.com/gin-gonic/gin/render"
)

var pageNames = []string{"menu", "category", "product", "cart", "checkout", "confirm"}

type HTMLRenderer struct {
	Templates map[string]*template.Template
}

// NewHTMLRenderer parses templates/<page>.html against templates/layout.html
// for every known page.
func NewHTMLRenderer(dir string) (*HTMLRenderer, error) {
	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}

	sets := make(map[string]*template.Template, len(pageNames))
	layout := filepath.Join(dir, "layout.html")
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFiles(layout, filepath.Join(dir, name+".html"))
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		sets[name] = t
	}
	return &HTMLRenderer{Templates: sets}, nil
}

func (r *HTMLRenderer) Instance(name string, data any) ginrender.Render {
	return ginrender.HTML{
		Template: r.Templates[name],
		Name:     "layout",
		Data:     data,
	}
}

// Page writes one rendered page.
func Page(c *gin.Context, status int, name string, data any) {
	c.HTML(status, name, data)
}

var _ ginrender.HTMLRender = (*HTMLRenderer)(nil)
