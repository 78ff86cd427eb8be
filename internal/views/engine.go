package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"
)

//go:embed templates
var files embed.FS

// Layout is the page layout every view is rendered into. Pages are plain
// bodies; the layout places them with {{embed}}.
const Layout = "layouts/base"

// Funcs are the helpers available in every template.
var Funcs = map[string]interface{}{
	"money": func(v float64) string {
		return decimal.NewFromFloat(v).StringFixed(2)
	},
	"mul": func(price float64, qty int) float64 {
		return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty))).Round(2).InexactFloat64()
	},
}

// New creates the html engine over the embedded templates. Templates are named
// by their path below templates/ without the extension, e.g. "home" or
// "layouts/base", and are parsed on Load or on the first Render.
func New() *html.Engine {
	root, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(root), ".html")
	engine.AddFuncMap(Funcs)
	return engine
}
