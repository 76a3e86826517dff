// Package web embeds the HTML templates and static assets.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	html "github.com/gofiber/template/html/v2"
)

//go:embed templates static
var files embed.FS

// Views returns the template engine. reload re-parses templates on each render from dir
// on disk instead of the embedded copy, for development.
func Views(reload bool, dir string) *html.Engine {
	var engine *html.Engine
	if reload && dir != "" {
		engine = html.New(dir, ".html")
		engine.Reload(true)
	} else {
		sub, err := fs.Sub(files, "templates")
		if err != nil {
			panic(err)
		}
		engine = html.NewFileSystem(http.FS(sub), ".html")
	}
	engine.AddFunc("price", func(v float64, currency string) string {
		sym := map[string]string{"EUR": "€", "USD": "$", "GBP": "£"}[currency]
		if sym == "" {
			return fmt.Sprintf("%.2f %s", v, currency)
		}
		return fmt.Sprintf("%s%.0f", sym, v)
	})
	engine.AddFunc("lines", func(l []string) string { return strings.Join(l, "\n") })
	engine.AddFunc("has", func(l []string, s string) bool {
		for _, v := range l {
			if v == s {
				return true
			}
		}
		return false
	})
	engine.AddFunc("dict", func(kv ...any) map[string]any {
		m := make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			if k, ok := kv[i].(string); ok {
				m[k] = kv[i+1]
			}
		}
		return m
	})
	return engine
}

// Static is the content served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
