// Package scalar serves the Scalar API reference UI for the DrinkChain OpenAPI document.
package scalar

import (
	"html/template"
	"net/http"

	"github.com/JaimeStill/drinkchain/pkg/module"
)

const cdn = "https://cdn.jsdelivr.net/npm/@scalar/api-reference"

var page = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
</head>
<body>
  <script id="api-reference" data-url="{{.SpecURL}}"></script>
  <script src="{{.CDN}}"></script>
</body>
</html>
`))

// NewModule creates a module that serves the Scalar API reference UI at
// basePath, rendering the OpenAPI document found at specURL.
func NewModule(basePath, title, specURL string) *module.Module {
	return module.New(basePath, buildRouter(title, specURL))
}

func buildRouter(title, specURL string) http.Handler {
	mux := http.NewServeMux()

	data := map[string]string{
		"Title":   title,
		"SpecURL": specURL,
		"CDN":     cdn,
	}
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page.Execute(w, data)
	})

	return mux
}
