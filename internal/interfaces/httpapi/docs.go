package httpapi

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.yaml
var openAPIDocument []byte

var docsPage = []byte(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Mock Draft API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="docs"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#docs',
      docExpansion: 'list',
      operationsSorter: 'alpha',
      tagsSorter: 'alpha',
    });
  </script>
</body>
</html>`)

func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	serveDocument(w, r, "httpapi.Handler.OpenAPI", "application/yaml; charset=utf-8", openAPIDocument)
}

func (h *Handler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	serveDocument(w, r, "httpapi.Handler.SwaggerUI", "text/html; charset=utf-8", docsPage)
}

func serveDocument(w http.ResponseWriter, r *http.Request, spanName, contentType string, body []byte) {
	_, span := startSpan(r.Context(), spanName)
	defer span.End()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(body)
}
