package swaggerkit

import (
	"net/http"

	phttp "stapibridge/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount the Swagger UI and JSON document if enabled
// root is the ROOT_PATH r is mounted under, so the UI can find the document
func Mount(r phttp.Router, root string, doc []byte, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, root+"/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(doc))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.URL(root+"/api/docs/doc.json"),
	))
}

// serveDocJSON serves the prebuilt document
func serveDocJSON(doc []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(doc)
	}
}
