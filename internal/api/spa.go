package api

import (
	"io/fs"
	"net/http"
	"strings"
)

// SPAHandler serves the embedded page from assets' dist directory and
// routes /api/ paths to apiHandler. Unknown paths fall back to index.html.
func SPAHandler(apiHandler http.Handler, assets fs.FS) http.Handler {
	distFS, err := fs.Sub(assets, "dist")
	if err != nil {
		return apiOnly(apiHandler)
	}
	if _, err := fs.Stat(distFS, "index.html"); err != nil {
		return apiOnly(apiHandler)
	}

	fileServer := http.FileServer(http.FS(distFS))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			apiHandler.ServeHTTP(w, r)
			return
		}

		path := strings.TrimPrefix(r.URL.Path, "/")
		if path == "" {
			path = "index.html"
		}
		if _, err := fs.Stat(distFS, path); err != nil {
			r.URL.Path = "/"
		}
		fileServer.ServeHTTP(w, r)
	})
}

// apiOnly serves the API and a plain-text notice everywhere else.
func apiOnly(apiHandler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			apiHandler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("No web page embedded. The JSON API is served under /api/.\n"))
	})
}
