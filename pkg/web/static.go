package web

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
)

// StaticRoute is a method/pattern/handler triple for a single embedded file.
type StaticRoute struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// PublicFileRoutes serves each named file from fsys/dir at the site root,
// e.g. "favicon.ico" at "/favicon.ico".
func PublicFileRoutes(fsys fs.FS, dir string, files ...string) []StaticRoute {
	routes := make([]StaticRoute, 0, len(files))
	for _, name := range files {
		routes = append(routes, StaticRoute{
			Method:  "GET",
			Pattern: "/" + name,
			Handler: ServeEmbeddedFile(fsys, path.Join(dir, name)),
		})
	}
	return routes
}

// ServeEmbeddedFile serves one file from fsys with a Content-Type derived
// from its extension.
func ServeEmbeddedFile(fsys fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.Write(data)
	}
}
