package web

import "net/http"

// Router wraps a ServeMux and sends unmatched requests to a fallback.
type Router struct {
	mux      *http.ServeMux
	fallback http.HandlerFunc
}

// NewRouter creates a Router with no fallback; unmatched requests get the
// ServeMux 404.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// SetFallback sets the handler for requests no pattern matches.
func (r *Router) SetFallback(h http.HandlerFunc) {
	r.fallback = h
}

// Handle registers handler for pattern.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

// HandleFunc registers fn for pattern.
func (r *Router) HandleFunc(pattern string, fn http.HandlerFunc) {
	r.mux.HandleFunc(pattern, fn)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.fallback != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" {
			r.fallback(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}

// Mount registers every active route of table: views render through ts,
// redirects answer 302 with a Location under the template set's base path.
func (r *Router) Mount(table *RouteTable, ts *TemplateSet, layout string, data any) {
	for _, route := range table.Active() {
		if route.IsRedirect() {
			r.HandleFunc("GET "+route.Pattern(), RedirectHandler(JoinPath(ts.BasePath(), route.Redirect)))
			continue
		}
		r.HandleFunc("GET "+route.Pattern(), ts.PageHandler(layout, *route.View, data))
	}
}

// RedirectHandler answers with 302 Found to target, keeping the query string.
func RedirectHandler(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		dest := target
		if req.URL.RawQuery != "" {
			dest += "?" + req.URL.RawQuery
		}
		http.Redirect(w, req, dest, http.StatusFound)
	}
}
