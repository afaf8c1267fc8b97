// Package module groups an http.Handler under a single-segment URL prefix
// with its own middleware chain. Modules are mounted on a Router, which
// strips the prefix before the module sees the request.
package module

import (
	"fmt"
	"net/http"
	"strings"
)

// Module is a prefix-scoped handler with an ordered middleware chain.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware []func(http.Handler) http.Handler
}

// New creates a Module. The prefix must be a single segment such as "/api";
// New panics otherwise since a bad prefix is a programming error.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:  prefix,
		handler: handler,
	}
}

// Prefix returns the mount prefix of the module.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. The first registered middleware runs first.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware = append(m.middleware, mw)
}

// Handler returns the module handler wrapped in its middleware chain.
func (m *Module) Handler() http.Handler {
	h := m.handler
	for i := len(m.middleware) - 1; i >= 0; i-- {
		h = m.middleware[i](h)
	}
	return h
}

// Serve strips the module prefix from the request path and dispatches it.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""

	m.Handler().ServeHTTP(w, r2)
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix cannot be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix must be a single level: %s", prefix)
	}
	return nil
}
