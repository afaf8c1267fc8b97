package web

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRoute indicates a route record violates a table invariant.
	ErrInvalidRoute = errors.New("invalid route")

	// ErrUnknownRoute indicates a name lookup found no route.
	ErrUnknownRoute = errors.New("unknown route")
)

// Route binds a static URL path to either a view or a redirect target.
// Exactly one of View and Redirect is set.
type Route struct {
	Path     string
	Name     string
	View     *ViewDef
	Redirect string
}

// IsRedirect reports whether the route redirects instead of rendering.
func (r Route) IsRedirect() bool {
	return r.Redirect != ""
}

// Pattern returns the ServeMux path pattern for the route. The root path
// only matches itself.
func (r Route) Pattern() string {
	if r.Path == "/" {
		return "/{$}"
	}
	return r.Path
}

// Resolution is the outcome of resolving a path against a RouteTable.
type Resolution struct {
	// Route is the view route reached, nil when nothing matched.
	Route *Route

	// Redirects lists the redirect targets followed, in order.
	Redirects []string
}

// Found reports whether resolution ended on a view route.
func (r Resolution) Found() bool {
	return r.Route != nil
}

// RouteTable is an immutable, validated set of routes. It is safe for
// concurrent use once built.
type RouteTable struct {
	routes []Route
	byPath map[string]int
	byName map[string]int
}

// NewRouteTable validates routes and builds a table. When two routes share
// a path the first one registered wins.
func NewRouteTable(routes ...Route) (*RouteTable, error) {
	t := &RouteTable{
		routes: make([]Route, len(routes)),
		byPath: make(map[string]int, len(routes)),
		byName: make(map[string]int, len(routes)),
	}
	copy(t.routes, routes)

	for i, r := range t.routes {
		if err := validateRoute(r); err != nil {
			return nil, err
		}
		if _, dup := t.byName[r.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidRoute, r.Name)
		}
		t.byName[r.Name] = i
		if _, taken := t.byPath[r.Path]; !taken {
			t.byPath[r.Path] = i
		}
	}

	if err := t.validateRedirects(); err != nil {
		return nil, err
	}

	return t, nil
}

// Routes returns every route in registration order.
func (t *RouteTable) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Active returns the routes that own their path, in registration order.
// Routes shadowed by an earlier route with the same path are omitted.
func (t *RouteTable) Active() []Route {
	out := make([]Route, 0, len(t.routes))
	for i, r := range t.routes {
		if t.byPath[r.Path] == i {
			out = append(out, r)
		}
	}
	return out
}

// Views returns the view routes in registration order.
func (t *RouteTable) Views() []Route {
	out := make([]Route, 0, len(t.routes))
	for _, r := range t.routes {
		if !r.IsRedirect() {
			out = append(out, r)
		}
	}
	return out
}

// Redirects returns the redirect routes in registration order.
func (t *RouteTable) Redirects() []Route {
	out := make([]Route, 0, len(t.routes))
	for _, r := range t.routes {
		if r.IsRedirect() {
			out = append(out, r)
		}
	}
	return out
}

// Match returns the route owning path without following redirects.
func (t *RouteTable) Match(path string) (Route, bool) {
	i, ok := t.byPath[normalize(path)]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Lookup returns the route registered under name.
func (t *RouteTable) Lookup(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Path returns the path of the named route.
func (t *RouteTable) Path(name string) (string, error) {
	r, ok := t.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	return r.Path, nil
}

// Resolve follows redirects from path until a view route is reached or
// nothing matches. It never fails; an unmatched path yields a Resolution
// whose Found reports false.
func (t *RouteTable) Resolve(path string) Resolution {
	var res Resolution
	current := normalize(path)

	// construction guarantees redirect chains are acyclic, so len(routes)
	// hops always suffice
	for range len(t.routes) + 1 {
		r, ok := t.Match(current)
		if !ok {
			return res
		}
		if !r.IsRedirect() {
			res.Route = &r
			return res
		}
		res.Redirects = append(res.Redirects, r.Redirect)
		current = r.Redirect
	}
	return res
}

func (t *RouteTable) validateRedirects() error {
	for _, r := range t.routes {
		if !r.IsRedirect() {
			continue
		}

		seen := map[string]bool{r.Path: true}
		target := r.Redirect
		for {
			next, ok := t.Match(target)
			if !ok {
				return fmt.Errorf("%w: %s redirects to unregistered path %s", ErrInvalidRoute, r.Name, target)
			}
			if !next.IsRedirect() {
				break
			}
			if seen[target] {
				return fmt.Errorf("%w: redirect cycle through %s", ErrInvalidRoute, target)
			}
			seen[target] = true
			target = next.Redirect
		}
	}
	return nil
}

func validateRoute(r Route) error {
	if r.Path == "" {
		return fmt.Errorf("%w: empty path for %q", ErrInvalidRoute, r.Name)
	}
	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidRoute, r.Path)
	}
	if strings.ContainsAny(r.Path, "{}") {
		return fmt.Errorf("%w: path %q must be static", ErrInvalidRoute, r.Path)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: empty name for %s", ErrInvalidRoute, r.Path)
	}
	switch {
	case r.View != nil && r.IsRedirect():
		return fmt.Errorf("%w: %s sets both view and redirect", ErrInvalidRoute, r.Name)
	case r.View == nil && !r.IsRedirect():
		return fmt.Errorf("%w: %s sets neither view nor redirect", ErrInvalidRoute, r.Name)
	}
	return nil
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

// JoinPath prefixes a route path with a module base path.
func JoinPath(basePath, path string) string {
	base := strings.TrimSuffix(basePath, "/")
	if path == "/" || path == "" {
		if base == "" {
			return "/"
		}
		return base + "/"
	}
	return base + path
}
