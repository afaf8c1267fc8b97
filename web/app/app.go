// Package app provides the server-rendered account ledger pages: the route
// table, embedded templates and the static assets the pages load.
package app

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/account-lab/pkg/module"
	"github.com/JaimeStill/account-lab/pkg/web"
)

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var publicFiles = []string{
	"app.css",
	"app.js",
}

var (
	accountView     = web.ViewDef{Template: "account.html", Title: "Accounts", Bundle: "account"}
	transactionView = web.ViewDef{Template: "transaction.html", Title: "Transactions", Bundle: "transaction"}
	adminView       = web.ViewDef{Template: "admin.html", Title: "Administration", Bundle: "admin"}
	notFoundView    = web.ViewDef{Template: "404.html", Title: "Not Found", Bundle: "app"}
)

// Routes builds the application route table. "/" redirects to the account view.
func Routes() (*web.RouteTable, error) {
	return web.NewRouteTable(
		web.Route{Path: "/", Name: "home", Redirect: "/account"},
		web.Route{Path: "/account", Name: "account", View: &accountView},
		web.Route{Path: "/transaction", Name: "transaction", View: &transactionView},
		web.Route{Path: "/admin", Name: "admin", View: &adminView},
	)
}

// PageData is exposed to every view as .Data.
type PageData struct {
	AppTitle string
	APIPath  string
}

// Options configure the app module.
type Options struct {
	BasePath string
	APIPath  string
	Title    string
}

// NewModule creates the app module serving the route table under opts.BasePath.
func NewModule(opts Options) (*module.Module, error) {
	table, err := Routes()
	if err != nil {
		return nil, err
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		opts.BasePath,
		append(viewDefs(table), notFoundView),
		funcs(table, opts.BasePath),
	)
	if err != nil {
		return nil, err
	}

	data := PageData{AppTitle: opts.Title, APIPath: opts.APIPath}
	return module.New(opts.BasePath, buildRouter(table, ts, data)), nil
}

func buildRouter(table *web.RouteTable, ts *web.TemplateSet, data PageData) http.Handler {
	r := web.NewRouter()
	r.SetFallback(ts.ErrorHandler(layout, notFoundView, http.StatusNotFound, data))
	r.Mount(table, ts, layout, data)

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" /public"+route.Pattern, route.Handler)
	}

	return r
}

func viewDefs(table *web.RouteTable) []web.ViewDef {
	views := make([]web.ViewDef, 0, len(table.Routes()))
	for _, route := range table.Views() {
		views = append(views, *route.View)
	}
	return views
}

func funcs(table *web.RouteTable, basePath string) template.FuncMap {
	return template.FuncMap{
		"path": func(name string) (string, error) {
			p, err := table.Path(name)
			if err != nil {
				return "", err
			}
			return web.JoinPath(basePath, p), nil
		},
		"asset": func(name string) string {
			return web.JoinPath(basePath, "/public/"+name)
		},
	}
}
