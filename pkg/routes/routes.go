package routes

import (
	"net/http"

	"github.com/JaimeStill/account-lab/pkg/openapi"
)

// Register adds every group route to mux and documents it in spec.
// Mux patterns are relative to the module; spec paths are prefixed with basePath.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		register(mux, "", group)
		group.AddToSpec(basePath, spec)
	}
}

func register(mux *http.ServeMux, parent string, group Group) {
	prefix := parent + group.Prefix
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		register(mux, prefix, child)
	}
}
