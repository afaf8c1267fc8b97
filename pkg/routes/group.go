// Package routes registers domain route groups on a ServeMux and documents
// them in an OpenAPI specification.
package routes

import (
	"net/http"

	"github.com/JaimeStill/account-lab/pkg/openapi"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// Route is a single method and pattern relative to its group prefix.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// AddToSpec documents the group, its schemas and its children under basePath.
// Routes without an OpenAPI operation are left out. Operations without tags
// inherit the group tags.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addOperations(basePath, spec)
	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}
}

func (g *Group) addOperations(parent string, spec *openapi.Spec) {
	prefix := parent + g.Prefix

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}

		spec.AddOperation(prefix+route.Pattern, route.Method, op)
	}

	for i := range g.Children {
		child := &g.Children[i]
		child.addOperations(prefix, spec)
		if len(child.Schemas) > 0 {
			spec.Components.AddSchemas(child.Schemas)
		}
	}
}
