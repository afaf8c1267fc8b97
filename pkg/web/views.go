// Package web serves server-rendered pages from a validated route table.
// Templates are parsed once at startup; routes bind static paths to views
// or redirects, and unmatched paths fall through to an error view.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef names a view template with its page title and script bundle.
type ViewDef struct {
	Template string
	Title    string
	Bundle   string
}

// ViewData is passed to templates. BasePath enables portable URLs via
// {{ .BasePath }}; Data carries module-specific values.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	Data     any
}

// TemplateSet holds one pre-parsed template tree per view.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layouts once, registering funcs first, and clones
// them for each view. Parsing failures surface at startup.
func NewTemplateSet(
	layoutFS, viewFS fs.FS,
	layoutGlob, viewSubdir, basePath string,
	views []ViewDef,
	funcs template.FuncMap,
) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(funcs).ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	tmpls := make(map[string]*template.Template, len(views))
	for _, v := range views {
		if _, ok := tmpls[v.Template]; ok {
			continue
		}
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		tmpls[v.Template] = t
	}

	return &TemplateSet{
		views:    tmpls,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path included in every ViewData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// ErrorHandler renders view with the given status code.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		vd := ViewData{
			Title:    view.Title,
			Bundle:   view.Bundle,
			BasePath: ts.basePath,
			Data:     data,
		}
		if err := ts.execute(w, layout, view.Template, vd); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// PageHandler renders view inside layout.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vd := ViewData{
			Title:    view.Title,
			Bundle:   view.Bundle,
			BasePath: ts.basePath,
			Data:     data,
		}
		if err := ts.Render(w, layout, view.Template, vd); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Render executes layout for the view template and sets a text/html
// Content-Type.
func (ts *TemplateSet) Render(w http.ResponseWriter, layout, view string, data ViewData) error {
	if _, ok := ts.views[view]; !ok {
		return fmt.Errorf("template not found: %s", view)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return ts.execute(w, layout, view, data)
}

func (ts *TemplateSet) execute(w http.ResponseWriter, layout, view string, data ViewData) error {
	t, ok := ts.views[view]
	if !ok {
		return fmt.Errorf("template not found: %s", view)
	}
	return t.ExecuteTemplate(w, layout, data)
}
