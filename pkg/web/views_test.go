package web_test

import (
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/account-lab/pkg/web"
)

var testFS = fstest.MapFS{
	"layouts/test.html": {Data: []byte(
		`<!DOCTYPE html><html><head><title>{{ .Title }}</title></head>` +
			`<body data-bundle="{{ .Bundle }}">{{ block "content" . }}{{ end }}</body></html>`,
	)},
	"views/home.html":  {Data: []byte(`{{ define "content" }}Home Page <a href="{{ path "about" }}">about</a>{{ end }}`)},
	"views/about.html": {Data: []byte(`{{ define "content" }}About Page{{ end }}`)},
	"views/404.html":   {Data: []byte(`{{ define "content" }}Not Found{{ end }}`)},
}

var testFuncs = template.FuncMap{
	"path": func(name string) string { return "/app/" + name },
}

var testViews = []web.ViewDef{
	{Template: "home.html", Title: "Home", Bundle: "app"},
	{Template: "about.html", Title: "About", Bundle: "app"},
	{Template: "404.html", Title: "Not Found", Bundle: "app"},
}

func newTestTemplateSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(testFS, testFS, "layouts/*.html", "views", "/app", testViews, testFuncs)
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}
	return ts
}

func TestNewTemplateSet_Errors(t *testing.T) {
	tests := []struct {
		name       string
		layoutGlob string
		views      []web.ViewDef
	}{
		{"invalid layout glob", "missing/*.html", testViews},
		{"missing view template", "layouts/*.html", []web.ViewDef{{Template: "missing.html"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := web.NewTemplateSet(testFS, testFS, tt.layoutGlob, "views", "/app", tt.views, testFuncs)
			if err == nil {
				t.Error("NewTemplateSet() error = nil, want error")
			}
		})
	}
}

func TestTemplateSet_Render(t *testing.T) {
	ts := newTestTemplateSet(t)

	w := httptest.NewRecorder()
	err := ts.Render(w, "test.html", "home.html", web.ViewData{Title: "Test", Bundle: "test-bundle", BasePath: "/app"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	resp := w.Result()
	if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/html; charset=utf-8", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{"<!DOCTYPE html>", "<title>Test</title>", "Home Page", "test-bundle", `href="/app/about"`} {
		if !strings.Contains(string(body), want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestTemplateSet_RenderUnknownView(t *testing.T) {
	ts := newTestTemplateSet(t)

	err := ts.Render(httptest.NewRecorder(), "test.html", "missing.html", web.ViewData{})
	if err == nil {
		t.Error("Render() with unknown view should return error")
	}
}

func TestTemplateSet_ErrorHandler(t *testing.T) {
	ts := newTestTemplateSet(t)
	h := ts.ErrorHandler("test.html", testViews[2], http.StatusNotFound, nil)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	resp := w.Result()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Not Found") {
		t.Error("body does not contain error view content")
	}
}
