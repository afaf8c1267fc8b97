// Package query builds parameterized PostgreSQL queries over a projection
// of table columns onto view field names.
package query

import "strings"

// ProjectionMap maps view field names to qualified table columns.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	byView  map[string]string
}

// NewProjectionMap creates an empty projection over schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		byView: make(map[string]string),
	}
}

// Project adds column under the view name. Columns keep projection order.
func (p *ProjectionMap) Project(column, view string) *ProjectionMap {
	qualified := p.alias + "." + column
	p.columns = append(p.columns, qualified)
	p.byView[view] = qualified
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the aliased table reference for FROM clauses.
func (p *ProjectionMap) Table() string {
	return p.schema + "." + p.table + " " + p.alias
}

// Column returns the qualified column for view, or view itself when unknown.
func (p *ProjectionMap) Column(view string) string {
	if col, ok := p.byView[view]; ok {
		return col
	}
	return view
}

// Has reports whether view is a projected field.
func (p *ProjectionMap) Has(view string) bool {
	_, ok := p.byView[view]
	return ok
}

// Columns returns the projected columns as a select list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// ColumnList returns a copy of the projected columns.
func (p *ProjectionMap) ColumnList() []string {
	out := make([]string, len(p.columns))
	copy(out, p.columns)
	return out
}
