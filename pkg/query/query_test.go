package query_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/JaimeStill/account-lab/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "transactions", "t").
		Project("id", "Id").
		Project("source_id", "SourceId").
		Project("amount", "Amount")
}

var defaultSort = query.SortField{Field: "Id"}

func TestProjectionMap(t *testing.T) {
	pm := newTestProjection()

	if pm.Alias() != "t" {
		t.Errorf("Alias() = %q, want t", pm.Alias())
	}
	if pm.Table() != "public.transactions t" {
		t.Errorf("Table() = %q, want %q", pm.Table(), "public.transactions t")
	}
	if pm.Columns() != "t.id, t.source_id, t.amount" {
		t.Errorf("Columns() = %q", pm.Columns())
	}
	if got := pm.Column("SourceId"); got != "t.source_id" {
		t.Errorf("Column(SourceId) = %q, want t.source_id", got)
	}
	if got := pm.Column("Unknown"); got != "Unknown" {
		t.Errorf("Column(Unknown) = %q, want Unknown", got)
	}
	if !pm.Has("Amount") || pm.Has("Unknown") {
		t.Error("Has() reported wrong membership")
	}

	list := pm.ColumnList()
	list[0] = "mutated"
	if pm.ColumnList()[0] != "t.id" {
		t.Error("ColumnList() exposes internal slice")
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		in   string
		want []query.SortField
	}{
		{"", nil},
		{"Id", []query.SortField{{Field: "Id"}}},
		{"-Amount,Id", []query.SortField{{Field: "Amount", Descending: true}, {Field: "Id"}}},
		{" Id , ,-", []query.SortField{{Field: "Id"}}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := query.ParseSortFields(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSortFields(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuilder_BuildCount(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection(), defaultSort).BuildCount()

	if sql != "SELECT COUNT(*) FROM public.transactions t" {
		t.Errorf("sql = %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     string
	}{
		{"first page", 1, 20, "LIMIT 20 OFFSET 0"},
		{"third page", 3, 10, "LIMIT 10 OFFSET 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _ := query.NewBuilder(newTestProjection(), defaultSort).BuildPage(tt.page, tt.pageSize)

			if !strings.HasPrefix(sql, "SELECT t.id, t.source_id, t.amount FROM public.transactions t ORDER BY t.id ASC") {
				t.Errorf("unexpected select: %q", sql)
			}
			if !strings.HasSuffix(sql, tt.want) {
				t.Errorf("sql = %q, want suffix %q", sql, tt.want)
			}
		})
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection(), defaultSort).BuildSingle("Id", 42)

	want := "SELECT t.id, t.source_id, t.amount FROM public.transactions t WHERE t.id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != 42 {
		t.Errorf("args = %v, want [42]", args)
	}
}

func TestBuilder_BuildLimit(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection(), defaultSort).
		WhereEquals("SourceId", 7).
		WhereGreaterThan("Id", 100).
		BuildLimit(10)

	want := "SELECT t.id, t.source_id, t.amount FROM public.transactions t WHERE t.source_id = $1 AND t.id > $2 ORDER BY t.id ASC LIMIT 10"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{7, 100}) {
		t.Errorf("args = %v, want [7 100]", args)
	}
}

func TestBuilder_Build(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection(), query.SortField{Field: "Amount", Descending: true}).
		WhereEquals("SourceId", 3).
		Build()

	want := "SELECT t.id, t.source_id, t.amount FROM public.transactions t WHERE t.source_id = $1 ORDER BY t.amount DESC"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args = %v, want [3]", args)
	}
}

func TestBuilder_Where_NilIgnored(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection(), defaultSort).
		WhereEquals("SourceId", nil).
		WhereGreaterThan("Id", nil).
		BuildCount()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("sql = %q, want no WHERE", sql)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilder_OrderBy(t *testing.T) {
	tests := []struct {
		name   string
		fields []query.SortField
		want   string
	}{
		{"default", nil, "ORDER BY t.id ASC"},
		{"descending", []query.SortField{{Field: "Amount", Descending: true}}, "ORDER BY t.amount DESC"},
		{"multiple", []query.SortField{{Field: "SourceId"}, {Field: "Id", Descending: true}}, "ORDER BY t.source_id ASC, t.id DESC"},
		{"unknown dropped", []query.SortField{{Field: "id; DROP TABLE x"}}, "ORDER BY t.id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _ := query.NewBuilder(newTestProjection(), defaultSort).OrderByFields(tt.fields).BuildPage(1, 10)
			if !strings.Contains(sql, tt.want) {
				t.Errorf("sql = %q, want %q", sql, tt.want)
			}
		})
	}

	sql, _ := query.NewBuilder(newTestProjection(), defaultSort).OrderBy("", true).BuildPage(1, 10)
	if !strings.Contains(sql, "ORDER BY t.id ASC") {
		t.Errorf("empty OrderBy field should keep default sort, got %q", sql)
	}
}
