package search

import (
	"reflect"
	"strings"
	"testing"

	"github.com/altinukshini/portal-search/internal/model"
)

func sampleCatalog() *model.Catalog {
	cat := &model.Catalog{
		Groups: []model.Group{
			{ID: "G1", Title: "Módulo 1", Items: []model.Item{
				{Name: "Matemática Básica", Description: "Frações"},
				{Name: "História"},
			}},
			{ID: "G2", Title: "Módulo 2", Items: []model.Item{
				{Name: "Química"},
			}},
		},
	}
	cat.Finalize()
	return cat
}

func TestApplyExample(t *testing.T) {
	engine := New()
	view := engine.Apply(sampleCatalog(), "fra")

	want := []model.ItemState{
		{Visible: true, Highlighted: true},
		{Visible: false},
		{Visible: false},
	}
	if !reflect.DeepEqual(view.Items, want) {
		t.Errorf("Items = %+v, want %+v", view.Items, want)
	}
	if !view.Groups[0].Visible || view.Groups[0].Matches != 1 {
		t.Errorf("G1 = %+v, want visible with 1 match", view.Groups[0])
	}
	if view.Groups[1].Visible {
		t.Error("G2 should be hidden")
	}
	if view.TotalCount != 1 {
		t.Errorf("TotalCount = %d, want 1", view.TotalCount)
	}
	if !view.Summary.Visible || view.Summary.Text != "1 resultado encontrado" {
		t.Errorf("Summary = %+v", view.Summary)
	}
}

func TestApplyEmptyQuery(t *testing.T) {
	engine := New()
	for _, q := range []string{"", "   ", "\t\n"} {
		view := engine.Apply(sampleCatalog(), q)
		for i, s := range view.Items {
			if !s.Visible || s.Highlighted {
				t.Errorf("query %q: item %d = %+v, want visible and unhighlighted", q, i, s)
			}
		}
		for i, g := range view.Groups {
			if !g.Visible {
				t.Errorf("query %q: group %d hidden", q, i)
			}
		}
		if view.Summary.Visible {
			t.Errorf("query %q: summary should be hidden", q)
		}
		if view.Active() {
			t.Errorf("query %q: view should not be active", q)
		}
	}
}

func TestApplyIgnoresDiacriticsAndCase(t *testing.T) {
	cat := &model.Catalog{Groups: []model.Group{
		{ID: "m", Items: []model.Item{{Name: "Matemática"}, {Name: "álgebra linear"}}},
	}}
	cat.Finalize()
	engine := New()

	tests := []struct {
		query string
		want  int
	}{
		{"matematica", 0},
		{"MATEMÁTICA", 0},
		{"ALGEBRA", 1},
		{"Álgebra", 1},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			view := engine.Apply(cat, tt.query)
			if view.TotalCount != 1 {
				t.Fatalf("TotalCount = %d, want 1", view.TotalCount)
			}
			if !view.Items[tt.want].Highlighted {
				t.Errorf("item %d not highlighted: %+v", tt.want, view.Items)
			}
		})
	}
}

func TestApplyMatchesAllAttributes(t *testing.T) {
	cat := &model.Catalog{Groups: []model.Group{
		{ID: "m", Items: []model.Item{
			{Name: "Física", Title: "Mecânica clássica"},
			{Name: "Biologia", Alias: "genetica dna celula"},
			{Name: "Geografia", Description: "Cartografia"},
		}},
	}}
	cat.Finalize()
	engine := New()

	tests := []struct {
		query string
		item  int
	}{
		{"mecanica", 0},
		{"dna", 1},
		{"cartograf", 2},
	}
	for _, tt := range tests {
		view := engine.Apply(cat, tt.query)
		for i, s := range view.Items {
			if (i == tt.item) != s.Highlighted {
				t.Errorf("query %q: item %d highlighted=%v", tt.query, i, s.Highlighted)
			}
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	engine := New()
	cat := sampleCatalog()
	for _, q := range []string{"", "a", "fra", "xyz", "ica"} {
		first := engine.Apply(cat, q)
		second := engine.Apply(cat, q)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("query %q: second pass differs\nfirst:  %+v\nsecond: %+v", q, first, second)
		}
	}
}

func TestApplyInvariants(t *testing.T) {
	engine := New()
	cat := sampleCatalog()
	for _, q := range []string{"a", "ica", "hist", "zzz", "Q"} {
		view := engine.Apply(cat, q)
		idx := 0
		for gi, g := range cat.Groups {
			anyVisible := false
			for _, it := range g.Items {
				s := view.Items[idx]
				if s.Highlighted && !s.Visible {
					t.Errorf("query %q: item %q hidden and highlighted", q, it.Name)
				}
				if want := containsNormalized(it, q); s.Highlighted != want {
					t.Errorf("query %q: item %q highlighted=%v, want %v", q, it.Name, s.Highlighted, want)
				}
				anyVisible = anyVisible || s.Visible
				idx++
			}
			if view.Groups[gi].Visible != anyVisible {
				t.Errorf("query %q: group %s visible=%v, want %v", q, g.ID, view.Groups[gi].Visible, anyVisible)
			}
		}
	}
}

func containsNormalized(it model.Item, q string) bool {
	n := Normalize(q)
	return strings.TrimSpace(n) != "" && strings.Contains(Searchable(it), n)
}

func TestApplySharedModuleIDsShareCounts(t *testing.T) {
	cat := &model.Catalog{Groups: []model.Group{
		{ID: "dup", Items: []model.Item{{Name: "Arte"}}},
		{ID: "dup", Items: []model.Item{{Name: "Música"}}},
	}}
	cat.Finalize()

	view := New().Apply(cat, "arte")
	if !view.Groups[0].Visible || !view.Groups[1].Visible {
		t.Errorf("groups sharing a module id should share visibility: %+v", view.Groups)
	}
	if view.Items[1].Visible {
		t.Error("non-matching item should still be hidden")
	}
}

func TestSummaryText(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{0, "Nenhum resultado encontrado"},
		{1, "1 resultado encontrado"},
		{2, "2 resultados encontrados"},
		{17, "17 resultados encontrados"},
	}
	for _, tt := range tests {
		if got := SummaryText(tt.total); got != tt.want {
			t.Errorf("SummaryText(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestApplyNoResultsSuggests(t *testing.T) {
	engine := New()
	view := engine.Apply(sampleCatalog(), "qmc")

	if view.TotalCount != 0 {
		t.Fatalf("TotalCount = %d, want 0", view.TotalCount)
	}
	if view.Summary.Text != "Nenhum resultado encontrado" || !view.Summary.Visible {
		t.Errorf("Summary = %+v", view.Summary)
	}
	if len(view.Suggestions) != 1 || view.Suggestions[0] != "Química" {
		t.Errorf("Suggestions = %v, want [Química]", view.Suggestions)
	}
	for i, s := range view.Items {
		if s.Visible || s.Highlighted {
			t.Errorf("item %d = %+v, suggestions must not change visibility", i, s)
		}
	}
}

func TestSuggestDisabled(t *testing.T) {
	engine := &Engine{}
	view := engine.Apply(sampleCatalog(), "qmc")
	if view.Suggestions != nil {
		t.Errorf("Suggestions = %v, want none", view.Suggestions)
	}
}
