package listview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/portal-search/internal/model"
	"github.com/altinukshini/portal-search/internal/search"
)

func testCatalog() *model.Catalog {
	cat := &model.Catalog{Groups: []model.Group{
		{ID: "G1", Title: "Módulo 1", Items: []model.Item{
			{Name: "Matemática Básica", Description: "Frações"},
			{Name: "História"},
		}},
		{ID: "G2", Title: "Módulo 2", Items: []model.Item{{Name: "Química"}}},
	}}
	cat.Finalize()
	return cat
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigation(t *testing.T) {
	cat := testCatalog()
	m := New(cat, search.New().Apply(cat, ""))
	m.SetSize(60, 20)

	if m.VisibleCount() != 3 {
		t.Fatalf("VisibleCount = %d, want 3", m.VisibleCount())
	}

	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(keyRunes("j"))
	if m.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2 (clamped)", m.Cursor())
	}
	it, ok := m.SelectedItem()
	if !ok || it.Name != "Química" {
		t.Errorf("SelectedItem = %v, %v", it.Name, ok)
	}

	m, _ = m.Update(keyRunes("g"))
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d after g, want 0", m.Cursor())
	}
	m, _ = m.Update(keyRunes("G"))
	if m.Cursor() != 2 {
		t.Errorf("cursor = %d after G, want 2", m.Cursor())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor() != 1 {
		t.Errorf("cursor = %d after up, want 1", m.Cursor())
	}
}

func TestSetViewKeepsSelection(t *testing.T) {
	cat := testCatalog()
	engine := search.New()
	m := New(cat, engine.Apply(cat, ""))
	m.SetSize(60, 20)
	m, _ = m.Update(keyRunes("G"))

	m.SetView(engine.Apply(cat, "ica"))
	if it, _ := m.SelectedItem(); it.Name != "Química" {
		t.Errorf("selection moved to %q, want Química", it.Name)
	}

	m.SetView(engine.Apply(cat, "hist"))
	if it, _ := m.SelectedItem(); it.Name != "História" {
		t.Errorf("selection = %q, want first visible item", it.Name)
	}

	m.SetView(engine.Apply(cat, "zzz"))
	if _, ok := m.SelectedItem(); ok {
		t.Error("no item should be selected without results")
	}
}

func TestViewRendersFilterState(t *testing.T) {
	cat := testCatalog()
	engine := search.New()
	m := New(cat, engine.Apply(cat, ""))
	m.SetSize(60, 20)

	out := m.View()
	if strings.Contains(out, "resultado") {
		t.Errorf("summary rendered without a query:\n%s", out)
	}
	if !strings.Contains(out, "Módulo 1") || !strings.Contains(out, "Módulo 2") {
		t.Errorf("groups missing:\n%s", out)
	}

	m.SetView(engine.Apply(cat, "fra"))
	out = m.View()
	if !strings.Contains(out, "1 resultado encontrado") {
		t.Errorf("summary missing:\n%s", out)
	}
	if !strings.Contains(out, "Módulo 1 (1)") {
		t.Errorf("group count missing:\n%s", out)
	}
	if strings.Contains(out, "Módulo 2") || strings.Contains(out, "História") {
		t.Errorf("hidden entries rendered:\n%s", out)
	}
}

func TestViewRendersSuggestions(t *testing.T) {
	cat := testCatalog()
	m := New(cat, search.New().Apply(cat, "qmc"))
	m.SetSize(60, 20)

	out := m.View()
	if !strings.Contains(out, "Nenhum resultado encontrado") {
		t.Errorf("summary missing:\n%s", out)
	}
	if !strings.Contains(out, "Você quis dizer: Química?") {
		t.Errorf("suggestion missing:\n%s", out)
	}
}

func TestUpdateBeforeSize(t *testing.T) {
	cat := testCatalog()
	m := New(cat, search.New().Apply(cat, ""))
	m, _ = m.Update(keyRunes("j"))
	if m.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor())
	}
	if m.View() != "" {
		t.Errorf("View before SetSize = %q, want empty", m.View())
	}
}
