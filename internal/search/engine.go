package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/altinukshini/portal-search/internal/model"
)

const defaultSuggestLimit = 3

type Engine struct {
	// SuggestLimit caps the "did you mean" hints attached to empty results.
	// Zero disables suggestions.
	SuggestLimit int
}

func New() *Engine {
	return &Engine{SuggestLimit: defaultSuggestLimit}
}

// Apply runs one filter pass over the catalog and returns the resulting view.
// The catalog is not modified.
func (e *Engine) Apply(cat *model.Catalog, query string) *model.FilterView {
	normalized := Normalize(query)
	view := &model.FilterView{
		Query:       query,
		Normalized:  normalized,
		Items:       make([]model.ItemState, cat.ItemCount()),
		Groups:      make([]model.GroupState, len(cat.Groups)),
		GroupCounts: make(map[string]int),
	}
	for i := range view.Items {
		view.Items[i] = model.ItemState{Visible: true}
	}
	for i := range view.Groups {
		view.Groups[i] = model.GroupState{Visible: true}
	}

	if strings.TrimSpace(normalized) == "" {
		return view
	}

	idx := 0
	for _, g := range cat.Groups {
		for _, it := range g.Items {
			if strings.Contains(Searchable(it), normalized) {
				view.Items[idx].Highlighted = true
				view.GroupCounts[g.ID]++
				view.TotalCount++
			} else {
				view.Items[idx].Visible = false
			}
			idx++
		}
	}

	for gi, g := range cat.Groups {
		count := view.GroupCounts[g.ID]
		view.Groups[gi].Matches = count
		if count == 0 {
			view.Groups[gi].Visible = false
		}
	}

	view.Summary = model.Summary{Visible: true, Text: SummaryText(view.TotalCount)}
	if view.TotalCount == 0 && e.SuggestLimit > 0 {
		view.Suggestions = e.Suggest(cat, query, e.SuggestLimit)
	}
	return view
}

// Searchable builds the normalized text an item is matched against.
func Searchable(it model.Item) string {
	return Normalize(it.Title + " " + it.Alias + " " + it.Name + " " + it.Description)
}

// SummaryText renders the result count message shown in the summary panel.
func SummaryText(total int) string {
	switch {
	case total == 0:
		return "Nenhum resultado encontrado"
	case total == 1:
		return "1 resultado encontrado"
	default:
		return fmt.Sprintf("%d resultados encontrados", total)
	}
}

// Suggest ranks item names by fuzzy distance to the query. Names are
// deduplicated and returned closest first.
func (e *Engine) Suggest(cat *model.Catalog, query string, limit int) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || limit <= 0 {
		return nil
	}
	items := cat.Items()
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	seen := make(map[string]struct{}, limit)
	var out []string
	for _, r := range ranks {
		if _, ok := seen[r.Target]; ok {
			continue
		}
		seen[r.Target] = struct{}{}
		out = append(out, r.Target)
		if len(out) == limit {
			break
		}
	}
	return out
}
