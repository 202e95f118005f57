package ops

import "github.com/altinukshini/portal-search/internal/model"

// GroupResult is a group that survived a filter pass, with its visible items.
type GroupResult struct {
	ID      string       `json:"module" yaml:"module"`
	Title   string       `json:"title" yaml:"title"`
	Matches int          `json:"matches" yaml:"matches"`
	Items   []ItemResult `json:"items" yaml:"items"`
}

type ItemResult struct {
	Index       int    `json:"-" yaml:"-"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
	Highlighted bool   `json:"highlighted" yaml:"highlighted"`
}

// VisibleGroups applies view to cat, returning only visible groups and items
// in document order. Matches counts the group's own highlighted items; groups
// sharing a module id share visibility but not this count.
func VisibleGroups(cat *model.Catalog, view *model.FilterView) []GroupResult {
	var out []GroupResult
	idx := 0
	for gi, g := range cat.Groups {
		if !view.Groups[gi].Visible {
			idx += len(g.Items)
			continue
		}
		res := GroupResult{ID: g.ID, Title: g.DisplayTitle()}
		for _, it := range g.Items {
			st := view.Items[idx]
			if st.Highlighted {
				res.Matches++
			}
			if st.Visible {
				res.Items = append(res.Items, ItemResult{
					Index:       idx,
					Name:        it.Name,
					Description: it.Description,
					Link:        it.Link,
					Highlighted: st.Highlighted,
				})
			}
			idx++
		}
		out = append(out, res)
	}
	return out
}
