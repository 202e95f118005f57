package model

type ItemState struct {
	Visible     bool
	Highlighted bool
}

type GroupState struct {
	Visible bool
	Matches int
}

// Summary is the results panel shown above the listing.
type Summary struct {
	Visible bool
	Text    string
}

// FilterView is the visibility and highlight state produced by one filter
// pass. Items is indexed by flat item index, Groups by group index.
type FilterView struct {
	Query       string
	Normalized  string
	Items       []ItemState
	Groups      []GroupState
	GroupCounts map[string]int // module id -> match count
	TotalCount  int
	Summary     Summary
	Suggestions []string
}

// Active reports whether the view came from a non-empty query.
func (v *FilterView) Active() bool {
	return v != nil && v.Summary.Visible
}

// VisibleItemCount returns how many items the view leaves on screen.
func (v *FilterView) VisibleItemCount() int {
	if v == nil {
		return 0
	}
	n := 0
	for _, s := range v.Items {
		if s.Visible {
			n++
		}
	}
	return n
}
