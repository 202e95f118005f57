package ui

import "github.com/altinukshini/portal-search/internal/model"

// DebounceFiredMsg is posted by the debounce timer. Token identifies the
// input event that scheduled it.
type DebounceFiredMsg struct {
	Token uint64
}

type LinkOpenedMsg struct {
	Item model.Item
	Err  error
}

type LinkCopiedMsg struct {
	Item model.Item
	Err  error
}

// StatusClearMsg restores the default status text unless a newer status
// replaced it in the meantime.
type StatusClearMsg struct {
	ID int
}
