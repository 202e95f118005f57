package model

import "fmt"

// Item is a single searchable entry of the listing, e.g. a subject link.
type Item struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Alias       string `json:"search,omitempty" yaml:"search,omitempty"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
	Group       string `json:"-" yaml:"-"`
}

// Group is a named collection of items sharing a module identifier.
type Group struct {
	ID    string `json:"module" yaml:"module"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Items []Item `json:"items" yaml:"items"`
}

// DisplayTitle falls back to the module identifier when no title is set.
func (g Group) DisplayTitle() string {
	if g.Title != "" {
		return g.Title
	}
	return g.ID
}

type Catalog struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Groups []Group `json:"modules" yaml:"modules"`
}

// Finalize links every item to its owning group and assigns positional IDs
// to items that do not carry one.
func (c *Catalog) Finalize() {
	for gi := range c.Groups {
		g := &c.Groups[gi]
		for ii := range g.Items {
			it := &g.Items[ii]
			it.Group = g.ID
			if it.ID == "" {
				it.ID = fmt.Sprintf("%s/%d", g.ID, ii)
			}
		}
	}
}

// ItemCount returns the number of items across all groups.
func (c *Catalog) ItemCount() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g.Items)
	}
	return n
}

// Items flattens the catalog in document order. The position of an item in
// the returned slice is its flat index, used by FilterView.Items.
func (c *Catalog) Items() []Item {
	items := make([]Item, 0, c.ItemCount())
	for _, g := range c.Groups {
		items = append(items, g.Items...)
	}
	return items
}
