// Package cli renders one-shot search results for the search command.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cli/go-gh/v2/pkg/jsonpretty"
	"gopkg.in/yaml.v3"

	"github.com/altinukshini/portal-search/internal/model"
	"github.com/altinukshini/portal-search/internal/ops"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Result is the serialized form of a filter pass.
type Result struct {
	Query       string            `json:"query" yaml:"query"`
	Total       int               `json:"total" yaml:"total"`
	Summary     string            `json:"summary,omitempty" yaml:"summary,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	Groups      []ops.GroupResult `json:"modules" yaml:"modules"`
}

func NewResult(cat *model.Catalog, view *model.FilterView) Result {
	r := Result{
		Query:       view.Query,
		Total:       view.VisibleItemCount(),
		Suggestions: view.Suggestions,
		Groups:      ops.VisibleGroups(cat, view),
	}
	if view.Active() {
		r.Total = view.TotalCount
		r.Summary = view.Summary.Text
	}
	return r
}

// Printer writes results in one format. Colorize only affects JSON.
type Printer struct {
	Out      io.Writer
	Format   Format
	Colorize bool
}

func (p Printer) Print(r Result) error {
	switch p.Format {
	case FormatJSON:
		return p.printJSON(r)
	case FormatYAML:
		enc := yaml.NewEncoder(p.Out)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return p.printText(r)
	}
}

func (p Printer) printJSON(r Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if err := jsonpretty.Format(p.Out, bytes.NewReader(data), "  ", p.Colorize); err != nil {
		return fmt.Errorf("format json: %w", err)
	}
	return nil
}

func (p Printer) printText(r Result) error {
	var b strings.Builder
	if r.Summary != "" {
		b.WriteString(r.Summary + "\n")
		if len(r.Suggestions) > 0 {
			fmt.Fprintf(&b, "Você quis dizer: %s?\n", strings.Join(r.Suggestions, ", "))
		}
	}
	for i, g := range r.Groups {
		if i > 0 || r.Summary != "" {
			b.WriteString("\n")
		}
		if r.Summary != "" {
			fmt.Fprintf(&b, "%s (%d)\n", g.Title, g.Matches)
		} else {
			b.WriteString(g.Title + "\n")
		}
		for _, it := range g.Items {
			line := "  " + it.Name
			if it.Description != "" {
				line += " - " + it.Description
			}
			b.WriteString(line + "\n")
		}
	}
	_, err := io.WriteString(p.Out, b.String())
	return err
}
