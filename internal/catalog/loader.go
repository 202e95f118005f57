// Package catalog loads the static listing searched by the filter. Catalogs
// come from YAML or JSON files, or from a rendered portal page whose markup
// marks modules with .modulo[data-module] and subjects with .materia-link.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"gopkg.in/yaml.v3"

	"github.com/altinukshini/portal-search/internal/model"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// FormatFromPath picks the catalog format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q (want .yaml, .json or .html)", filepath.Ext(path))
	}
}

func Load(path string) (*model.Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	cat, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

func Parse(r io.Reader, format Format) (*model.Catalog, error) {
	var (
		cat *model.Catalog
		err error
	)
	switch format {
	case FormatYAML:
		cat = &model.Catalog{}
		err = yaml.NewDecoder(r).Decode(cat)
	case FormatJSON:
		cat = &model.Catalog{}
		err = json.NewDecoder(r).Decode(cat)
	case FormatHTML:
		cat, err = ParseHTML(r)
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
	if err == io.EOF {
		return nil, fmt.Errorf("catalog is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s catalog: %w", format, err)
	}
	if len(cat.Groups) == 0 {
		return nil, fmt.Errorf("catalog has no modules")
	}
	cat.Finalize()
	return cat, nil
}

// ParseHTML extracts modules and subjects from a portal page.
func ParseHTML(r io.Reader) (*model.Catalog, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	cat := &model.Catalog{Name: strings.TrimSpace(doc.Find("title").First().Text())}
	doc.Find(".modulo").Each(func(_ int, s *goquery.Selection) {
		g := model.Group{
			ID:    s.AttrOr("data-module", ""),
			Title: text(s.Find("h1, h2, h3, h4, .modulo-title").First()),
		}
		s.Find(".materia-link").Each(func(_ int, link *goquery.Selection) {
			g.Items = append(g.Items, model.Item{
				ID:          link.AttrOr("id", ""),
				Name:        text(link.Find(".materia-name").First()),
				Description: text(link.Find(".materia-desc").First()),
				Title:       link.AttrOr("data-title", ""),
				Alias:       link.AttrOr("data-search", ""),
				Link:        link.AttrOr("href", ""),
			})
		})
		cat.Groups = append(cat.Groups, g)
	})
	return cat, nil
}

func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
