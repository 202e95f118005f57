package ops

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cli/go-gh/v2/pkg/browser"

	"github.com/altinukshini/portal-search/internal/model"
)

var ErrNoLink = errors.New("item has no link")

type browserLauncher interface {
	Browse(url string) error
}

// Links opens and copies item links. Relative links are resolved against
// the directory of the catalog they were loaded from.
type Links struct {
	base    string
	browser browserLauncher
	copy    func(string) error
}

// NewLinks uses launcher (empty for the system default) to open links.
func NewLinks(catalogPath, launcher string, stdout, stderr io.Writer) *Links {
	return &Links{
		base:    filepath.Dir(catalogPath),
		browser: browser.New(launcher, stdout, stderr),
		copy:    clipboard.WriteAll,
	}
}

// Resolve returns the absolute URL or file path for an item link.
func (l *Links) Resolve(item model.Item) (string, error) {
	link := strings.TrimSpace(item.Link)
	if link == "" {
		return "", ErrNoLink
	}
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("parse link %q: %w", link, err)
	}
	if u.IsAbs() || l.base == "" {
		return link, nil
	}
	abs, err := filepath.Abs(filepath.Join(l.base, filepath.FromSlash(u.Path)))
	if err != nil {
		return "", err
	}
	return abs, nil
}

func (l *Links) Open(item model.Item) error {
	target, err := l.Resolve(item)
	if err != nil {
		return err
	}
	if err := l.browser.Browse(target); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}

func (l *Links) Copy(item model.Item) error {
	target, err := l.Resolve(item)
	if err != nil {
		return err
	}
	if err := l.copy(target); err != nil {
		return fmt.Errorf("copy link: %w", err)
	}
	return nil
}
