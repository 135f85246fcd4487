package catalog

import (
	"strings"

	"github.com/pfassina/colorcraft/internal/palette"
)

// DefaultPerPage is the selector page size.
const DefaultPerPage = 6

// Page is one page of search results.
type Page struct {
	Items   []palette.Palette
	Total   int // matches across all pages
	Page    int // zero-based, clamped into range
	Pages   int
	PerPage int
}

// Search returns palettes whose name or description contains query,
// case-insensitively. An empty query matches everything.
func (c *Catalog) Search(query string) []palette.Palette {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []palette.Palette
	for _, p := range c.palettes {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Browse searches and slices the results into pages of perPage.
func (c *Catalog) Browse(query string, page, perPage int) Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	matches := c.Search(query)

	pages := (len(matches) + perPage - 1) / perPage
	if page >= pages {
		page = pages - 1
	}
	if page < 0 {
		page = 0
	}

	start := page * perPage
	end := start + perPage
	if end > len(matches) {
		end = len(matches)
	}
	if start > end {
		start = end
	}

	return Page{
		Items:   matches[start:end],
		Total:   len(matches),
		Page:    page,
		Pages:   pages,
		PerPage: perPage,
	}
}
