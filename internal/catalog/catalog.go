// Package catalog holds the ordered, in-memory collection of palettes.
package catalog

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/pfassina/colorcraft/internal/palette"
)

var (
	ErrEmpty      = errors.New("catalog needs at least one builtin palette")
	ErrLastRecord = errors.New("cannot remove the last palette")
	ErrNotFound   = errors.New("palette not found")
	ErrIDTaken    = errors.New("palette id already in use")
)

// Store persists the custom subset of the catalog. Implementations must
// swallow their own failures; the catalog never waits on persistence.
type Store interface {
	Load() []palette.Palette
	Save(palettes []palette.Palette)
}

// Catalog is an ordered list of palettes, unique by id and never empty.
type Catalog struct {
	palettes []palette.Palette
	store    Store
	logger   zerolog.Logger
}

// Initialize builds a catalog from the builtin palettes followed by whatever
// store returns. A nil store keeps the catalog in memory only.
//
// Builtins win id collisions; the colliding persisted palette is dropped.
func Initialize(builtins []palette.Palette, store Store, logger zerolog.Logger) (*Catalog, error) {
	if len(builtins) == 0 {
		return nil, ErrEmpty
	}

	c := &Catalog{
		palettes: make([]palette.Palette, 0, len(builtins)),
		store:    store,
		logger:   logger,
	}
	for _, p := range builtins {
		c.palettes = append(c.palettes, p.WithOrigin(palette.OriginBuiltin).Normalize())
	}

	if store == nil {
		return c, nil
	}

	for _, p := range store.Load() {
		if p.ID == "" {
			logger.Warn().Msg("skipping persisted palette without id")
			continue
		}
		if existing, ok := c.Conflict(p.Normalize(), ""); ok {
			logger.Warn().
				Str("id", p.ID).
				Str("existing", existing.ID).
				Str("existing_origin", string(existing.Origin)).
				Msg("skipping persisted palette with duplicate id")
			continue
		}
		c.palettes = append(c.palettes, p.WithOrigin(palette.OriginCustom).Normalize())
	}

	return c, nil
}

// Len returns the number of top-level palettes.
func (c *Catalog) Len() int {
	return len(c.palettes)
}

// All returns a copy of every top-level palette, in order.
func (c *Catalog) All() []palette.Palette {
	out := make([]palette.Palette, len(c.palettes))
	for i, p := range c.palettes {
		out[i] = p.Clone()
	}
	return out
}

// First returns the first palette.
func (c *Catalog) First() palette.Palette {
	return c.palettes[0].Clone()
}

// Get looks up a top-level palette by id.
func (c *Catalog) Get(id string) (palette.Palette, bool) {
	if i := c.index(id); i >= 0 {
		return c.palettes[i].Clone(), true
	}
	return palette.Palette{}, false
}

// Owner returns the top-level palette that is, or owns, id.
func (c *Catalog) Owner(id string) (palette.Palette, bool) {
	for _, p := range c.palettes {
		if p.Owns(id) {
			return p.Clone(), true
		}
	}
	return palette.Palette{}, false
}

// Contains reports whether id names any palette or dark variant.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.Owner(id)
	return ok
}

// Upsert replaces the palette with the same id in place, or appends it.
func (c *Catalog) Upsert(p palette.Palette) {
	p = p.Normalize()
	if i := c.index(p.ID); i >= 0 {
		c.palettes[i] = p
	} else {
		c.palettes = append(c.palettes, p)
	}
	c.sync()
}

// Replace puts p at the position of oldID. It returns ErrIDTaken, leaving
// the catalog unchanged, when another palette already uses p's id or dark
// id. Falls back to Upsert when oldID is unknown.
func (c *Catalog) Replace(oldID string, p palette.Palette) error {
	at := c.index(oldID)
	if at < 0 || oldID == p.ID {
		c.Upsert(p)
		return nil
	}

	p = p.Normalize()
	if _, ok := c.Conflict(p, oldID); ok {
		return ErrIDTaken
	}
	c.palettes[at] = p
	c.sync()
	return nil
}

// Conflict returns the palette, other than the one with id self, that
// already owns p's id or its dark variant's id. Top-level and dark variant
// ids share one namespace.
func (c *Catalog) Conflict(p palette.Palette, self string) (palette.Palette, bool) {
	ids := []string{p.ID}
	if p.DarkVariant != nil {
		ids = append(ids, p.DarkVariant.ID)
	}
	for _, id := range ids {
		if owner, ok := c.Owner(id); ok && owner.ID != self {
			return owner, true
		}
	}
	return palette.Palette{}, false
}

// Remove deletes the palette with the given id. It refuses with
// ErrLastRecord when only one palette is left.
func (c *Catalog) Remove(id string) error {
	if len(c.palettes) <= 1 {
		return ErrLastRecord
	}
	i := c.index(id)
	if i < 0 {
		return ErrNotFound
	}
	c.palettes = append(c.palettes[:i], c.palettes[i+1:]...)
	c.sync()
	return nil
}

// Custom returns the user-created palettes, in order.
func (c *Catalog) Custom() []palette.Palette {
	var out []palette.Palette
	for _, p := range c.palettes {
		if p.IsCustom() {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (c *Catalog) index(id string) int {
	for i, p := range c.palettes {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) sync() {
	if c.store == nil {
		return
	}
	c.store.Save(c.All())
}
