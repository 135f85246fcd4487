// Package palette defines the palette record shared by the catalog, the
// persistence adapter and the editor session.
package palette

import (
	"fmt"
	"strings"
	"time"
)

// CustomPrefix marks ids generated for user-created palettes.
const CustomPrefix = "custom-"

// Origin records where a palette came from.
type Origin string

const (
	OriginBuiltin Origin = "builtin"
	OriginCustom  Origin = "custom"
)

// Palette is one named set of semantic colors, optionally owning a dark-mode
// counterpart. The dark variant never owns a variant of its own.
type Palette struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Colors      Colors   `json:"colors" yaml:"colors"`
	DarkVariant *Palette `json:"darkVariant,omitempty" yaml:"dark_variant,omitempty"`

	// Origin is not persisted; the store only ever holds custom palettes.
	Origin Origin `json:"-" yaml:"-"`
}

// IsCustom reports whether the palette was created by the user.
func (p Palette) IsCustom() bool {
	return p.Origin == OriginCustom
}

// HasDark reports whether the palette owns a dark variant.
func (p Palette) HasDark() bool {
	return p.DarkVariant != nil
}

// Owns reports whether id names this palette or its dark variant.
func (p Palette) Owns(id string) bool {
	if p.ID == id {
		return true
	}
	return p.DarkVariant != nil && p.DarkVariant.ID == id
}

// Clone returns a deep copy.
func (p Palette) Clone() Palette {
	c := p
	if p.DarkVariant != nil {
		d := *p.DarkVariant
		d.DarkVariant = nil
		c.DarkVariant = &d
	}
	return c
}

// Normalize enforces the ownership rules: a dark variant carries no variant
// of its own, shares its owner's origin, and never reuses its owner's id.
func (p Palette) Normalize() Palette {
	n := p.Clone()
	if n.DarkVariant == nil {
		return n
	}
	n.DarkVariant.DarkVariant = nil
	n.DarkVariant.Origin = n.Origin
	if n.DarkVariant.ID == n.ID {
		n.DarkVariant.ID = DarkID(n.ID)
	}
	return n
}

// WithOrigin returns a copy tagged with origin, variant included.
func (p Palette) WithOrigin(o Origin) Palette {
	n := p.Clone()
	n.Origin = o
	if n.DarkVariant != nil {
		n.DarkVariant.Origin = o
	}
	return n
}

// DarkName derives the dark variant's display name.
func DarkName(name string) string { return name + " Dark" }

// DarkID derives the dark variant's id.
func DarkID(id string) string { return id + "-dark" }

// DarkDescription derives the dark variant's description.
func DarkDescription(desc string) string { return desc + " - Dark mode" }

// DeriveDark copies the light palette's identity onto dark, suffixed.
func DeriveDark(light, dark Palette) Palette {
	dark.Name = DarkName(light.Name)
	dark.ID = DarkID(light.ID)
	dark.Description = DarkDescription(light.Description)
	return dark
}

// NewCustomID returns a time-based id for a new custom palette.
func NewCustomID(t time.Time) string {
	return fmt.Sprintf("%s%d", CustomPrefix, t.UnixMilli())
}

// CSS renders the colors as CSS custom properties on :root.
func (p Palette) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, r := range Roles {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", r, p.Colors.Get(r))
	}
	b.WriteString("}\n")
	return b.String()
}
