// Package selection resolves which palette is active from a selected id and
// the light/dark mode flag.
package selection

import "github.com/pfassina/colorcraft/internal/palette"

// Catalog is the read side of the palette catalog.
type Catalog interface {
	All() []palette.Palette
}

// State is the current selection. SelectedID names either a top-level
// palette or a dark variant.
type State struct {
	SelectedID string
	DarkMode   bool
}

// ResolveActive returns the palette selectedID names, which may be a dark
// variant. Unknown ids resolve to the first palette.
func ResolveActive(c Catalog, selectedID string) palette.Palette {
	all := c.All()
	for _, p := range all {
		if p.ID == selectedID {
			return p
		}
		if p.DarkVariant != nil && p.DarkVariant.ID == selectedID {
			return *p.DarkVariant
		}
	}
	if len(all) == 0 {
		return palette.Palette{}
	}
	return all[0]
}

// Owner returns the top-level palette that is, or owns, id.
func Owner(c Catalog, id string) (palette.Palette, bool) {
	for _, p := range c.All() {
		if p.Owns(id) {
			return p, true
		}
	}
	return palette.Palette{}, false
}

// Select moves the selection to paletteID, which may name a palette or its
// dark variant. In dark mode the dark variant is chosen when one exists.
// Unknown ids leave the state unchanged.
func Select(c Catalog, st State, paletteID string) State {
	base, ok := Owner(c, paletteID)
	if !ok {
		return st
	}
	st.SelectedID = pick(base, st.DarkMode)
	return st
}

// ToggleMode switches the mode and moves the selection between the current
// palette's light and dark identities. Without a dark variant the light
// palette stays selected.
func ToggleMode(c Catalog, st State, dark bool) State {
	st.DarkMode = dark
	if base, ok := Owner(c, st.SelectedID); ok {
		st.SelectedID = pick(base, dark)
	}
	return st
}

// IsSelected reports whether p, or its dark variant, is the selection.
func IsSelected(p palette.Palette, st State) bool {
	return p.Owns(st.SelectedID)
}

func pick(base palette.Palette, dark bool) string {
	if dark && base.DarkVariant != nil {
		return base.DarkVariant.ID
	}
	return base.ID
}
