package palette

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML []byte

// LoadBuiltin returns the palettes bundled with colorcraft, in display order.
func LoadBuiltin() ([]Palette, error) {
	var palettes []Palette
	if err := yaml.Unmarshal(builtinYAML, &palettes); err != nil {
		return nil, fmt.Errorf("parse builtin palettes: %w", err)
	}
	if len(palettes) == 0 {
		return nil, fmt.Errorf("no builtin palettes")
	}

	seen := make(map[string]bool, len(palettes))
	for i, p := range palettes {
		if p.ID == "" {
			return nil, fmt.Errorf("builtin palette %d has no id", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate builtin palette id %q", p.ID)
		}
		seen[p.ID] = true
		palettes[i] = p.WithOrigin(OriginBuiltin).Normalize()
	}
	return palettes, nil
}
