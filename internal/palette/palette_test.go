package palette

import (
	"strings"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette(id string) Palette {
	return Palette{ID: id, Name: "Test " + id, Description: "desc", Colors: DefaultLight(), Origin: OriginCustom}
}

func TestColors_GetSet(t *testing.T) {
	var c Colors
	for i, r := range Roles {
		require.True(t, c.Set(r, strings.Repeat("a", i+1)))
	}
	for i, r := range Roles {
		assert.Equal(t, strings.Repeat("a", i+1), c.Get(r), "role %s", r)
	}

	assert.False(t, c.Set(Role("chartreuse"), "#00ff00"))
	assert.Equal(t, "", c.Get(Role("chartreuse")))
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("surface")
	require.True(t, ok)
	assert.Equal(t, RoleSurface, r)

	_, ok = ParseRole("Surface")
	assert.False(t, ok)
}

func TestRoles_Complete(t *testing.T) {
	assert.Len(t, Roles, 14)
	seen := map[Role]bool{}
	for _, r := range Roles {
		assert.False(t, seen[r], "duplicate role %s", r)
		seen[r] = true
	}
}

func TestOwns(t *testing.T) {
	p := testPalette("p2")
	dark := testPalette("p2-dark")
	p.DarkVariant = &dark

	assert.True(t, p.Owns("p2"))
	assert.True(t, p.Owns("p2-dark"))
	assert.False(t, p.Owns("p1"))
	assert.False(t, testPalette("p1").Owns("p1-dark"))
}

func TestClone_IsDeep(t *testing.T) {
	p := testPalette("p")
	dark := testPalette("p-dark")
	p.DarkVariant = &dark

	c := p.Clone()
	c.DarkVariant.Name = "changed"
	c.Colors.Primary = "#000000"

	assert.Equal(t, "Test p-dark", p.DarkVariant.Name)
	assert.Equal(t, DefaultLight().Primary, p.Colors.Primary)
}

func TestNormalize(t *testing.T) {
	t.Run("strips nested variant", func(t *testing.T) {
		p := testPalette("p")
		inner := testPalette("p-dark-dark")
		dark := testPalette("p-dark")
		dark.DarkVariant = &inner
		p.DarkVariant = &dark

		n := p.Normalize()
		require.NotNil(t, n.DarkVariant)
		assert.Nil(t, n.DarkVariant.DarkVariant)
		assert.NotNil(t, p.DarkVariant.DarkVariant, "input must not be mutated")
	})

	t.Run("rederives self-referencing variant id", func(t *testing.T) {
		p := testPalette("p")
		dark := testPalette("p")
		p.DarkVariant = &dark

		n := p.Normalize()
		assert.Equal(t, "p-dark", n.DarkVariant.ID)
	})

	t.Run("variant inherits origin", func(t *testing.T) {
		p := testPalette("p")
		dark := testPalette("p-dark")
		dark.Origin = OriginBuiltin
		p.DarkVariant = &dark

		assert.Equal(t, OriginCustom, p.Normalize().DarkVariant.Origin)
	})
}

func TestDeriveDark(t *testing.T) {
	light := Palette{ID: "custom-5", Name: "Sunset", Description: "Warm tones"}
	dark := DeriveDark(light, Palette{Colors: DefaultDark()})

	assert.Equal(t, "custom-5-dark", dark.ID)
	assert.Equal(t, "Sunset Dark", dark.Name)
	assert.Equal(t, "Warm tones - Dark mode", dark.Description)
	assert.Equal(t, DefaultDark(), dark.Colors)
}

func TestNewCustomID(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	assert.Equal(t, "custom-1700000000123", NewCustomID(ts))
}

func TestCSS(t *testing.T) {
	p := testPalette("p")
	css := p.CSS()

	lines := strings.Split(strings.TrimSpace(css), "\n")
	require.Len(t, lines, len(Roles)+2)
	assert.Equal(t, ":root {", lines[0])
	assert.Equal(t, "  --color-primary: #3B82F6;", lines[1])
	assert.Equal(t, "  --color-info: #3B82F6;", lines[len(lines)-2])
	assert.Equal(t, "}", lines[len(lines)-1])
}

func TestLoadBuiltin(t *testing.T) {
	palettes, err := LoadBuiltin()
	require.NoError(t, err)
	require.NotEmpty(t, palettes)

	ids := map[string]bool{}
	for _, p := range palettes {
		assert.Equal(t, OriginBuiltin, p.Origin, p.ID)
		assert.False(t, strings.HasPrefix(p.ID, CustomPrefix), p.ID)
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true

		checkColors(t, p)
		if p.DarkVariant != nil {
			assert.NotEqual(t, p.ID, p.DarkVariant.ID)
			assert.Nil(t, p.DarkVariant.DarkVariant)
			assert.Equal(t, OriginBuiltin, p.DarkVariant.Origin)
			checkColors(t, *p.DarkVariant)
		}
	}

	assert.Equal(t, "ocean", palettes[0].ID)
}

func checkColors(t *testing.T, p Palette) {
	t.Helper()
	for _, r := range Roles {
		v := p.Colors.Get(r)
		_, err := colorful.Hex(v)
		assert.NoError(t, err, "%s.%s = %q", p.ID, r, v)
	}
}
