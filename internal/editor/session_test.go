package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfassina/colorcraft/internal/palette"
)

type recorder struct {
	upserts    []palette.Palette
	replaces   []string
	replaceErr error
}

func (r *recorder) Upsert(p palette.Palette) { r.upserts = append(r.upserts, p) }

func (r *recorder) Replace(oldID string, p palette.Palette) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.replaces = append(r.replaces, oldID)
	r.upserts = append(r.upserts, p)
	return nil
}

func TestNewCreate_Defaults(t *testing.T) {
	s := NewCreate("custom-1")

	assert.Equal(t, ModeCreate, s.Mode())
	assert.True(t, s.IsOpen())
	assert.Empty(t, s.OriginalID())
	assert.False(t, s.DarkEnabled())

	d := s.Draft()
	assert.Equal(t, "custom-1", d.ID)
	assert.Equal(t, "Custom Palette", d.Name)
	assert.Equal(t, palette.DefaultLight(), d.Colors)

	dark := s.DarkDraft()
	assert.Equal(t, "custom-1-dark", dark.ID)
	assert.Equal(t, "Custom Palette Dark", dark.Name)
	assert.Equal(t, palette.DefaultDark(), dark.Colors)
}

func TestSetField_DerivesDarkIdentity(t *testing.T) {
	s := NewCreate("custom-5")
	require.NoError(t, s.SetDarkEnabled(true))
	require.NoError(t, s.SetField(Light, FieldName, "Sunset"))
	require.NoError(t, s.SetField(Light, FieldDescription, "Warm"))

	dark := s.DarkDraft()
	assert.Equal(t, "Sunset Dark", dark.Name)
	assert.Equal(t, "custom-5-dark", dark.ID)
	assert.Equal(t, "Warm - Dark mode", dark.Description)
}

func TestSetField_NoSyncWhileDarkDisabled(t *testing.T) {
	s := NewCreate("custom-5")
	require.NoError(t, s.SetField(Light, FieldName, "Sunset"))
	assert.Equal(t, "Custom Palette Dark", s.DarkDraft().Name)

	require.NoError(t, s.SetDarkEnabled(true))
	assert.Equal(t, "Sunset Dark", s.DarkDraft().Name)
}

func TestSetField_Colors(t *testing.T) {
	s := NewCreate("custom-1")
	require.NoError(t, s.SetField(Light, ColorField(palette.RolePrimary), "#000000"))
	require.NoError(t, s.SetField(Dark, ColorField(palette.RoleAccent), "not-a-color"))

	assert.Equal(t, "#000000", s.Draft().Colors.Primary)
	assert.Equal(t, "not-a-color", s.DarkDraft().Colors.Accent)

	got, err := s.Get(Dark, "colors.accent")
	require.NoError(t, err)
	assert.Equal(t, "not-a-color", got)
}

func TestSetField_Unknown(t *testing.T) {
	s := NewCreate("custom-1")
	assert.ErrorIs(t, s.SetField(Light, "colors.chartreuse", "#fff"), ErrUnknownField)
	assert.ErrorIs(t, s.SetField(Light, "tagline", "x"), ErrUnknownField)

	_, err := s.Get(Light, "tagline")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestCommit_Create(t *testing.T) {
	r := &recorder{}
	s := NewCreate("custom-1")
	require.NoError(t, s.SetField(Light, FieldName, "Mine"))

	p, err := s.Commit(r)
	require.NoError(t, err)

	require.Len(t, r.upserts, 1)
	assert.Empty(t, r.replaces)
	assert.Equal(t, "Mine", p.Name)
	assert.True(t, p.IsCustom())
	assert.Nil(t, p.DarkVariant)
	assert.False(t, s.IsOpen())
	assert.Equal(t, ModeClosed, s.Mode())
}

func TestCommit_WithDark(t *testing.T) {
	r := &recorder{}
	s := NewCreate("custom-5")
	require.NoError(t, s.SetDarkEnabled(true))
	require.NoError(t, s.SetField(Light, FieldName, "Sunset"))

	p, err := s.Commit(r)
	require.NoError(t, err)
	require.NotNil(t, p.DarkVariant)
	assert.Equal(t, "custom-5-dark", p.DarkVariant.ID)
	assert.Equal(t, "Sunset Dark", p.DarkVariant.Name)
	assert.True(t, p.DarkVariant.IsCustom())
	assert.Nil(t, p.DarkVariant.DarkVariant)
}

func TestCommit_EditRenameReplaces(t *testing.T) {
	r := &recorder{}
	orig := palette.Palette{ID: "custom-9", Name: "Old", Colors: palette.DefaultLight(), Origin: palette.OriginCustom}

	s := NewEdit(orig)
	assert.Equal(t, ModeEdit, s.Mode())
	assert.Equal(t, "custom-9", s.OriginalID())
	require.NoError(t, s.SetField(Light, FieldID, "custom-10"))

	_, err := s.Commit(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"custom-9"}, r.replaces)
}

func TestCommit_FailedReplaceKeepsSessionOpen(t *testing.T) {
	taken := errors.New("taken")
	r := &recorder{replaceErr: taken}
	orig := palette.Palette{ID: "custom-9", Name: "Old", Colors: palette.DefaultLight(), Origin: palette.OriginCustom}

	s := NewEdit(orig)
	require.NoError(t, s.SetField(Light, FieldID, "custom-1"))

	_, err := s.Commit(r)
	assert.ErrorIs(t, err, taken)
	assert.True(t, s.IsOpen())
	assert.Equal(t, ModeEdit, s.Mode())
	assert.Equal(t, "custom-1", s.Draft().ID)
}

func TestCommit_EditSameIDUpserts(t *testing.T) {
	r := &recorder{}
	dark := palette.Palette{ID: "custom-9-dark", Name: "Old Dark", Colors: palette.DefaultDark()}
	orig := palette.Palette{ID: "custom-9", Name: "Old", Colors: palette.DefaultLight(), DarkVariant: &dark}

	s := NewEdit(orig)
	assert.True(t, s.DarkEnabled())
	require.NoError(t, s.SetDarkEnabled(false))

	p, err := s.Commit(r)
	require.NoError(t, err)
	assert.Empty(t, r.replaces)
	require.Len(t, r.upserts, 1)
	assert.Nil(t, p.DarkVariant)
}

func TestNewCopy(t *testing.T) {
	dark := palette.Palette{ID: "ocean-dark", Name: "Ocean Dark", Colors: palette.DefaultDark()}
	orig := palette.Palette{ID: "ocean", Name: "Ocean", Colors: palette.DefaultLight(), DarkVariant: &dark, Origin: palette.OriginBuiltin}

	s := NewCopy(orig, "custom-7")
	assert.Equal(t, ModeCreate, s.Mode())
	assert.Empty(t, s.OriginalID())
	assert.Equal(t, "custom-7", s.Draft().ID)
	assert.True(t, s.Draft().IsCustom())
	assert.Equal(t, "custom-7-dark", s.DarkDraft().ID)
	assert.Equal(t, palette.DefaultDark(), s.DarkDraft().Colors)
}

func TestClosedSession(t *testing.T) {
	s := NewCreate("custom-1")
	s.Cancel()

	assert.ErrorIs(t, s.SetField(Light, FieldName, "x"), ErrClosed)
	assert.ErrorIs(t, s.SetDarkEnabled(true), ErrClosed)
	_, err := s.Commit(&recorder{})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestDraftIsACopy(t *testing.T) {
	s := NewCreate("custom-1")
	d := s.Draft()
	d.Name = "mutated"
	assert.Equal(t, "Custom Palette", s.Draft().Name)
}
