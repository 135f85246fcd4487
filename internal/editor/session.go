// Package editor implements the palette editor session: a draft palette and
// optional dark draft that only reach the catalog on commit.
package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pfassina/colorcraft/internal/palette"
)

var (
	ErrClosed       = errors.New("editor session is closed")
	ErrUnknownField = errors.New("unknown field")
)

// Mode is the session lifecycle state.
type Mode int

const (
	ModeClosed Mode = iota
	ModeCreate
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	}
	return "closed"
}

// Side selects the light draft or the dark draft.
type Side int

const (
	Light Side = iota
	Dark
)

// Field paths accepted by SetField. Color roles use "colors.<role>".
const (
	FieldName        = "name"
	FieldID          = "id"
	FieldDescription = "description"
	colorPrefix      = "colors."
)

// ColorField returns the SetField path for a color role.
func ColorField(r palette.Role) string {
	return colorPrefix + string(r)
}

// Committer receives the finished palette.
type Committer interface {
	Upsert(p palette.Palette)
	Replace(oldID string, p palette.Palette) error
}

// Session is one open editor form.
type Session struct {
	mode        Mode
	originalID  string
	draft       palette.Palette
	dark        palette.Palette
	darkEnabled bool
}

// NewCreate opens a session for a brand new palette with the given id.
func NewCreate(id string) *Session {
	s := &Session{
		mode: ModeCreate,
		draft: palette.Palette{
			ID:          id,
			Name:        "Custom Palette",
			Description: "My custom color palette",
			Colors:      palette.DefaultLight(),
			Origin:      palette.OriginCustom,
		},
	}
	s.dark = palette.DeriveDark(s.draft, palette.Palette{
		Colors: palette.DefaultDark(),
		Origin: palette.OriginCustom,
	})
	return s
}

// NewEdit opens a session seeded from an existing palette and its dark
// variant. Committing replaces p.
func NewEdit(p palette.Palette) *Session {
	s := seeded(p, p.ID)
	s.mode = ModeEdit
	s.originalID = p.ID
	return s
}

// NewCopy opens a create session seeded from p under a new id. Used for
// palettes that must not change, such as builtins.
func NewCopy(p palette.Palette, id string) *Session {
	s := seeded(p, id)
	s.mode = ModeCreate
	if s.darkEnabled {
		s.syncDark()
	}
	return s
}

func seeded(p palette.Palette, id string) *Session {
	p = p.Clone()
	s := &Session{draft: p}
	s.draft.ID = id
	s.draft.DarkVariant = nil
	s.draft.Origin = palette.OriginCustom

	if p.DarkVariant != nil {
		s.darkEnabled = true
		s.dark = *p.DarkVariant
		s.dark.Origin = palette.OriginCustom
	} else {
		s.dark = palette.DeriveDark(s.draft, palette.Palette{
			Colors: palette.DefaultDark(),
			Origin: palette.OriginCustom,
		})
	}
	return s
}

// Mode returns the lifecycle state.
func (s *Session) Mode() Mode { return s.mode }

// IsOpen reports whether the session still accepts edits.
func (s *Session) IsOpen() bool { return s.mode != ModeClosed }

// OriginalID is the id of the palette being edited, or "" when creating.
func (s *Session) OriginalID() string { return s.originalID }

// Draft returns a copy of the light draft.
func (s *Session) Draft() palette.Palette { return s.draft.Clone() }

// DarkDraft returns a copy of the dark draft.
func (s *Session) DarkDraft() palette.Palette { return s.dark.Clone() }

// DarkEnabled reports whether commit will include the dark draft.
func (s *Session) DarkEnabled() bool { return s.darkEnabled }

// SetDarkEnabled turns the dark variant on or off. Turning it on rederives
// the dark draft's identity from the light draft.
func (s *Session) SetDarkEnabled(on bool) error {
	if !s.IsOpen() {
		return ErrClosed
	}
	s.darkEnabled = on
	if on {
		s.syncDark()
	}
	return nil
}

// SetField assigns one field of the light or dark draft. Values are stored
// as given; nothing is validated.
func (s *Session) SetField(side Side, path, value string) error {
	if !s.IsOpen() {
		return ErrClosed
	}

	target := &s.draft
	if side == Dark {
		target = &s.dark
	}

	switch {
	case path == FieldName:
		target.Name = value
	case path == FieldID:
		target.ID = value
	case path == FieldDescription:
		target.Description = value
	case strings.HasPrefix(path, colorPrefix):
		role, ok := palette.ParseRole(strings.TrimPrefix(path, colorPrefix))
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, path)
		}
		target.Colors.Set(role, value)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, path)
	}

	if side == Light && s.darkEnabled {
		s.syncDark()
	}
	return nil
}

// Get reads one field of the light or dark draft.
func (s *Session) Get(side Side, path string) (string, error) {
	target := s.draft
	if side == Dark {
		target = s.dark
	}
	switch {
	case path == FieldName:
		return target.Name, nil
	case path == FieldID:
		return target.ID, nil
	case path == FieldDescription:
		return target.Description, nil
	case strings.HasPrefix(path, colorPrefix):
		role, ok := palette.ParseRole(strings.TrimPrefix(path, colorPrefix))
		if ok {
			return target.Colors.Get(role), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownField, path)
}

// Build assembles the palette commit would write, without closing.
func (s *Session) Build() palette.Palette {
	p := s.draft.Clone()
	p.Origin = palette.OriginCustom
	p.DarkVariant = nil
	if s.darkEnabled {
		d := s.dark.Clone()
		d.Origin = palette.OriginCustom
		d.DarkVariant = nil
		p.DarkVariant = &d
	}
	return p.Normalize()
}

// Commit writes the palette to c and closes the session. A failed Replace
// leaves the session open.
func (s *Session) Commit(c Committer) (palette.Palette, error) {
	if !s.IsOpen() {
		return palette.Palette{}, ErrClosed
	}

	p := s.Build()
	if s.mode == ModeEdit && s.originalID != p.ID {
		if err := c.Replace(s.originalID, p); err != nil {
			return palette.Palette{}, err
		}
	} else {
		c.Upsert(p)
	}
	s.mode = ModeClosed
	return p, nil
}

// Cancel discards the drafts.
func (s *Session) Cancel() {
	s.mode = ModeClosed
}

func (s *Session) syncDark() {
	s.dark = palette.DeriveDark(s.draft, s.dark)
}
