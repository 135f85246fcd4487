// Package studio is the operations surface the UI and CLI drive: selection,
// mode switching, the editor session and save/delete, all over one catalog.
package studio

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pfassina/colorcraft/internal/catalog"
	"github.com/pfassina/colorcraft/internal/editor"
	"github.com/pfassina/colorcraft/internal/palette"
	"github.com/pfassina/colorcraft/internal/selection"
	"github.com/pfassina/colorcraft/internal/store"
)

var (
	ErrBuiltin   = errors.New("builtin palettes cannot be changed")
	ErrNoSession = errors.New("no editor session open")
	ErrIDTaken   = catalog.ErrIDTaken
)

// Studio holds one user's catalog, selection and editor session. It is not
// safe for concurrent use; each TUI session owns its own Studio.
type Studio struct {
	builtins []palette.Palette
	catalog  *catalog.Catalog
	store    *store.Adapter
	state    selection.State
	session  *editor.Session
	now      func() time.Time
	logger   zerolog.Logger
}

// Option configures a Studio.
type Option func(*Studio)

// WithClock replaces time.Now for id generation.
func WithClock(now func() time.Time) Option {
	return func(s *Studio) { s.now = now }
}

// WithDarkMode sets the initial mode.
func WithDarkMode(dark bool) Option {
	return func(s *Studio) { s.state.DarkMode = dark }
}

// New loads the catalog from builtins plus whatever adapter holds. A nil
// adapter keeps everything in memory.
func New(builtins []palette.Palette, adapter *store.Adapter, logger zerolog.Logger, opts ...Option) (*Studio, error) {
	s := &Studio{
		builtins: builtins,
		store:    adapter,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	c, err := catalog.Initialize(builtins, s.catalogStore(), logger)
	if err != nil {
		return nil, fmt.Errorf("initialize catalog: %w", err)
	}
	s.catalog = c

	s.state = selection.Select(c, s.state, c.First().ID)
	logger.Debug().
		Int("palettes", c.Len()).
		Int("custom", len(c.Custom())).
		Msg("catalog loaded")
	return s, nil
}

// Reload rebuilds the catalog from the builtins and the store, keeping the
// selection when its palette survived. Without a working store it does
// nothing, since the catalog is the only copy of custom palettes.
func (s *Studio) Reload() error {
	if s.store == nil || !s.store.Enabled() {
		return nil
	}
	c, err := catalog.Initialize(s.builtins, s.store, s.logger)
	if err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}
	s.catalog = c

	id := s.state.SelectedID
	if _, ok := c.Owner(id); !ok {
		id = c.First().ID
	}
	s.state = selection.Select(c, s.state, id)
	s.logger.Debug().Int("custom", len(c.Custom())).Msg("catalog reloaded")
	return nil
}

func (s *Studio) catalogStore() catalog.Store {
	if s.store == nil {
		return nil
	}
	return s.store
}

// Catalog exposes the underlying catalog for read access.
func (s *Studio) Catalog() *catalog.Catalog { return s.catalog }

// State returns the current selection.
func (s *Studio) State() selection.State { return s.state }

// Active returns the palette driving the preview, which may be a dark
// variant.
func (s *Studio) Active() palette.Palette {
	return selection.ResolveActive(s.catalog, s.state.SelectedID)
}

// ActiveOwner returns the top-level palette behind the selection.
func (s *Studio) ActiveOwner() palette.Palette {
	if p, ok := s.catalog.Owner(s.state.SelectedID); ok {
		return p
	}
	return s.catalog.First()
}

// IsSelected reports whether p or its dark variant is selected.
func (s *Studio) IsSelected(p palette.Palette) bool {
	return selection.IsSelected(p, s.state)
}

// Browse searches and paginates the catalog.
func (s *Studio) Browse(query string, page, perPage int) catalog.Page {
	return s.catalog.Browse(query, page, perPage)
}

// CanDelete reports whether the selected palette may be deleted.
func (s *Studio) CanDelete() bool {
	return s.catalog.Len() > 1 && s.ActiveOwner().IsCustom()
}

// SelectPalette selects id, honoring the current mode.
func (s *Studio) SelectPalette(id string) {
	s.state = selection.Select(s.catalog, s.state, id)
}

// ToggleDarkMode switches mode, keeping the same palette on screen.
func (s *Studio) ToggleDarkMode(dark bool) {
	s.state = selection.ToggleMode(s.catalog, s.state, dark)
}

// Session returns the open editor session, or nil.
func (s *Studio) Session() *editor.Session {
	if s.session == nil || !s.session.IsOpen() {
		return nil
	}
	return s.session
}

// CreatePalette opens an editor session for a new palette.
func (s *Studio) CreatePalette() *editor.Session {
	s.session = editor.NewCreate(s.freshID())
	return s.session
}

// EditPalette opens an editor session on the selected palette. Builtins are
// copied into a new custom palette instead of edited.
func (s *Studio) EditPalette() *editor.Session {
	owner := s.ActiveOwner()
	if owner.IsCustom() {
		s.session = editor.NewEdit(owner)
	} else {
		s.session = editor.NewCopy(owner, s.freshID())
	}
	return s.session
}

// CommitEditor saves the open session into the catalog and selects the
// result.
func (s *Studio) CommitEditor() (palette.Palette, error) {
	sess := s.Session()
	if sess == nil {
		return palette.Palette{}, ErrNoSession
	}
	self := ""
	if sess.Mode() == editor.ModeEdit {
		self = sess.OriginalID()
	}
	if err := s.checkIDs(sess.Build(), self); err != nil {
		return palette.Palette{}, err
	}

	p, err := sess.Commit(s.catalog)
	if err != nil {
		return palette.Palette{}, err
	}
	s.session = nil
	s.SelectPalette(p.ID)
	s.logger.Info().Str("id", p.ID).Bool("dark", p.HasDark()).Msg("palette saved")
	return p, nil
}

// CancelEditor discards the open session.
func (s *Studio) CancelEditor() {
	if s.session != nil {
		s.session.Cancel()
		s.session = nil
	}
}

// SavePalette stores p with an optional dark variant as a custom palette and
// selects it. An empty id gets a fresh one.
func (s *Studio) SavePalette(p palette.Palette, dark *palette.Palette) (palette.Palette, error) {
	p = p.Clone()
	if p.ID == "" {
		p.ID = s.freshID()
	}
	p.DarkVariant = nil
	if dark != nil {
		d := dark.Clone()
		if d.ID == "" {
			d = palette.DeriveDark(p, d)
		}
		p.DarkVariant = &d
	}
	p = p.WithOrigin(palette.OriginCustom).Normalize()

	if err := s.checkIDs(p, p.ID); err != nil {
		return palette.Palette{}, err
	}

	s.catalog.Upsert(p)
	s.SelectPalette(p.ID)
	s.logger.Info().Str("id", p.ID).Bool("dark", p.HasDark()).Msg("palette saved")
	return p, nil
}

// DeletePalette removes the selected palette and selects the first one
// left.
func (s *Studio) DeletePalette() error {
	owner := s.ActiveOwner()
	if !owner.IsCustom() {
		return ErrBuiltin
	}
	if err := s.catalog.Remove(owner.ID); err != nil {
		return err
	}
	if s.store != nil {
		s.store.RemoveOne(owner.ID)
	}
	s.SelectPalette(s.catalog.First().ID)
	s.logger.Info().Str("id", owner.ID).Msg("palette deleted")
	return nil
}

// checkIDs refuses p when any id it would occupy belongs to a builtin, or
// to a custom palette other than the one with id self.
func (s *Studio) checkIDs(p palette.Palette, self string) error {
	if s.isBuiltin(p) {
		return ErrBuiltin
	}
	if owner, ok := s.catalog.Conflict(p, self); ok {
		s.logger.Debug().Str("id", p.ID).Str("owner", owner.ID).Msg("palette id already in use")
		return ErrIDTaken
	}
	return nil
}

// isBuiltin reports whether any id p would occupy belongs to a builtin.
func (s *Studio) isBuiltin(p palette.Palette) bool {
	ids := []string{p.ID}
	if p.DarkVariant != nil {
		ids = append(ids, p.DarkVariant.ID)
	}
	for _, id := range ids {
		if owner, ok := s.catalog.Owner(id); ok && !owner.IsCustom() {
			return true
		}
	}
	return false
}

// freshID returns a time-based custom id not yet in the catalog.
func (s *Studio) freshID() string {
	t := s.now()
	for {
		id := palette.NewCustomID(t)
		if !s.catalog.Contains(id) && !s.catalog.Contains(palette.DarkID(id)) {
			return id
		}
		t = t.Add(time.Millisecond)
	}
}
