// Package store persists user-created palettes in a key/value store.
//
// Every failure is recovered here: a broken or missing store degrades the
// app to in-memory operation and is only ever logged.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pfassina/colorcraft/internal/palette"
)

// Key is where the custom palette collection lives.
const Key = "colorcraft-custom-palettes"

const probeKey = "__colorcraft_probe__"

var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrMalformedData    = errors.New("malformed persisted data")
)

// KV is the durable key/value contract. Any method may fail; a failure means
// the operation is unavailable, never that the caller should crash.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// Adapter reads and writes the custom palettes under a single key.
type Adapter struct {
	kv        KV
	logger    zerolog.Logger
	available bool
}

// NewAdapter probes kv once; when the probe fails the adapter turns every
// operation into a no-op for its lifetime.
func NewAdapter(kv KV, logger zerolog.Logger) *Adapter {
	a := &Adapter{kv: kv, logger: logger.With().Str("key", Key).Logger()}
	a.available = a.IsAvailable()
	if !a.available {
		a.logger.Warn().Msg("palette store unavailable, custom palettes will not persist")
	}
	return a
}

// IsAvailable probes the store with a write/remove cycle.
func (a *Adapter) IsAvailable() bool {
	if a.kv == nil {
		return false
	}
	if err := a.kv.Set(probeKey, probeKey); err != nil {
		a.logger.Debug().Err(err).Msg("store probe write failed")
		return false
	}
	if err := a.kv.Remove(probeKey); err != nil {
		a.logger.Debug().Err(err).Msg("store probe remove failed")
		return false
	}
	return true
}

// Enabled reports the result of the startup probe.
func (a *Adapter) Enabled() bool {
	return a.available
}

// Load returns the persisted palettes, or an empty collection when nothing
// usable is stored.
func (a *Adapter) Load() []palette.Palette {
	palettes, err := a.load()
	if err != nil {
		a.logger.Warn().Err(err).Msg("failed to load custom palettes")
		return []palette.Palette{}
	}
	return palettes
}

func (a *Adapter) load() ([]palette.Palette, error) {
	if !a.available {
		return nil, ErrStoreUnavailable
	}

	raw, ok, err := a.kv.Get(Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !ok || raw == "" {
		return []palette.Palette{}, nil
	}

	var palettes []palette.Palette
	if err := json.Unmarshal([]byte(raw), &palettes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if palettes == nil {
		// JSON null is not an array.
		return nil, fmt.Errorf("%w: not an array", ErrMalformedData)
	}

	out := make([]palette.Palette, 0, len(palettes))
	for i, p := range palettes {
		// null elements decode to the zero palette.
		if p.ID == "" {
			a.logger.Warn().Int("index", i).Msg("skipping persisted palette without id")
			continue
		}
		out = append(out, p.WithOrigin(palette.OriginCustom).Normalize())
	}
	return out, nil
}

// Save writes the custom subset of palettes, replacing what was stored.
func (a *Adapter) Save(palettes []palette.Palette) {
	if err := a.save(palettes); err != nil {
		a.logger.Warn().Err(err).Msg("failed to save custom palettes")
	}
}

func (a *Adapter) save(palettes []palette.Palette) error {
	if !a.available {
		return ErrStoreUnavailable
	}

	custom := make([]palette.Palette, 0, len(palettes))
	for _, p := range palettes {
		if p.IsCustom() {
			custom = append(custom, p.Normalize())
		}
	}

	data, err := json.Marshal(custom)
	if err != nil {
		return fmt.Errorf("encode palettes: %w", err)
	}
	if err := a.kv.Set(Key, string(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	a.logger.Debug().Int("count", len(custom)).Msg("saved custom palettes")
	return nil
}

// RemoveOne drops a single palette from the stored collection. This is a
// read-modify-write with no coordination between processes: the last writer
// wins.
func (a *Adapter) RemoveOne(id string) {
	if !a.available {
		return
	}
	palettes, err := a.load()
	if err != nil {
		a.logger.Warn().Err(err).Str("id", id).Msg("failed to remove custom palette")
		return
	}

	kept := palettes[:0]
	for _, p := range palettes {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	a.Save(kept)
}

// Clear deletes the stored collection.
func (a *Adapter) Clear() {
	if !a.available {
		return
	}
	if err := a.kv.Remove(Key); err != nil {
		a.logger.Warn().Err(err).Msg("failed to clear custom palettes")
	}
}
