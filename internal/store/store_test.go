package store

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfassina/colorcraft/internal/palette"
)

// flakyKV wraps Memory and fails selected operations.
type flakyKV struct {
	*Memory
	failGet    bool
	failSet    bool
	failRemove bool
	sets       int
}

var errBoom = errors.New("boom")

func newFlaky() *flakyKV { return &flakyKV{Memory: NewMemory()} }

func (f *flakyKV) Get(key string) (string, bool, error) {
	if f.failGet {
		return "", false, errBoom
	}
	return f.Memory.Get(key)
}

func (f *flakyKV) Set(key, value string) error {
	if f.failSet {
		return errBoom
	}
	f.sets++
	return f.Memory.Set(key, value)
}

func (f *flakyKV) Remove(key string) error {
	if f.failRemove {
		return errBoom
	}
	return f.Memory.Remove(key)
}

func mk(id string, origin palette.Origin) palette.Palette {
	return palette.Palette{
		ID:          id,
		Name:        "Palette " + id,
		Description: "about " + id,
		Colors:      palette.DefaultLight(),
		Origin:      origin,
	}
}

func withDark(p palette.Palette) palette.Palette {
	d := mk(palette.DarkID(p.ID), p.Origin)
	d.Colors = palette.DefaultDark()
	p.DarkVariant = &d
	return p
}

func TestAdapter_RoundTrip(t *testing.T) {
	a := NewAdapter(NewMemory(), zerolog.Nop())
	require.True(t, a.Enabled())

	catalog := []palette.Palette{
		mk("ocean", palette.OriginBuiltin),
		withDark(mk("custom-1", palette.OriginCustom)),
		mk("nord", palette.OriginBuiltin),
		mk("custom-2", palette.OriginCustom),
	}
	a.Save(catalog)

	got := a.Load()
	assert.Equal(t, []palette.Palette{catalog[1], catalog[3]}, got)
}

func TestAdapter_SaveEmptyWritesArray(t *testing.T) {
	kv := NewMemory()
	a := NewAdapter(kv, zerolog.Nop())
	a.Save([]palette.Palette{mk("ocean", palette.OriginBuiltin)})

	raw, ok, err := kv.Get(Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestAdapter_PersistedFormat(t *testing.T) {
	kv := NewMemory()
	a := NewAdapter(kv, zerolog.Nop())
	a.Save([]palette.Palette{withDark(mk("custom-1", palette.OriginCustom))})

	raw, _, err := kv.Get(Key)
	require.NoError(t, err)
	assert.Contains(t, raw, `"id":"custom-1"`)
	assert.Contains(t, raw, `"darkVariant":{"id":"custom-1-dark"`)
	assert.Contains(t, raw, `"colors":{"primary":"#3B82F6"`)
	assert.NotContains(t, raw, "origin")
	assert.NotContains(t, raw, "Origin")
}

func TestAdapter_LoadDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  error
	}{
		{"not json", "not json", ErrMalformedData},
		{"object", `{"id":"custom-1"}`, ErrMalformedData},
		{"null", "null", ErrMalformedData},
		{"array of numbers", "[1,2,3]", ErrMalformedData},
		{"truncated", `[{"id":"custom-1"`, ErrMalformedData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemory()
			require.NoError(t, kv.Set(Key, tt.value))
			a := NewAdapter(kv, zerolog.Nop())

			assert.NotPanics(t, func() {
				got := a.Load()
				assert.NotNil(t, got)
				assert.Empty(t, got)
			})

			_, err := a.load()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAdapter_LoadMissingKey(t *testing.T) {
	a := NewAdapter(NewMemory(), zerolog.Nop())
	got, err := a.load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAdapter_LoadMarksCustomAndNormalizes(t *testing.T) {
	kv := NewMemory()
	raw := `[{"id":"custom-1","name":"A","description":"","colors":{},"darkVariant":{"id":"custom-1","name":"B","description":"","colors":{},"darkVariant":{"id":"x","name":"","description":"","colors":{}}}}]`
	require.NoError(t, kv.Set(Key, raw))

	got := NewAdapter(kv, zerolog.Nop()).Load()
	require.Len(t, got, 1)
	assert.Equal(t, palette.OriginCustom, got[0].Origin)
	require.NotNil(t, got[0].DarkVariant)
	assert.Equal(t, "custom-1-dark", got[0].DarkVariant.ID)
	assert.Nil(t, got[0].DarkVariant.DarkVariant)
}

func TestAdapter_LoadSkipsRecordsWithoutID(t *testing.T) {
	kv := NewMemory()
	raw := `[null,{"id":"","name":"blank","colors":{}},{"id":"custom-1","name":"A","colors":{}}]`
	require.NoError(t, kv.Set(Key, raw))

	got := NewAdapter(kv, zerolog.Nop()).Load()
	require.Len(t, got, 1)
	assert.Equal(t, "custom-1", got[0].ID)
}

func TestAdapter_IgnoresUnknownRoles(t *testing.T) {
	kv := NewMemory()
	require.NoError(t, kv.Set(Key, `[{"id":"custom-1","name":"A","description":"","colors":{"primary":"#111111","chartreuse":"#00ff00"}}]`))

	got := NewAdapter(kv, zerolog.Nop()).Load()
	require.Len(t, got, 1)
	assert.Equal(t, "#111111", got[0].Colors.Primary)
}

func TestAdapter_Unavailable(t *testing.T) {
	t.Run("nil kv", func(t *testing.T) {
		a := NewAdapter(nil, zerolog.Nop())
		assert.False(t, a.Enabled())
		assert.Empty(t, a.Load())
		a.Save([]palette.Palette{mk("custom-1", palette.OriginCustom)})
		a.RemoveOne("custom-1")
		a.Clear()
	})

	t.Run("probe write fails", func(t *testing.T) {
		kv := newFlaky()
		kv.failSet = true
		a := NewAdapter(kv, zerolog.Nop())
		assert.False(t, a.Enabled())
		assert.False(t, a.IsAvailable())

		_, err := a.load()
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})

	t.Run("probe remove fails", func(t *testing.T) {
		kv := newFlaky()
		kv.failRemove = true
		assert.False(t, NewAdapter(kv, zerolog.Nop()).Enabled())
	})

	t.Run("probe leaves nothing behind", func(t *testing.T) {
		kv := NewMemory()
		NewAdapter(kv, zerolog.Nop())
		_, ok, _ := kv.Get(probeKey)
		assert.False(t, ok)
	})
}

func TestAdapter_FailuresAfterProbeAreSwallowed(t *testing.T) {
	kv := newFlaky()
	a := NewAdapter(kv, zerolog.Nop())
	require.True(t, a.Enabled())

	kv.failGet = true
	assert.Empty(t, a.Load())
	_, err := a.load()
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	kv.failSet = true
	assert.NotPanics(t, func() {
		a.Save([]palette.Palette{mk("custom-1", palette.OriginCustom)})
	})
	assert.ErrorIs(t, a.save(nil), ErrStoreUnavailable)
}

func TestAdapter_RemoveOne(t *testing.T) {
	a := NewAdapter(NewMemory(), zerolog.Nop())
	a.Save([]palette.Palette{
		mk("custom-1", palette.OriginCustom),
		mk("custom-2", palette.OriginCustom),
		mk("custom-3", palette.OriginCustom),
	})

	a.RemoveOne("custom-2")

	got := a.Load()
	require.Len(t, got, 2)
	assert.Equal(t, "custom-1", got[0].ID)
	assert.Equal(t, "custom-3", got[1].ID)
}

func TestAdapter_RemoveOneOnCorruptData(t *testing.T) {
	kv := newFlaky()
	require.NoError(t, kv.Memory.Set(Key, "not json"))
	a := NewAdapter(kv, zerolog.Nop())
	before := kv.sets

	a.RemoveOne("custom-1")

	raw, _, _ := kv.Get(Key)
	assert.Equal(t, "not json", raw)
	assert.Equal(t, before, kv.sets)
}

func TestAdapter_Clear(t *testing.T) {
	kv := NewMemory()
	a := NewAdapter(kv, zerolog.Nop())
	a.Save([]palette.Palette{mk("custom-1", palette.OriginCustom)})

	a.Clear()

	_, ok, _ := kv.Get(Key)
	assert.False(t, ok)
	assert.Empty(t, a.Load())
}
