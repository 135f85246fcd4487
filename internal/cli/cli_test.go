package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfassina/colorcraft/internal/config"
	"github.com/pfassina/colorcraft/internal/palette"
	"github.com/pfassina/colorcraft/internal/store"
)

// isolate points every XDG directory into a temp dir and returns the file
// store directory the commands should use.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return filepath.Join(dir, "palettes")
}

func run(t *testing.T, storeDir string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	full := append([]string{"--store", "file", "--store-path", storeDir, "--log-file", ""}, args...)
	cmd.SetArgs(full)
	err := cmd.Execute()
	return out.String(), err
}

func seedCustom(t *testing.T, storeDir string, palettes ...palette.Palette) {
	t.Helper()
	data, err := json.Marshal(palettes)
	require.NoError(t, err)
	require.NoError(t, store.NewFile(storeDir).Set(store.Key, string(data)))
}

func mine() palette.Palette {
	return palette.Palette{
		ID:          "custom-1",
		Name:        "Mine",
		Description: "hand picked",
		Colors:      palette.DefaultLight(),
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"serve", "list", "export", "delete", "clear", "config"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	cmd, _, err := root.Find([]string{"config", "init"})
	require.NoError(t, err)
	assert.Equal(t, "init", cmd.Name())
}

func TestRootCmd_FlagDefaults(t *testing.T) {
	isolate(t)
	root := NewRootCmd()

	backend, err := root.PersistentFlags().GetString("store")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", backend)

	perPage, err := root.PersistentFlags().GetInt("per-page")
	require.NoError(t, err)
	assert.Equal(t, 6, perPage)

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	listen, err := serve.Flags().GetString("listen")
	require.NoError(t, err)
	assert.Equal(t, ":2222", listen)
}

func TestServeCmd_DocumentsLastWriterWins(t *testing.T) {
	serve, _, err := NewRootCmd().Find([]string{"serve"})
	require.NoError(t, err)
	assert.Contains(t, serve.Long, "last session to save wins")
}

func TestList(t *testing.T) {
	dir := isolate(t)
	seedCustom(t, dir, mine())

	out, err := run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Ocean Breeze")
	assert.Contains(t, out, "builtin")
	assert.Contains(t, out, "custom-1")
	assert.Contains(t, out, "custom")

	out, err = run(t, dir, "list", "--custom")
	require.NoError(t, err)
	assert.Contains(t, out, "custom-1")
	assert.NotContains(t, out, "ocean")
}

func TestList_Query(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, dir, "list", "nord")
	require.NoError(t, err)
	assert.Contains(t, out, "nord")
	assert.NotContains(t, out, "ocean")
	assert.Contains(t, out, `1 palettes match "nord"`)

	out, err = run(t, dir, "list", "zzz-nothing")
	require.NoError(t, err)
	assert.Contains(t, out, "no palettes match")
}

func TestExport(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, dir, "export", "ocean")
	require.NoError(t, err)
	assert.Contains(t, out, ":root {")
	assert.Contains(t, out, "--color-primary: #0EA5E9;")

	out, err = run(t, dir, "export", "ocean", "--dark")
	require.NoError(t, err)
	assert.Contains(t, out, "--color-primary: #38BDF8;")
	assert.Contains(t, out, "ocean-dark")

	out, err = run(t, dir, "export", "ocean-dark")
	require.NoError(t, err)
	assert.Contains(t, out, "--color-primary: #38BDF8;")

	out, err = run(t, dir, "export", "ocean", "--format", "json")
	require.NoError(t, err)
	var p palette.Palette
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "ocean", p.ID)
	assert.Equal(t, "#0EA5E9", p.Colors.Primary)
}

func TestExport_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := run(t, dir, "export", "missing")
	assert.ErrorContains(t, err, `palette "missing" not found`)

	_, err = run(t, dir, "export", "ocean", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestDelete(t *testing.T) {
	dir := isolate(t)
	seedCustom(t, dir, mine())

	_, err := run(t, dir, "delete", "ocean")
	assert.ErrorContains(t, err, "builtin")

	_, err = run(t, dir, "delete", "missing")
	assert.ErrorContains(t, err, "not found")

	out, err := run(t, dir, "delete", "custom-1")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted custom-1")

	out, err = run(t, dir, "list", "--custom")
	require.NoError(t, err)
	assert.Contains(t, out, "no palettes match")
}

func TestClear(t *testing.T) {
	dir := isolate(t)
	seedCustom(t, dir, mine())

	out, err := run(t, dir, "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 1 custom palettes")

	_, ok, err := store.NewFile(dir).Get(store.Key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfigInit(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, dir, "--per-page", "4", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, config.ConfigPath())

	data, err := os.ReadFile(config.ConfigPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), `store = "file"`)
	assert.Contains(t, string(data), "per_page = 4")

	_, err = run(t, dir, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, dir, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigFileFeedsCommands(t *testing.T) {
	dir := isolate(t)
	seedCustom(t, dir, mine())

	cfg := config.Default()
	cfg.Store = "file"
	cfg.StorePath = dir
	cfg.LogFile = ""
	_, err := config.SaveFile(cfg)
	require.NoError(t, err)

	// No store flags: the backend comes from config.toml.
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list", "--custom"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "custom-1")
}
