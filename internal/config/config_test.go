package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFromReader(t *testing.T) {
	cfg, err := ParseFromReader(strings.NewReader(`
ids: seq
indent: ""
log:
  level: debug
  color: false
export:
  pruneUnused: true
`))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Indent)
	assert.True(t, cfg.Export.PruneUnused)
	assert.False(t, cfg.Color(true))

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	ids, err := cfg.IDGenerator()
	require.NoError(t, err)
	assert.Equal(t, "1", ids.NewID())
}

func TestParseFromReader_Defaults(t *testing.T) {
	cfg, err := ParseFromReader(strings.NewReader(``))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Color(true))
	assert.False(t, cfg.Color(false))

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	ids, err := cfg.IDGenerator()
	require.NoError(t, err)
	_, err = uuid.Parse(ids.NewID())
	assert.NoError(t, err)
}

func TestParseFromReader_Errors(t *testing.T) {
	for name, src := range map[string]string{
		"bad yaml":      "ids: [",
		"unknown ids":   "ids: random",
		"unknown level": "log:\n  level: loud",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFromReader(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lottiekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ids: xid\n"), 0o600))

	cfg, err := Parse(path)
	require.NoError(t, err)
	ids, err := cfg.IDGenerator()
	require.NoError(t, err)
	_, err = xid.FromString(ids.NewID())
	assert.NoError(t, err)

	_, err = Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
