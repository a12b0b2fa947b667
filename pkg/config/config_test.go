package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 24, cfg.Server.MaxLimit)
	assert.Equal(t, 60, cfg.Server.MaxWordLen)
	assert.True(t, cfg.Server.EnableFilter)
	assert.Equal(t, "data/words.txt", cfg.Dict.WordsFile)
	assert.False(t, cfg.Dict.CaseSensitive)
	assert.Equal(t, 4, cfg.Spell.MinFuzzyLen)
	assert.Equal(t, 6, cfg.Spell.MinSplitLen)
	assert.False(t, cfg.Spell.ModelFallback)
}

func TestOptionsMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spell.MinFuzzyLen = 5
	cfg.Spell.SwapLimitLong = 4
	cfg.Spell.ModelFallback = true

	opts := cfg.Options()
	assert.Equal(t, 5, opts.MinFuzzyLength)
	assert.Equal(t, 4, opts.SwapLimitLong)
	assert.True(t, opts.ModelFallback)
	assert.Equal(t, cfg.Spell.MinSplitLen, opts.MinSplitLength)
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	// second init loads the file it just created
	again, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Server.MaxLimit = 12
	cfg.Dict.WordsFile = "custom/words.txt"
	cfg.Spell.SwapMaxSpan = 3
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[server]\nmax_limit = 10\n\n[spell]\nmin_fuzzy_len = 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Server.MaxLimit)
	assert.Equal(t, 5, cfg.Spell.MinFuzzyLen)
	// unspecified fields keep their defaults
	assert.Equal(t, 60, cfg.Server.MaxWordLen)
	assert.Equal(t, "data/words.txt", cfg.Dict.WordsFile)
}

func TestLoadConfigRecoversFromTypeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[server]\nmax_limit = 10\nmax_word_len = \"sixty\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	// the valid key survives, the mistyped one falls back to its default
	assert.Equal(t, 10, cfg.Server.MaxLimit)
	assert.Equal(t, 60, cfg.Server.MaxWordLen)
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	// recovery path hands back defaults rather than an error
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
