package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	writeFile(t, path, `
debug: true
keep_going: true
color: Never
prompt: "tsi> "
history_size: 5
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, path, cfg.Path)
	require.True(t, cfg.Debug)
	require.True(t, cfg.KeepGoing)
	require.Equal(t, ColorNever, cfg.Color)
	require.Equal(t, "tsi> ", cfg.Prompt)
	require.Equal(t, 5, cfg.HistorySize)
	require.Equal(t, Options{Debug: true, KeepGoing: true}, cfg.Options())
}

func TestLoadConfigEmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, "")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	want := DefaultConfig()
	want.Path = path
	require.Equal(t, want, cfg)
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, "debug: true\nverbose: true\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "verbose")
}

func TestLoadConfigValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, "color: sometimes\nprompt: \"\"\nhistory_size: -1\n")
	_, err := LoadConfig(path)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %v", err)
	require.Len(t, validationErr.Issues, 3)
	require.True(t, strings.HasPrefix(err.Error(), "config validation failed:"))
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFindConfigWalksUpwards(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, ConfigFileName)
	writeFile(t, path, "prompt: \">> \"\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := FindConfig(nested)
	require.NoError(t, err)
	require.Equal(t, path, found)

	cfg, err := LoadConfigFrom(nested)
	require.NoError(t, err)
	require.Equal(t, ">> ", cfg.Prompt)
}

func TestColorModeValidity(t *testing.T) {
	for _, mode := range []ColorMode{ColorAuto, ColorAlways, ColorNever} {
		require.True(t, mode.IsValid(), string(mode))
	}
	require.False(t, ColorMode("rainbow").IsValid())
}
