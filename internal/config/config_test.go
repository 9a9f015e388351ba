package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMerged_DefaultsWithoutProfile(t *testing.T) {
	store := NewStore(t.TempDir())

	cfg, used, err := LoadMerged(Options{Store: store})
	require.NoError(t, err)
	assert.Contains(t, used, "default config in memory")
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMerged_Precedence(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Init()
	require.NoError(t, err)

	profile := "listen: 0.0.0.0:9000\nworkers: 2\ntimeout: 5s\nuser_agent: yaml-agent\n"
	require.NoError(t, os.WriteFile(store.PathFor(DefaultLabel), []byte(profile), 0644))

	t.Setenv("COMICREV_WORKERS", "6")
	t.Setenv("COMICREV_USER_AGENT", "env-agent")
	t.Setenv("COMICREV_DEBUG", "true")

	cfg, used, err := LoadMerged(Options{Store: store, UserAgent: "flag-agent"})
	require.NoError(t, err)

	assert.Equal(t, store.PathFor(DefaultLabel), used)
	assert.Equal(t, "0.0.0.0:9000", cfg.Listen, "yaml over default")
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 6, cfg.Workers, "env over yaml")
	assert.True(t, cfg.Debug)
	assert.Equal(t, "flag-agent", cfg.UserAgent, "flag over env")
	assert.Equal(t, DefaultConfig().Origin, cfg.Origin, "missing yaml key keeps default")
}

func TestLoadMerged_IgnoreConfig(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Init()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.PathFor(DefaultLabel), []byte("workers: 9\n"), 0644))

	cfg, used, err := LoadMerged(Options{Store: store, IgnoreConfig: true})
	require.NoError(t, err)
	assert.Equal(t, "(ignored config)", used)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

func TestLoadMerged_Invalid(t *testing.T) {
	store := NewStore(t.TempDir())

	t.Setenv("COMICREV_TIMEOUT", "soon")
	_, _, err := LoadMerged(Options{Store: store})
	require.Error(t, err)

	t.Setenv("COMICREV_TIMEOUT", "1s")
	t.Setenv("COMICREV_ORIGIN", "ftp://example.com")
	_, _, err = LoadMerged(Options{Store: store})
	require.Error(t, err)

	t.Setenv("COMICREV_ORIGIN", "https://example.com/")
	cfg, _, err := LoadMerged(Options{Store: store})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cfg.Origin)
}

func TestLoadMerged_BrokenProfile(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Init()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.PathFor(DefaultLabel), []byte("workers: [\n"), 0644))

	_, _, err = LoadMerged(Options{Store: store})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestSaveYAML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	cfg := DefaultConfig()
	cfg.Timeout = 90 * time.Second
	cfg.Cookie = "a=b"

	require.NoError(t, SaveYAML(cfg, path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "timeout: 1m30s")

	got, err := loadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestPrint_HidesCookie(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cookie = "session=secret"

	var sb strings.Builder
	cfg.Print(&sb)
	assert.Contains(t, sb.String(), " -listen: 127.0.0.1:8080")
	assert.NotContains(t, sb.String(), "secret")
}

func TestConfigRoot_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "comicrev"), ConfigRoot())
	assert.Equal(t, filepath.Join(dir, "comicrev", "configs"), DefaultStore().ConfigsDir())
}
