package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/brogergvhs/comicrev/internal/roundup"
)

const (
	DefaultListen  = "127.0.0.1:8080"
	DefaultTimeout = 30 * time.Second
	DefaultWorkers = 4

	envPrefix = "COMICREV_"
)

type Config struct {
	Listen   string        `yaml:"listen"`
	Origin   string        `yaml:"origin"`
	Timeout  time.Duration `yaml:"timeout"`
	Workers  int           `yaml:"workers"`
	Debug    bool          `yaml:"debug"`
	JSONLogs bool          `yaml:"json_logs"`

	UserAgent  string `yaml:"user_agent"`
	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
}

// Options carries command-line overrides. Zero values leave the lower
// layers untouched.
type Options struct {
	IgnoreConfig bool
	Store        *Store

	Listen     string
	Origin     string
	Timeout    time.Duration
	Workers    int
	Debug      bool
	JSONLogs   bool
	UserAgent  string
	Cookie     string
	CookieFile string
}

// envOverrides holds the COMICREV_* variables. Unset variables stay nil.
type envOverrides struct {
	Listen     *string        `env:"LISTEN"`
	Origin     *string        `env:"ORIGIN"`
	Timeout    *time.Duration `env:"TIMEOUT"`
	Workers    *int           `env:"WORKERS"`
	Debug      *bool          `env:"DEBUG"`
	JSONLogs   *bool          `env:"JSON_LOGS"`
	UserAgent  *string        `env:"USER_AGENT"`
	Cookie     *string        `env:"COOKIE"`
	CookieFile *string        `env:"COOKIE_FILE"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:  DefaultListen,
		Origin:  roundup.DefaultOrigin,
		Timeout: DefaultTimeout,
		Workers: DefaultWorkers,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// loadYAML decodes path on top of the defaults so a partial profile keeps
// the remaining defaults.
func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadMerged layers defaults, the active profile, COMICREV_* variables and
// opts, in that order. The second return value describes where the profile
// came from.
func LoadMerged(opts Options) (*Config, string, error) {
	store := opts.Store
	if store == nil {
		store = DefaultStore()
	}

	cfg, used, err := loadProfile(store, opts.IgnoreConfig)
	if err != nil {
		return nil, "", err
	}

	if err := mergeEnv(cfg); err != nil {
		return nil, "", err
	}
	mergeOptions(cfg, opts)
	normalizeDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, used, nil
}

func loadProfile(store *Store, ignore bool) (*Config, string, error) {
	if ignore {
		return DefaultConfig(), "(ignored config)", nil
	}

	activePath, err := store.ActivePath()
	if errors.Is(err, ErrNoConfig) {
		return DefaultConfig(), "(default config in memory)\nRun `comicrev config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}
	return cfg, activePath, nil
}

func mergeEnv(c *Config) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}

	if o.Listen != nil {
		c.Listen = *o.Listen
	}
	if o.Origin != nil {
		c.Origin = *o.Origin
	}
	if o.Timeout != nil {
		c.Timeout = *o.Timeout
	}
	if o.Workers != nil {
		c.Workers = *o.Workers
	}
	if o.Debug != nil {
		c.Debug = *o.Debug
	}
	if o.JSONLogs != nil {
		c.JSONLogs = *o.JSONLogs
	}
	if o.UserAgent != nil {
		c.UserAgent = *o.UserAgent
	}
	if o.Cookie != nil {
		c.Cookie = *o.Cookie
	}
	if o.CookieFile != nil {
		c.CookieFile = *o.CookieFile
	}
	return nil
}

func mergeOptions(c *Config, o Options) {
	if o.Listen != "" {
		c.Listen = o.Listen
	}
	if o.Origin != "" {
		c.Origin = o.Origin
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.Debug {
		c.Debug = true
	}
	if o.JSONLogs {
		c.JSONLogs = true
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
}

func normalizeDefaults(c *Config) {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.Origin == "" {
		c.Origin = roundup.DefaultOrigin
	}
	c.Origin = strings.TrimRight(c.Origin, "/")
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
}

func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if !strings.HasPrefix(c.Origin, "http://") && !strings.HasPrefix(c.Origin, "https://") {
		return fmt.Errorf("origin %q is not an http(s) URL", c.Origin)
	}
	return nil
}

func (c *Config) Print(w io.Writer) {
	fmt.Fprintf(w, " -listen: %s\n", c.Listen)
	fmt.Fprintf(w, " -origin: %s\n", c.Origin)
	fmt.Fprintf(w, " -timeout: %s\n", c.Timeout)
	fmt.Fprintf(w, " -workers: %d\n", c.Workers)
	if c.Debug {
		fmt.Fprintf(w, " -debug: %t\n", c.Debug)
	}
	if c.JSONLogs {
		fmt.Fprintf(w, " -json_logs: %t\n", c.JSONLogs)
	}
	if c.UserAgent != "" {
		fmt.Fprintf(w, " -user_agent: %s\n", c.UserAgent)
	}
	if c.Cookie != "" {
		fmt.Fprintln(w, " -cookie: (set)")
	}
	if c.CookieFile != "" {
		fmt.Fprintf(w, " -cookie_file: %s\n", c.CookieFile)
	}
}
