package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const DefaultLabel = "Default"

var (
	ErrNoConfig = errors.New("no config selected")
	ErrExists   = errors.New("config already exists")
	ErrNotFound = errors.New("config does not exist")
)

func ConfigRoot() string {
	// Windows
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, "comicrev")
	}

	// Linux/macOS XDG
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "comicrev")
	}

	// Linux/macOS default
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "comicrev")
}

// Store manages labelled YAML profiles under a root directory. The active
// label lives in <root>/current_config.
type Store struct {
	root string
}

func NewStore(root string) *Store { return &Store{root: root} }

func DefaultStore() *Store { return NewStore(ConfigRoot()) }

func (s *Store) Root() string { return s.root }

func (s *Store) ConfigsDir() string { return filepath.Join(s.root, "configs") }

func (s *Store) currentLabelFile() string { return filepath.Join(s.root, "current_config") }

func (s *Store) PathFor(label string) string {
	return filepath.Join(s.ConfigsDir(), label+".yaml")
}

func (s *Store) ensureDirs() error {
	return os.MkdirAll(s.ConfigsDir(), 0755)
}

func validLabel(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return errors.New("label cannot be empty")
	}
	if strings.ContainsAny(label, `/\`) || label == "." || label == ".." {
		return fmt.Errorf("label %q must not contain path separators", label)
	}
	return nil
}

func (s *Store) exists(label string) bool {
	_, err := os.Stat(s.PathFor(label))
	return err == nil
}

func (s *Store) setCurrent(label string) error {
	return os.WriteFile(s.currentLabelFile(), []byte(label), 0644)
}

func (s *Store) CurrentLabel() (string, error) {
	b, err := os.ReadFile(s.currentLabelFile())
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoConfig
	}
	if err != nil {
		return "", err
	}

	label := strings.TrimSpace(string(b))
	if label == "" {
		return "", ErrNoConfig
	}
	return label, nil
}

func (s *Store) ActivePath() (string, error) {
	label, err := s.CurrentLabel()
	if err != nil {
		return "", err
	}
	return s.PathFor(label), nil
}

type ConfigInfo struct {
	Label  string
	Path   string
	Active bool
}

func (s *Store) List() ([]ConfigInfo, error) {
	if err := s.ensureDirs(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.ConfigsDir())
	if err != nil {
		return nil, err
	}

	activeLabel, _ := s.CurrentLabel()
	out := []ConfigInfo{}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}

		label := strings.TrimSuffix(name, ".yaml")
		out = append(out, ConfigInfo{
			Label:  label,
			Path:   filepath.Join(s.ConfigsDir(), name),
			Active: label == activeLabel,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func (s *Store) Switch(label string) error {
	if err := validLabel(label); err != nil {
		return err
	}
	if err := s.ensureDirs(); err != nil {
		return err
	}
	if !s.exists(label) {
		return fmt.Errorf("%w: %q", ErrNotFound, label)
	}
	return s.setCurrent(label)
}

// Create writes a new profile with the default values.
func (s *Store) Create(label string) (string, error) {
	if err := validLabel(label); err != nil {
		return "", err
	}
	if err := s.ensureDirs(); err != nil {
		return "", err
	}

	path := s.PathFor(label)
	if s.exists(label) {
		return path, fmt.Errorf("%w: %q", ErrExists, label)
	}
	if err := SaveYAML(DefaultConfig(), path); err != nil {
		return "", err
	}
	return path, nil
}

// Import copies srcPath into a new profile after checking it decodes.
func (s *Store) Import(label, srcPath string) (string, error) {
	if err := validLabel(label); err != nil {
		return "", err
	}
	if err := s.ensureDirs(); err != nil {
		return "", err
	}

	dst := s.PathFor(label)
	if s.exists(label) {
		return dst, fmt.Errorf("%w: %q", ErrExists, label)
	}

	if _, err := loadYAML(srcPath); err != nil {
		return "", fmt.Errorf("cannot import %s: %w", srcPath, err)
	}
	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return "", err
	}
	return dst, os.WriteFile(dst, raw, 0644)
}

func (s *Store) Rename(oldLabel, newLabel string) error {
	if err := validLabel(newLabel); err != nil {
		return err
	}
	if !s.exists(oldLabel) {
		return fmt.Errorf("%w: %q", ErrNotFound, oldLabel)
	}
	if s.exists(newLabel) {
		return fmt.Errorf("%w: %q", ErrExists, newLabel)
	}

	if err := os.Rename(s.PathFor(oldLabel), s.PathFor(newLabel)); err != nil {
		return err
	}

	if active, _ := s.CurrentLabel(); active == oldLabel {
		return s.setCurrent(newLabel)
	}
	return nil
}

// Remove deletes a profile. Removing the active one makes Default active.
// It reports whether that fallback happened.
func (s *Store) Remove(label string) (bool, error) {
	if err := validLabel(label); err != nil {
		return false, err
	}
	if label == DefaultLabel {
		return false, errors.New("cannot remove the Default config")
	}
	if !s.exists(label) {
		return false, fmt.Errorf("%w: %q", ErrNotFound, label)
	}

	fellBack := false
	if active, _ := s.CurrentLabel(); active == label {
		if err := s.Switch(DefaultLabel); err != nil {
			return false, fmt.Errorf("failed switching to Default: %w", err)
		}
		fellBack = true
	}

	return fellBack, os.Remove(s.PathFor(label))
}

// Reset rewrites the active profile with the default values.
func (s *Store) Reset() (string, error) {
	path, err := s.ActivePath()
	if err != nil {
		return "", err
	}
	return path, SaveYAML(DefaultConfig(), path)
}

// Init creates the Default profile if needed and makes it active. When the
// profile already exists the returned error wraps ErrExists.
func (s *Store) Init() (string, error) {
	path, err := s.Create(DefaultLabel)
	if err != nil && !errors.Is(err, ErrExists) {
		return "", err
	}
	if serr := s.setCurrent(DefaultLabel); serr != nil {
		return "", serr
	}
	return path, err
}

// Check reports whether the profile decodes into a valid config.
func (s *Store) Check(label string) error {
	c, err := loadYAML(s.PathFor(label))
	if err != nil {
		return err
	}
	normalizeDefaults(c)
	return c.Validate()
}
