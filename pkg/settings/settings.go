// Package settings persists the last-used tool, brush size and colors
// between sessions.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/user/rasterpaint/pkg/canvas"
	"github.com/user/rasterpaint/pkg/config"
	"github.com/user/rasterpaint/pkg/ports"
	"github.com/user/rasterpaint/pkg/tools"
)

// FileName is the settings file inside the user config directory.
const FileName = "settings.yaml"

// Settings is the persisted record. JSON documents parse as well since they
// are valid YAML.
type Settings struct {
	Tool      string `yaml:"tool,omitempty"`
	BrushSize int    `yaml:"brush_size,omitempty"`
	Primary   string `yaml:"primary,omitempty"`
	Secondary string `yaml:"secondary,omitempty"`
}

// Capture records the tool state of a session.
func Capture(st tools.State) Settings {
	return Settings{
		Tool:      st.Tool.String(),
		BrushSize: st.BrushSize,
		Primary:   config.FormatColor(st.Primary),
		Secondary: config.FormatColor(st.Secondary),
	}
}

// Apply restores the settings onto e. Fields that are empty are skipped; every
// field that fails is reported and the rest are still applied.
func (s Settings) Apply(e *canvas.Engine) error {
	var errs []error
	if s.Tool != "" {
		if k, err := tools.ParseKind(s.Tool); err != nil {
			errs = append(errs, err)
		} else {
			e.SetTool(k)
		}
	}
	if s.BrushSize != 0 {
		if err := e.SetBrushSize(s.BrushSize); err != nil {
			errs = append(errs, err)
		}
	}
	if s.Primary != "" {
		if c, err := config.ParseColor(s.Primary); err != nil {
			errs = append(errs, fmt.Errorf("primary: %w", err))
		} else {
			e.SetPrimaryColor(c)
		}
	}
	if s.Secondary != "" {
		if c, err := config.ParseColor(s.Secondary); err != nil {
			errs = append(errs, fmt.Errorf("secondary: %w", err))
		} else {
			e.SetSecondaryColor(c)
		}
	}
	return errors.Join(errs...)
}

// Store reads and writes Settings at a fixed path.
type Store struct {
	fs   ports.FileSystem
	path string
}

// NewStore creates a Store for path.
func NewStore(fs ports.FileSystem, path string) *Store {
	return &Store{fs: fs, path: path}
}

// DefaultPath returns the settings location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rasterpaint", FileName), nil
}

// Path returns the file the store uses.
func (s *Store) Path() string { return s.path }

// Load reads the settings. A missing file returns ok=false and no error.
func (s *Store) Load() (Settings, bool, error) {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return Settings{}, false, err
	}
	if !exists {
		return Settings{}, false, nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return Settings{}, false, err
	}
	var st Settings
	if err := yaml.Unmarshal(data, &st); err != nil {
		return Settings{}, false, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return st, true, nil
}

// Save writes the settings, replacing the previous file.
func (s *Store) Save(st Settings) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return err
	}
	return s.fs.WriteFile(s.path, data)
}
