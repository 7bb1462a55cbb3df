// Package config persists user preferences for the solver CLI:
// default board presets and the chosen least-squares backend tag.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Backend names the lstsq.Backend implementation to use. Only "dense"
// is wired today; the tag exists so a future SparseLsmr backend can
// be selected without a config schema change.
type Backend string

const (
	BackendDense Backend = "dense"
)

// Preset names one of the three standard board configurations the
// win-rate floors are measured against.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetMedium Preset = "medium"
	PresetExpert Preset = "expert"
)

// Dims reports the width, height and mine count for a preset.
func (p Preset) Dims() (width, height, mines int) {
	switch p {
	case PresetEasy:
		return 9, 9, 10
	case PresetMedium:
		return 16, 16, 40
	case PresetExpert:
		return 30, 16, 99
	}
	return 9, 9, 10
}

// MinWinRate returns the win-rate floor a healthy solver must clear on
// this preset, over a large number of trials.
func (p Preset) MinWinRate() float64 {
	switch p {
	case PresetEasy:
		return 0.85
	case PresetMedium:
		return 0.70
	case PresetExpert:
		return 0.25
	}
	return 0
}

// Config stores user preferences persisted to disk.
type Config struct {
	DefaultPreset Preset  `json:"default_preset"`
	Backend       Backend `json:"backend"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultPreset: PresetEasy,
		Backend:       BackendDense,
	}
}

// Store manages config persistence.
type Store struct {
	path   string
	Config Config
}

// Load reads config from the default location (~/.minesolver/config.json).
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads config from a specific path. If path is empty, uses
// the default location.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Config: DefaultConfig()}, err
		}
		path = filepath.Join(home, ".minesolver", "config.json")
	}

	s := &Store{path: path, Config: DefaultConfig()}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Config); err != nil {
		return s, err
	}
	s.normalize()
	return s, nil
}

// Save writes the config to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *Store) normalize() {
	switch s.Config.DefaultPreset {
	case PresetEasy, PresetMedium, PresetExpert:
	default:
		s.Config.DefaultPreset = PresetEasy
	}
	switch s.Config.Backend {
	case BackendDense:
	default:
		s.Config.Backend = BackendDense
	}
}
