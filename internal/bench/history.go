package bench

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/avery-hale/minesweeper-solver/internal/config"
)

// HistoryEntry is one recorded benchmark run for a preset.
type HistoryEntry struct {
	Trials  int     `json:"trials"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
	Date    string  `json:"date"`
}

// History stores the most recent benchmark result per preset.
type History struct {
	Easy   *HistoryEntry `json:"easy,omitempty"`
	Medium *HistoryEntry `json:"medium,omitempty"`
	Expert *HistoryEntry `json:"expert,omitempty"`
}

// Store manages benchmark history persistence.
type Store struct {
	path    string
	History History
}

// LoadHistory reads history from the default location
// (~/.minesolver/results.json).
func LoadHistory() (*Store, error) {
	return LoadHistoryFrom("")
}

// LoadHistoryFrom reads history from a specific path. If path is
// empty, uses the default location.
func LoadHistoryFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{}, err
		}
		path = filepath.Join(home, ".minesolver", "results.json")
	}

	s := &Store{path: path}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.History); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the history to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.History, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Record stores r as the latest entry for its preset.
func (s *Store) Record(r Result) {
	entry := &HistoryEntry{
		Trials:  r.Trials,
		Wins:    r.Wins,
		WinRate: r.WinRate(),
		Date:    time.Now().Format("2006-01-02"),
	}
	switch r.Preset {
	case config.PresetEasy:
		s.History.Easy = entry
	case config.PresetMedium:
		s.History.Medium = entry
	case config.PresetExpert:
		s.History.Expert = entry
	}
}

// Get returns the most recent history entry for a preset, or nil.
func (s *Store) Get(preset config.Preset) *HistoryEntry {
	switch preset {
	case config.PresetEasy:
		return s.History.Easy
	case config.PresetMedium:
		return s.History.Medium
	case config.PresetExpert:
		return s.History.Expert
	}
	return nil
}
