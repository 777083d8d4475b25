package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings are the user-editable application settings, persisted as a small
// JSON file under the data root so they survive restarts without a DB column.
type Settings struct {
	StorageRoot   string  `json:"storage_root"`
	BrandLogoPath string  `json:"brand_logo_path"`
	Currency      string  `json:"currency"`
	VATPercent    float64 `json:"vat_percent"`
}

// SettingsStore loads and saves the settings file. Reads always succeed:
// a missing or unreadable file yields the configured defaults.
type SettingsStore struct {
	path     string
	defaults Settings
}

func NewSettingsStore(cfg *Config) *SettingsStore {
	return &SettingsStore{
		path: cfg.SettingsPath(),
		defaults: Settings{
			StorageRoot: cfg.StorageRoot,
			Currency:    cfg.Currency,
			VATPercent:  cfg.VATPercent,
		},
	}
}

// Load returns the persisted settings merged over the defaults.
func (s *SettingsStore) Load() Settings {
	out := s.defaults
	data, err := os.ReadFile(s.path)
	if err != nil {
		return out
	}
	var stored Settings
	if err := json.Unmarshal(data, &stored); err != nil {
		return out
	}
	if stored.StorageRoot != "" {
		out.StorageRoot = stored.StorageRoot
	}
	if stored.BrandLogoPath != "" {
		out.BrandLogoPath = stored.BrandLogoPath
	}
	if stored.Currency != "" {
		out.Currency = stored.Currency
	}
	if stored.VATPercent > 0 {
		out.VATPercent = stored.VATPercent
	}
	return out
}

// Save writes the settings file, creating the data dir if needed.
func (s *SettingsStore) Save(set Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("settings: create data dir: %w", err)
	}
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", s.path, err)
	}
	return nil
}
