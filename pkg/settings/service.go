// Package settings persists the single-value keys (theme, sheet sync config)
// that are not record collections.
package settings

import (
	"encoding/json"
	"fmt"

	"kaju/entities"
	"kaju/pkg/kvstore"
)

type Service struct {
	kv        kvstore.Store
	themeKey  string
	sheetsKey string
}

func New(kv kvstore.Store, themeKey, sheetsKey string) *Service {
	return &Service{kv: kv, themeKey: themeKey, sheetsKey: sheetsKey}
}

func (s *Service) Theme() string {
	v, ok, err := s.kv.Get(s.themeKey)
	if err != nil || !ok || v == "" {
		return "light"
	}
	return v
}

func (s *Service) SetTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("invalid theme: %q", theme)
	}
	return s.kv.Put(s.themeKey, theme)
}

// SheetsConfig returns the stored sync target, or ok=false when none has been
// configured yet.
func (s *Service) SheetsConfig() (entities.SheetsSyncConfig, bool) {
	var cfg entities.SheetsSyncConfig
	v, ok, err := s.kv.Get(s.sheetsKey)
	if err != nil || !ok {
		return cfg, false
	}
	if err := json.Unmarshal([]byte(v), &cfg); err != nil {
		return cfg, false
	}
	if cfg.SpreadsheetID == "" {
		return cfg, false
	}
	return cfg, true
}

func (s *Service) SetSheetsConfig(cfg entities.SheetsSyncConfig) error {
	if cfg.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet_id is required")
	}
	if cfg.SheetName == "" {
		cfg.SheetName = "シート1"
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.kv.Put(s.sheetsKey, string(b))
}
