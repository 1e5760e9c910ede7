package models

import (
	"fmt"
	"time"
)

// Settings represents application-wide settings
type Settings struct {
	DailyEnabled bool    `json:"daily_enabled"`       // whether the daily notification is enabled
	NoDayEnabled bool    `json:"no_day_enabled"`      // whether "no special day" notifications are enabled
	Hour         int     `json:"notification_hour"`   // hour of day notifications fire at
	Minute       int     `json:"notification_minute"` // minute notifications fire at
	ThemeMode    string  `json:"theme_mode"`          // system | light | dark (stored only, applied by the UI)
	FontScale    float64 `json:"font_scale"`          // relative font size (stored only, applied by the UI)
	Timezone     string  `json:"timezone"`            // IANA timezone name, or "Local" for the system timezone
}

func (s *Settings) Validate() error {
	if s.Hour < 0 || s.Hour > 23 {
		return fmt.Errorf("notification hour must be between 0 and 23")
	}
	if s.Minute < 0 || s.Minute > 59 {
		return fmt.Errorf("notification minute must be between 0 and 59")
	}
	if s.FontScale <= 0 {
		return fmt.Errorf("font scale must be positive")
	}
	if s.Timezone != "" && s.Timezone != "Local" {
		if _, err := time.LoadLocation(s.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
		}
	}
	return nil
}
