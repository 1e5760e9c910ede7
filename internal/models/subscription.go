package models

import "fmt"

// Subscription records that the user opted into an individual notification
// for one day. Its presence in storage is the single source of truth for
// "is a per-day notification scheduled."
type Subscription struct {
	DayID   string `json:"day_id"`
	DayName string `json:"day_name"`
	Date    string `json:"date"` // YYYY-MM-DD
}

func (s *Subscription) Validate() error {
	if s.DayID == "" {
		return fmt.Errorf("subscription day id cannot be empty")
	}
	if s.DayName == "" {
		return fmt.Errorf("subscription day name cannot be empty")
	}
	if s.Date == "" {
		return fmt.Errorf("subscription date cannot be empty")
	}
	return nil
}
