package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	for _, tz := range []string{"", "Local"} {
		loc, err := LoadLocation(tz)
		if err != nil || loc != time.Local {
			t.Errorf("LoadLocation(%q) = %v, %v; want the local zone", tz, loc, err)
		}
	}

	loc, err := LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("LoadLocation(Europe/Amsterdam) failed: %v", err)
	}
	if loc.String() != "Europe/Amsterdam" {
		t.Errorf("loc = %q", loc)
	}

	if _, err := LoadLocation("Mars/Olympus"); err == nil {
		t.Error("LoadLocation() accepted an unknown zone")
	}
}

func TestParseDateInLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Fatal(err)
	}

	got, err := ParseDateInLocation("2026-05-01", loc)
	if err != nil {
		t.Fatalf("ParseDateInLocation() failed: %v", err)
	}
	want := time.Date(2026, 5, 1, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("got %v, want midnight in the given zone", got)
	}

	if _, err := ParseDateInLocation("01-05-2026", loc); err == nil {
		t.Error("ParseDateInLocation() accepted a malformed date")
	}
}

func TestValidateDateFormat(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2026-05-01", true},
		{"2026-5-1", false},
		{"01-05-2026", false},
		{"2026-13-01", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidateDateFormat(tt.date); got != tt.want {
			t.Errorf("ValidateDateFormat(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestParseClockTime(t *testing.T) {
	hour, minute, err := ParseClockTime("07:30")
	if err != nil {
		t.Fatalf("ParseClockTime() failed: %v", err)
	}
	if hour != 7 || minute != 30 {
		t.Errorf("got %d:%d, want 7:30", hour, minute)
	}

	for _, bad := range []string{"7:30", "25:00", "07:60", "0730", ""} {
		if _, _, err := ParseClockTime(bad); err == nil {
			t.Errorf("ParseClockTime(%q) accepted invalid input", bad)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	for _, tz := range []string{"", "Local", "UTC", "Europe/Amsterdam"} {
		if !ValidateTimezone(tz) {
			t.Errorf("ValidateTimezone(%q) = false, want true", tz)
		}
	}
	if ValidateTimezone("Mars/Olympus") {
		t.Error("ValidateTimezone(Mars/Olympus) = true, want false")
	}
}
