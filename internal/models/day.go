package models

import (
	"strings"

	"github.com/fijnedagvan/dagvan/internal/constants"
)

// Day represents one observance day as served by the remote API. Field
// names on the wire are Dutch; they are kept verbatim because Day values
// are serialized back into cache files and job payloads unchanged.
type Day struct {
	ID        string `json:"id,omitempty"`
	DayID     string `json:"dag_id"`
	Name      string `json:"dagnaam"`
	Date      string `json:"datum,omitempty"` // YYYY-MM-DD, may be absent
	What      string `json:"wat,omitempty"`
	When      string `json:"wanneer,omitempty"`
	Info      string `json:"info,omitempty"` // long description, HTML
	Intro     string `json:"intro,omitempty"`
	Website   string `json:"website,omitempty"`
	Kind      string `json:"dagsoort,omitempty"` // comma-separated tags
	Scale     string `json:"schaal,omitempty"`   // comma-separated tags
	DateCheck string `json:"datum_check,omitempty"`
	Topic     string `json:"onderwerp,omitempty"` // comma-separated tags
	Slug      string `json:"slug,omitempty"`
}

// ImageURL returns the deterministic image location for the day, or the
// empty string when there is no stable day id to derive it from.
func (d Day) ImageURL() string {
	if d.DayID == "" {
		return ""
	}
	return constants.ImageBaseURL + d.DayID + ".jpg"
}

// Confirmed reports whether the day is an active occurrence for its date.
// The API marks confirmed rows with "1" or "1.0"; anything else, including
// an absent flag, is provisional.
func (d Day) Confirmed() bool {
	return d.DateCheck == "1" || d.DateCheck == "1.0"
}

// Kinds returns the day-kind tags split from the comma-separated field.
func (d Day) Kinds() []string { return splitTags(d.Kind) }

// Scales returns the scale tags split from the comma-separated field.
func (d Day) Scales() []string { return splitTags(d.Scale) }

// Topics returns the topic tags split from the comma-separated field.
func (d Day) Topics() []string { return splitTags(d.Topic) }

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// Confirmed filters a day list down to confirmed occurrences, preserving
// the original order.
func Confirmed(days []Day) []Day {
	var out []Day
	for _, d := range days {
		if d.Confirmed() {
			out = append(out, d)
		}
	}
	return out
}
