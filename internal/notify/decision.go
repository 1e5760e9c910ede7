// Package notify decides which notification to emit for a day's data and
// delivers it to the local tray application.
package notify

import (
	"hash/fnv"
	"math"
	"strings"

	"github.com/fijnedagvan/dagvan/internal/constants"
	"github.com/fijnedagvan/dagvan/internal/models"
)

// Notification is a fully-decided notification, ready to send. ImageURL
// is a hint: senders fetch it best-effort and degrade to a text-only
// notification when the download fails.
type Notification struct {
	ID       int
	Title    string
	Body     string
	ImageURL string
	Link     string
}

// Article returns the Dutch article to place before a day name in a
// notification title: "de " for names starting with "Internationale Dag
// van" or "Dag van" (case-insensitive), nothing otherwise.
func Article(name string) string {
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "internationale dag van") || strings.HasPrefix(lower, "dag van") {
		return "de "
	}
	return ""
}

// EntityID derives the stable numeric notification id for a day, so a
// repeated send for the same day replaces the visible notification
// instead of duplicating it.
func EntityID(dayID string) int {
	h := fnv.New32a()
	h.Write([]byte(dayID))
	return int(int32(h.Sum32()))
}

// PlanDay builds the single-day notification for one entity. It reports
// false when the entity lacks the id or name a notification needs.
func PlanDay(day models.Day) (Notification, bool) {
	if strings.TrimSpace(day.DayID) == "" || strings.TrimSpace(day.Name) == "" {
		return Notification{}, false
	}
	return Notification{
		ID:       EntityID(day.DayID),
		Title:    "Vandaag is het " + Article(day.Name) + day.Name,
		Body:     "Lees meer over deze dag in de app!",
		ImageURL: day.ImageURL(),
		Link:     constants.DeepLinkDayPrefix + day.DayID,
	}, true
}

// PlanDaily applies the daily decision table to the confirmed days of
// today. Exactly zero or one notification comes out:
//
//	one day, daily enabled       -> single-day notification
//	several days, daily enabled  -> summary headed by the shortest name
//	no days, no-day enabled      -> fun fact, or a generic fallback
//	anything else                -> nothing
func PlanDaily(days []models.Day, settings models.Settings, fact *models.FunFact) (Notification, bool) {
	switch {
	case len(days) == 1 && settings.DailyEnabled:
		return PlanDay(days[0])

	case len(days) > 1 && settings.DailyEnabled:
		headline := shortestName(days)
		var others []string
		for _, d := range days {
			if d.DayID != headline.DayID {
				others = append(others, d.Name)
			}
		}
		name := headline.Name
		if name == "" {
			name = "een speciale dag"
		}
		return Notification{
			ID:       EntityID(headline.DayID),
			Title:    "Vandaag is het onder andere " + Article(name) + name,
			Body:     "En verder is het ook nog " + strings.Join(others, ", "),
			ImageURL: headline.ImageURL(),
			Link:     constants.DeepLinkOverview,
		}, true

	case len(days) == 0 && settings.NoDayEnabled:
		if fact != nil && strings.TrimSpace(fact.Text) != "" {
			return Notification{
				ID:    constants.NoDayNotificationID,
				Title: "Geen Dag Van, wel een leuk feitje:",
				Body:  fact.Text,
				Link:  constants.DeepLinkOverview,
			}, true
		}
		return Notification{
			ID:    constants.NoDayNotificationID,
			Title: "We vieren vandaag helaas geen Dag Van.",
			Body:  "Maar u kunt er genoeg vinden in ons overzicht!",
			Link:  constants.DeepLinkOverview,
		}, true
	}

	return Notification{}, false
}

// shortestName picks the day with the shortest name, ties going to the
// first encountered in original order. A nameless day sorts last so it
// only headlines when no day has a name at all.
func shortestName(days []models.Day) models.Day {
	best := days[0]
	for _, d := range days[1:] {
		if nameLength(d) < nameLength(best) {
			best = d
		}
	}
	return best
}

func nameLength(d models.Day) int {
	if d.Name == "" {
		return math.MaxInt
	}
	return len(d.Name)
}
