package models

// FunFact is a standalone trivia entry, used only as fallback content for
// the "no special day" notification.
type FunFact struct {
	ID   string `json:"id"`
	Text string `json:"feitje"`
}
